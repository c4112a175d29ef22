package prompts

// Shape describes the value a persona attribute is expected to hold.
type Shape int

const (
	// Scale is an integer rating from 1 to 10.
	Scale Shape = iota
	// Category is one label out of a small closed set.
	Category
	FreeText
)

// Attribute is one entry of the persona vocabulary sent to the model.
type Attribute struct {
	Key   string
	Shape Shape
	Hint  string
}

func scale(key string) Attribute { return Attribute{Key: key, Shape: Scale, Hint: "1-10"} }

func category(key, hint string) Attribute { return Attribute{Key: key, Shape: Category, Hint: hint} }

func text(key, hint string) Attribute { return Attribute{Key: key, Shape: FreeText, Hint: hint} }

// Attributes is the advisory persona schema. Nothing downstream enforces it.
var Attributes = []Attribute{
	text("name", "Author/Character Name"),
	scale("vocabulary_complexity"),
	category("sentence_structure", "simple/complex/varied"),
	category("paragraph_organization", "structured/loose/stream-of-consciousness"),
	scale("idiom_usage"),
	scale("metaphor_frequency"),
	scale("simile_frequency"),
	category("tone", "formal/informal/academic/conversational/etc."),
	category("punctuation_style", "minimal/heavy/unconventional"),
	scale("contraction_usage"),
	category("pronoun_preference", "first-person/third-person/etc."),
	scale("passive_voice_frequency"),
	scale("rhetorical_question_usage"),
	scale("list_usage_tendency"),
	scale("personal_anecdote_inclusion"),
	scale("pop_culture_reference_frequency"),
	scale("technical_jargon_usage"),
	scale("parenthetical_aside_frequency"),
	scale("humor_sarcasm_usage"),
	scale("emotional_expressiveness"),
	scale("emphatic_device_usage"),
	scale("quotation_frequency"),
	scale("analogy_usage"),
	scale("sensory_detail_inclusion"),
	scale("onomatopoeia_usage"),
	scale("alliteration_frequency"),
	category("word_length_preference", "short/long/varied"),
	scale("foreign_phrase_usage"),
	scale("rhetorical_device_usage"),
	scale("statistical_data_usage"),
	scale("personal_opinion_inclusion"),
	scale("transition_usage"),
	scale("reader_question_frequency"),
	scale("imperative_sentence_usage"),
	scale("dialogue_inclusion"),
	scale("regional_dialect_usage"),
	scale("hedging_language_frequency"),
	category("language_abstraction", "concrete/abstract/mixed"),
	scale("personal_belief_inclusion"),
	scale("repetition_usage"),
	scale("subordinate_clause_frequency"),
	category("verb_type_preference", "active/stative/mixed"),
	scale("sensory_imagery_usage"),
	scale("symbolism_usage"),
	scale("digression_frequency"),
	scale("formality_level"),
	scale("reflection_inclusion"),
	scale("irony_usage"),
	scale("neologism_frequency"),
	scale("ellipsis_usage"),
	scale("cultural_reference_inclusion"),
	scale("stream_of_consciousness_usage"),
	scale("openness_to_experience"),
	scale("conscientiousness"),
	scale("extraversion"),
	scale("agreeableness"),
	scale("emotional_stability"),
	category("dominant_motivations", "achievement/affiliation/power/etc."),
	category("core_values", "integrity/freedom/knowledge/etc."),
	category("decision_making_style", "analytical/intuitive/spontaneous/etc."),
	scale("empathy_level"),
	scale("self_confidence"),
	scale("risk_taking_tendency"),
	category("idealism_vs_realism", "idealistic/realistic/mixed"),
	category("conflict_resolution_style", "assertive/collaborative/avoidant/etc."),
	category("relationship_orientation", "independent/communal/mixed"),
	category("emotional_response_tendency", "calm/reactive/intense"),
	scale("creativity_level"),
	text("age", "age or age range"),
	text("gender", "gender"),
	text("education_level", "highest level of education"),
	text("professional_background", "brief description"),
	text("cultural_background", "brief description"),
	text("primary_language", "language"),
	category("language_fluency", "native/fluent/intermediate/beginner"),
	text("background", "A brief paragraph describing the author's context, major influences, and any other relevant information not captured above"),
}
