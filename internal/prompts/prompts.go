package prompts

import (
	"encoding/json"
	"fmt"
	"strings"
)

const unknownAuthor = "Unknown Author"

// BuildAnalysisPrompt renders the instruction that turns a writing sample
// into a persona JSON object. The sample is embedded verbatim.
func BuildAnalysisPrompt(sample string) string {
	var sb strings.Builder
	sb.WriteString("Please analyze the writing style and personality of the given writing sample. ")
	sb.WriteString("Provide a detailed assessment of their characteristics using the following template. ")
	sb.WriteString("Rate each applicable characteristic on a scale of 1-10 where relevant, or provide a descriptive value. ")
	sb.WriteString("Infer demographic and personality fields from the voice of the sample. ")
	sb.WriteString("Return the results as a single JSON object.\n\n")

	for _, attr := range Attributes {
		sb.WriteString(" ")
		sb.WriteString(renderAttribute(attr))
		sb.WriteString(",\n")
	}

	sb.WriteString("\nWriting Sample:\n")
	sb.WriteString(sample)
	sb.WriteString("\n")
	return sb.String()
}

func renderAttribute(attr Attribute) string {
	if attr.Shape == Scale {
		return fmt.Sprintf("%q: [%s]", attr.Key, attr.Hint)
	}
	return fmt.Sprintf("%q: \"[%s]\"", attr.Key, attr.Hint)
}

// BuildGenerationPrompt renders the instruction for a blog post about topic
// written in the voice described by profile.
func BuildGenerationPrompt(profile map[string]any, topic string) string {
	author := unknownAuthor
	if name, ok := profile["name"].(string); ok && strings.TrimSpace(name) != "" {
		author = name
	}

	// encoding/json sorts map keys, which keeps the prompt deterministic
	profileJSON := []byte("{}")
	if profile != nil {
		b, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			b = []byte(fmt.Sprintf("%v", profile))
		}
		profileJSON = b
	}

	return fmt.Sprintf(`You are to write a blog post in the style of %s, a writer with the following characteristics:

%s

Now, please write a response in this style about the following topic:
"%s"
Begin with a compelling title that reflects the content of the post.
`, author, profileJSON, topic)
}
