package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Border(lipgloss.NormalBorder()).Padding(0, 1)
	testStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	artifactBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const defaultSample = `I have never trusted a recipe that promises results in under ten minutes.
Cooking, to me, is a slow conversation with ingredients, and the best dishes
come from listening rather than hurrying. Today I want to talk about bread.`

type TestClient struct {
	baseURL string
	client  *http.Client

	personaID string
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			// analysis and generation wait on the model
			Timeout: 5 * time.Minute,
		},
	}
}

func main() {
	var (
		baseURL  string
		testType string
		sample   string
		prompt   string
	)

	cmd := &cobra.Command{
		Use:   "persona-writer-test",
		Short: "Smoke tests against a running Persona Writer Agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewTestClient(baseURL)

			printHeader("Persona Writer Agent - Test Suite")
			fmt.Printf("%s %s\n\n", labelStyle.Render("Base URL:"), baseURL)

			var ok bool
			switch testType {
			case "all":
				ok = client.runAllTests(sample, prompt)
			case "health":
				ok = client.testHealthCheck()
			case "agent-card":
				ok = client.testAgentCard()
			case "analyze":
				ok = client.testAnalyze(sample)
			case "a2a":
				ok = client.testA2AAnalyze(sample)
			default:
				return fmt.Errorf("unknown test type %q (available: all, health, agent-card, analyze, a2a)", testType)
			}
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the agent")
	cmd.Flags().StringVar(&testType, "test", "all", "Test type: all, health, agent-card, analyze, a2a")
	cmd.Flags().StringVar(&sample, "sample", defaultSample, "Writing sample to analyze")
	cmd.Flags().StringVar(&prompt, "prompt", "Why sourdough rewards patience", "Topic for the generated post")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests(sample, prompt string) bool {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Agent Card", tc.testAgentCard},
		{"Analyze", func() bool { return tc.testAnalyze(sample) }},
		{"Generate", func() bool { return tc.testGenerate(prompt) }},
		{"List Blog Posts", tc.testListBlogPosts},
		{"A2A Analyze", func() bool { return tc.testA2AAnalyze(sample) }},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Println(successStyle.Render(fmt.Sprintf("Passed: %d", passed)))
	fmt.Println(errorStyle.Render(fmt.Sprintf("Failed: %d", failed)))
	fmt.Printf("Total: %d\n", passed+failed)

	return failed == 0
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	status, body, err := tc.do(http.MethodGet, "/health", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testAgentCard() bool {
	printTestHeader("Testing Agent Card Endpoint")

	status, body, err := tc.do(http.MethodGet, "/.well-known/agent.json", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var agentCard map[string]interface{}
	if err := json.Unmarshal(body, &agentCard); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	requiredFields := []string{"name", "description", "version", "capabilities", "endpoints"}
	for _, field := range requiredFields {
		if _, ok := agentCard[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Agent card is valid")
	printJSON(body)
	return true
}

func (tc *TestClient) testAnalyze(sample string) bool {
	printTestHeader("Testing Writing Sample Analysis")

	status, body, err := tc.do(http.MethodPost, "/api/analyze", map[string]string{
		"name":           "Smoke Test Author",
		"writing_sample": sample,
	})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusCreated {
		printError(fmt.Sprintf("Expected status 201, got %d", status))
		printJSON(body)
		return false
	}

	var persona struct {
		ID   string                 `json:"id"`
		Name string                 `json:"name"`
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &persona); err != nil || persona.ID == "" {
		printError(fmt.Sprintf("Invalid persona response: %v", err))
		return false
	}
	tc.personaID = persona.ID

	printSuccess(fmt.Sprintf("Persona %s created with %d attributes", persona.ID, len(persona.Data)))
	return true
}

func (tc *TestClient) testGenerate(prompt string) bool {
	printTestHeader("Testing Blog Post Generation")

	if tc.personaID == "" {
		printError("No persona available, analysis must pass first")
		return false
	}

	status, body, err := tc.do(http.MethodPost, "/api/generate", map[string]string{
		"persona_id": tc.personaID,
		"prompt":     prompt,
	})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusCreated {
		printError(fmt.Sprintf("Expected status 201, got %d", status))
		printJSON(body)
		return false
	}

	var post struct {
		Title   *string `json:"title"`
		Content string  `json:"content"`
	}
	if err := json.Unmarshal(body, &post); err != nil {
		printError(fmt.Sprintf("Invalid blog post response: %v", err))
		return false
	}

	printSuccess("Blog post generated")
	title := "(untitled)"
	if post.Title != nil {
		title = *post.Title
	}
	fmt.Println(artifactBox.Render(labelStyle.Render(title) + "\n\n" + post.Content))
	return true
}

func (tc *TestClient) testListBlogPosts() bool {
	printTestHeader("Testing Blog Post Listing")

	status, body, err := tc.do(http.MethodGet, "/api/blogposts", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var posts []map[string]interface{}
	if err := json.Unmarshal(body, &posts); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if len(posts) == 0 {
		printError("Expected at least one blog post")
		return false
	}

	printSuccess(fmt.Sprintf("Listed %d blog post(s)", len(posts)))
	return true
}

func (tc *TestClient) testA2AAnalyze(sample string) bool {
	printTestHeader("Testing A2A message/send")

	request := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      fmt.Sprintf("test-%d", time.Now().Unix()),
		"method":  "message/send",
		"params": map[string]interface{}{
			"message": map[string]interface{}{
				"kind": "message",
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"kind": "text",
						"text": sample,
					},
				},
			},
			"configuration": map[string]interface{}{
				"blocking":            true,
				"acceptedOutputModes": []string{"text", "data"},
			},
		},
	}

	status, body, err := tc.do(http.MethodPost, "/a2a/persona", request)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if errObj, ok := response["error"]; ok {
		printError("Request returned an error")
		errJSON, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Println(string(errJSON))
		return false
	}

	result, ok := response["result"].(map[string]interface{})
	if !ok {
		printError("Invalid result format")
		return false
	}
	taskStatus, ok := result["status"].(map[string]interface{})
	if !ok {
		printError("Invalid status format")
		return false
	}
	if state, _ := taskStatus["state"].(string); state != "completed" {
		printError(fmt.Sprintf("Expected state 'completed', got '%s'", state))
		return false
	}

	printSuccess("A2A analysis completed successfully")
	if artifacts, ok := result["artifacts"].([]interface{}); ok && len(artifacts) > 0 {
		artifactsJSON, _ := json.MarshalIndent(artifacts, "", "  ")
		fmt.Println(labelStyle.Render("Artifacts:"))
		fmt.Println(string(artifactsJSON))
	}
	return true
}

func (tc *TestClient) do(method, path string, payload interface{}) (int, []byte, error) {
	url := tc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func printHeader(text string) {
	fmt.Println(headerStyle.Render(text))
	fmt.Println()
}

func printTestHeader(text string) {
	fmt.Println(testStyle.Render("[TEST] " + text))
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Println(successStyle.Render("✓ " + text))
}

func printError(text string) {
	fmt.Println(errorStyle.Render("✗ " + text))
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%s\n%s\n", labelStyle.Render("Response:"), prettyJSON.String())
	}
}
