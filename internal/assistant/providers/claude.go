package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"independent-director/internal/config"
	"independent-director/internal/logging"
	"independent-director/pkg/models"
)

// ClaudeProvider implements the assistant provider interface using
// Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// RankDirectorIDs asks Claude to rank the directory against a free-text
// query and returns the matching IDs in relevance order
func (cp *ClaudeProvider) RankDirectorIDs(ctx context.Context, query string, directors []models.Director) ([]string, error) {
	startTime := time.Now()

	prompt := fmt.Sprintf(`You are an expert director search assistant. A user is searching for independent directors with the query: %q.
Analyze the following list of directors and return a JSON array of director IDs that best match the user's query, ranked by relevance.
The list of directors is:
%s

Consider all aspects of the query, such as industry, experience, age, DIN, certification status, sectors served, and keywords.
Return ONLY a JSON array of strings, where each string is a matching director ID. For example: ["3", "2"].`,
		query, directorLines(directors))

	text, err := cp.complete(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to rank directors: %w", err)
	}

	ids := parseIDArray(text)

	cp.logger.Info("Director ranking completed", map[string]interface{}{
		"query":           query,
		"matches":         len(ids),
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})
	return ids, nil
}

// SummarizeDirector generates a 2-3 sentence professional summary
func (cp *ClaudeProvider) SummarizeDirector(ctx context.Context, d models.Director) (string, error) {
	prompt := fmt.Sprintf(`Generate a concise, professional summary for the following independent director. Highlight their expertise, experience, and key skills based on the provided data.
The summary should be about 2-3 sentences long.

Full Name: %s
Age: %s
DIN Number: %s
Industry Focus: %s
Bio: %s
Total Years of Experience as ID: %s
Currently Serving as ID: %s
IOD Certified: %s
Sectors Served: %s
Current Sectors Serving: %s
International Boards: %s
Committee Memberships: %d`,
		d.Name,
		orNA(intString(d.Age)),
		orNA(d.DINNumber),
		d.Industry,
		d.Description,
		orNA(intString(d.YearsOfExperience)),
		yesNo(d.IsCurrentDirector),
		yesNo(d.IsIODCertified),
		orNA(strings.Join(d.SectorsServed, ", ")),
		orNA(strings.Join(d.CurrentSectors, ", ")),
		orNA(strings.Join(d.InternationalBoards, ", ")),
		d.CommitteeCount)

	text, err := cp.complete(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "Summary not available.", nil
	}
	return text, nil
}

// SimilarDirectorIDs recommends up to three similar directors from the
// candidate list
func (cp *ClaudeProvider) SimilarDirectorIDs(ctx context.Context, subject models.Director, others []models.Director) ([]string, error) {
	prompt := fmt.Sprintf(`You are a professional network analyst. The user is currently viewing the profile for %q, a director with experience in the %q industry who has also served in sectors like %q.
Based on this, recommend up to 3 similar directors from the following list. Prioritize directors in the same industry, with overlapping sectors served, or a similar number of years of experience.

List of available directors:
%s

Return ONLY a JSON array of the recommended director IDs. For example: ["4", "1"]. Do not include the current director's ID (%s).`,
		subject.Name, subject.Industry, strings.Join(subject.SectorsServed, ", "),
		directorLines(others), subject.ID)

	text, err := cp.complete(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend similar directors: %w", err)
	}

	ids := parseIDArray(text)
	if len(ids) > 3 {
		ids = ids[:3]
	}
	return ids, nil
}

// ChatReply answers one chat turn, grounding the system prompt in the
// current directory data
func (cp *ClaudeProvider) ChatReply(ctx context.Context, history []models.ChatMessage, message string, directors []models.Director) (string, error) {
	system := fmt.Sprintf(`You are a helpful chatbot assistant for an Independent Director directory. Your goal is to help users find independent directors based on their criteria.
You have access to the following director data:
%s

Answer the user's questions based on this data. If a user asks "Show me directors with healthcare experience and over 15 years experience," identify the matching directors and present them clearly. Be friendly and concise.`,
		directorLines(directors))

	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		role := anthropic.MessageParamRoleUser
		if turn.Role == "model" || turn.Role == "assistant" {
			role = anthropic.MessageParamRoleAssistant
		}
		messages = append(messages, anthropic.MessageParam{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: turn.Parts},
			}},
			Role: role,
		})
	}
	messages = append(messages, anthropic.MessageParam{
		Content: []anthropic.ContentBlockParamUnion{{
			OfText: &anthropic.TextBlockParam{Text: message},
		}},
		Role: anthropic.MessageParamRoleUser,
	})

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaude3_7SonnetLatest,
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text := responseText(response)
	if text == "" {
		return "", fmt.Errorf("empty response from Claude")
	}
	return strings.TrimSpace(text), nil
}

// complete sends a single-message request and returns the text content
func (cp *ClaudeProvider) complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.ModelClaude3_7SonnetLatest,
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	response, err := cp.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text := responseText(response)
	if text == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}
	return text, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_7SonnetLatest,
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// Name returns the name of the provider
func (cp *ClaudeProvider) Name() string {
	return "claude"
}

func responseText(response *anthropic.Message) string {
	if response == nil || len(response.Content) == 0 {
		return ""
	}
	for _, content := range response.Content {
		textContent := content.AsText()
		return textContent.Text
	}
	return ""
}

// parseIDArray decodes a JSON string array from the model output, stripping
// markdown code fences if present. Anything that does not decode to an
// array yields an empty result.
func parseIDArray(text string) []string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var ids []string
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil
	}
	return ids
}

// directorLines renders the directory as one prompt line per director
func directorLines(directors []models.Director) string {
	lines := make([]string, 0, len(directors))
	for _, d := range directors {
		lines = append(lines, fmt.Sprintf(
			"ID: %s, Name: %s, Industry: %s, Description: %s, Age: %d, DIN: %s, Currently Serving: %t, Years of Experience: %d, IOD Certified: %t, Sectors Served: %s",
			d.ID, d.Name, d.Industry, d.Description, d.Age, d.DINNumber,
			d.IsCurrentDirector, d.YearsOfExperience, d.IsIODCertified,
			strings.Join(d.SectorsServed, ", ")))
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" || s == "0" {
		return "N/A"
	}
	return s
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
