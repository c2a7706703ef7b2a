// Package assist provides an AI-backed helper that suggests a category for
// an expense note.
package assist

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Categorizer is a chat with a Gemini model primed to classify expense
// notes into one of the user's categories.
type Categorizer struct {
	chat *genai.Chat
}

// NewCategorizer starts a chat session constrained to the given category
// universe. Categories come from the current ledger, so suggestions never
// invent buckets the user has not seen.
func NewCategorizer(ctx context.Context, client *genai.Client, categories []string) (*Categorizer, error) {
	instruction := fmt.Sprintf(`
	You classify personal expense notes into categories.
	The only valid categories are: %s.
	Reply with exactly one category name from that list, nothing else.
	When none fits, reply with %q.`,
		strings.Join(categories, ", "), "Other")

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("could not start categorizer chat: %w", err)
	}
	return &Categorizer{chat: chat}, nil
}

// Suggest returns the category suggested for the given note.
func (c *Categorizer) Suggest(ctx context.Context, note string) (string, error) {
	resp, err := c.chat.Send(ctx, &genai.Part{Text: note})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no suggestion for note %q", note)
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
