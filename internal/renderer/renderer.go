// Package renderer assembles resolved prompt text into the role-tagged
// message sequence a text-generation client consumes. It knows nothing
// about delimiters or file layout; callers hand it already-resolved text.
package renderer

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dpshade/prompt-workbench/internal/models"
)

// Message is one chat message for an LLM API request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildMessages orders resolved per-role text into a message sequence:
// system first, then context, user, assistant.
func BuildMessages(resolved map[models.Role]string) []Message {
	roles := make([]models.Role, 0, len(resolved))
	for role := range resolved {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].Order() != roles[j].Order() {
			return roles[i].Order() < roles[j].Order()
		}
		return roles[i] < roles[j]
	})

	messages := make([]Message, 0, len(roles))
	for _, role := range roles {
		messages = append(messages, Message{Role: string(role), Content: resolved[role]})
	}
	return messages
}

// RenderJSON renders messages as an indented JSON array.
func RenderJSON(messages []Message) (string, error) {
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal messages: %w", err)
	}
	return string(data), nil
}

// RenderText concatenates messages into a plain-text transcript with role
// headers, for previews and clipboard use.
func RenderText(messages []Message) string {
	var out string
	for i, msg := range messages {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("[%s]\n%s\n", msg.Role, msg.Content)
	}
	return out
}
