package renderer

import (
	"encoding/json"
	"testing"

	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessagesOrdering(t *testing.T) {
	resolved := map[models.Role]string{
		models.RoleAssistant: "sure",
		models.RoleUser:      "hello",
		models.RoleSystem:    "be helpful",
		models.RoleContext:   "docs",
	}

	messages := BuildMessages(resolved)
	require.Len(t, messages, 4)
	assert.Equal(t, []Message{
		{Role: "system", Content: "be helpful"},
		{Role: "context", Content: "docs"},
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "sure"},
	}, messages)
}

func TestBuildMessagesPartial(t *testing.T) {
	messages := BuildMessages(map[models.Role]string{models.RoleUser: "hi"})
	assert.Equal(t, []Message{{Role: "user", Content: "hi"}}, messages)
}

func TestBuildMessagesEmpty(t *testing.T) {
	assert.Empty(t, BuildMessages(nil))
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON([]Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)

	var round []Message
	require.NoError(t, json.Unmarshal([]byte(out), &round))
	assert.Equal(t, "system", round[0].Role)
	assert.Equal(t, "hi", round[1].Content)
	assert.Contains(t, out, `"role": "system"`)
}

func TestRenderText(t *testing.T) {
	out := RenderText([]Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "hi"},
	})
	assert.Equal(t, "[system]\nbe helpful\n\n[user]\nhi\n", out)
}

func TestRenderTextEmpty(t *testing.T) {
	assert.Equal(t, "", RenderText(nil))
}
