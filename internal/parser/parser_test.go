package parser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindagent/internal/llm"
)

type fakeProvider struct {
	content string
	gotReq  llm.MessageRequest
}

func (f *fakeProvider) SendMessage(_ context.Context, req llm.MessageRequest) (*llm.MessageResponse, error) {
	f.gotReq = req
	return &llm.MessageResponse{Content: f.content}, nil
}

func (f *fakeProvider) Name() string { return "fake" }
func (f *fakeProvider) Close() error { return nil }

func TestParse_CleanJSON(t *testing.T) {
	provider := &fakeProvider{content: `{"task": "buy groceries", "datetime": "2024-01-10T09:00:00", "is_important": true}`}
	p := NewLLMParser(provider, "deepseek-chat", 1024, 0.2)

	parsed, err := p.Parse(context.Background(), "remind me to buy groceries at 9")
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, "buy groceries", parsed.Task)
	assert.Equal(t, "2024-01-10T09:00:00", parsed.DateTime)
	assert.True(t, parsed.Important)
}

func TestParse_SendsCurrentTime(t *testing.T) {
	provider := &fakeProvider{content: `null`}
	p := NewLLMParser(provider, "deepseek-chat", 1024, 0.2)
	p.now = func() time.Time {
		return time.Date(2024, time.January, 10, 8, 0, 0, 0, time.Local)
	}

	_, err := p.Parse(context.Background(), "remind me in 20 minutes")
	require.NoError(t, err)

	require.Len(t, provider.gotReq.Messages, 1)
	assert.Contains(t, provider.gotReq.Messages[0].Content, "2024-01-10T08:00:00")
	assert.Contains(t, provider.gotReq.Messages[0].Content, "remind me in 20 minutes")
	assert.Equal(t, "deepseek-chat", provider.gotReq.Model)
}

func TestDecodeParsed_Null(t *testing.T) {
	parsed, err := decodeParsed("null")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestDecodeParsed_Prose(t *testing.T) {
	parsed, err := decodeParsed("I could not find a time in that message.")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestDecodeParsed_CodeFence(t *testing.T) {
	parsed, err := decodeParsed("```json\n{\"task\": \"gym\", \"datetime\": \"2024-01-10T18:00:00\", \"is_important\": false}\n```")
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, "gym", parsed.Task)
	assert.Equal(t, "2024-01-10T18:00:00", parsed.DateTime)
}

func TestDecodeParsed_RepairsSloppyJSON(t *testing.T) {
	// Trailing comma and single quotes, the usual model sloppiness.
	parsed, err := decodeParsed(`{'task': 'gym', 'datetime': '2024-01-10T18:00:00',}`)
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, "gym", parsed.Task)
}

func TestDecodeParsed_EmptyTask(t *testing.T) {
	parsed, err := decodeParsed(`{"task": "", "datetime": "2024-01-10T18:00:00"}`)
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestDecodeParsed_MissingDatetime(t *testing.T) {
	// Absent datetime still comes back Parsed; the service turns it into
	// the unresolved reply.
	parsed, err := decodeParsed(`{"task": "call mom"}`)
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, "call mom", parsed.Task)
	assert.Empty(t, parsed.DateTime)
}
