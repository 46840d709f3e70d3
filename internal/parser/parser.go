// Package parser extracts a reminder task and target date-time from free
// text using an LLM provider.
package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"remindagent/internal/llm"
	"remindagent/internal/reminder"
)

const systemPrompt = `You extract reminder details from a message. Respond with ONLY a JSON object, no prose, no code fences:

{"task": "<what to be reminded about>", "datetime": "<target time as YYYY-MM-DDTHH:MM:SS, naive local time, no offset>", "is_important": <true|false>}

Rules:
- "datetime" must be the concrete local date-time the user means. Resolve relative expressions ("in 20 minutes", "tomorrow at 7pm") against the current time given in the message.
- If the message contains no usable time or date at all, respond with exactly: null
- "is_important" is true only when the user stresses urgency or importance.`

// Parser turns raw inbound text into a reminder.Parsed.
type Parser interface {
	// Parse returns nil (with nil error) when no task/time could be
	// extracted from the text.
	Parse(ctx context.Context, text string) (*reminder.Parsed, error)
}

// LLMParser implements Parser on top of a chat-completion provider.
type LLMParser struct {
	provider    llm.Provider
	model       string
	maxTokens   int
	temperature float64
	now         func() time.Time
}

// NewLLMParser creates a parser using the given provider and model settings.
func NewLLMParser(provider llm.Provider, model string, maxTokens int, temperature float64) *LLMParser {
	return &LLMParser{
		provider:    provider,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		now:         time.Now,
	}
}

// Parse asks the model for a {task, datetime, is_important} object and
// decodes it, repairing sloppy JSON (code fences, trailing commas) first.
func (p *LLMParser) Parse(ctx context.Context, text string) (*reminder.Parsed, error) {
	userPrompt := fmt.Sprintf("Current local time: %s\n\nMessage: %s",
		p.now().Format(reminder.ISOLayout), text)

	resp, err := p.provider.SendMessage(ctx, llm.MessageRequest{
		Messages:    []llm.Message{{Role: "user", Content: userPrompt}},
		System:      systemPrompt,
		Model:       p.model,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call parser model: %w", err)
	}

	return decodeParsed(resp.Content)
}

func decodeParsed(content string) (*reminder.Parsed, error) {
	content = strings.TrimSpace(content)
	if content == "" || strings.EqualFold(content, "null") {
		return nil, nil
	}

	// Models wrap JSON in fences or prose often enough that decoding the
	// raw content directly is a losing game. Cut down to the outermost
	// object and let jsonrepair fix the rest.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, nil
	}
	content = content[start : end+1]

	var parsed reminder.Parsed
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil, fmt.Errorf("failed to decode parser output: %w", err)
		}
		log.Printf("[parser] repaired model JSON output")
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode repaired parser output: %w", err)
		}
	}

	if parsed.Task == "" {
		return nil, nil
	}

	return &parsed, nil
}
