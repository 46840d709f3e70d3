// Package notify fans a fired reminder out to the local voice channel and
// the WhatsApp messaging channel.
package notify

import (
	"context"
	"fmt"
	"log"

	"remindagent/internal/voice"
)

// MessageSender delivers an outbound message to a channel address and
// returns the provider's message id.
type MessageSender interface {
	Send(ctx context.Context, body, to string) (string, error)
}

// Result records the per-channel outcome of one dispatch, for logs and
// tests. Nothing upstream ever sees it as an error: dispatch happens long
// after the originating request was answered.
type Result struct {
	VoiceErr   error
	MessageErr error
	MessageSID string
	Skipped    bool // messaging channel unconfigured or no sender id
}

// Dispatcher delivers one fired reminder through both channels. Stateless;
// a failure in either channel never blocks the other.
type Dispatcher struct {
	speaker voice.Speaker
	sender  MessageSender
}

// NewDispatcher creates a Dispatcher. sender may be nil when the messaging
// channel is unconfigured; the voice channel still works.
func NewDispatcher(speaker voice.Speaker, sender MessageSender) *Dispatcher {
	if speaker == nil {
		speaker = voice.Nop{}
	}
	return &Dispatcher{speaker: speaker, sender: sender}
}

// Dispatch satisfies scheduler.Dispatcher.
func (d *Dispatcher) Dispatch(ctx context.Context, task, senderID string) {
	d.dispatch(ctx, task, senderID)
}

func (d *Dispatcher) dispatch(ctx context.Context, task, senderID string) Result {
	log.Printf("[notify] 🔔 Reminder triggered: %s", task)

	var res Result

	if err := d.speaker.Speak(ctx, fmt.Sprintf("Reminder: %s", task)); err != nil {
		res.VoiceErr = err
		log.Printf("[notify] voice error: %v", err)
	} else {
		log.Println("[notify] voice reminder played")
	}

	if d.sender == nil || senderID == "" {
		res.Skipped = true
		log.Println("[notify] messaging channel not configured - skipping message")
		return res
	}

	sid, err := d.sender.Send(ctx, fmt.Sprintf("🔔 Reminder: %s", task), senderID)
	if err != nil {
		res.MessageErr = err
		log.Printf("[notify] message send error: %v", err)
		return res
	}

	res.MessageSID = sid
	log.Printf("[notify] message reminder sent: %s", sid)
	return res
}
