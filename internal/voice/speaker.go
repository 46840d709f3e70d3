// Package voice plays spoken announcements on the local output device.
//
// There is no portable TTS engine to link against, so the default
// implementation shells out to the platform's speech command: `say` on
// macOS, `espeak` elsewhere. Hosts without either get a no-op speaker.
package voice

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Speaker synthesizes and plays a piece of text. Best effort, local only.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// CommandSpeaker speaks by running an external TTS command with the text as
// its final argument.
type CommandSpeaker struct {
	Command string
	Args    []string
}

// NewSpeaker picks a speaker for the host. An explicit command overrides
// detection; an empty command falls back to the platform default, and a
// host with no TTS command at all gets a Nop.
func NewSpeaker(command string) Speaker {
	if command == "" {
		if runtime.GOOS == "darwin" {
			command = "say"
		} else {
			command = "espeak"
		}
	}

	if _, err := exec.LookPath(command); err != nil {
		return Nop{}
	}
	return &CommandSpeaker{Command: command}
}

// Speak runs the TTS command and waits for playback to finish.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	args := append(append([]string{}, s.Args...), text)
	cmd := exec.CommandContext(ctx, s.Command, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to run %s: %v: %s", s.Command, err, out)
	}
	return nil
}

// Nop is a speaker for hosts without any TTS command.
type Nop struct{}

func (Nop) Speak(context.Context, string) error { return nil }
