// Package terminal plays back a scripted terminal session: typed commands,
// instant output lines and an address lookup spliced between two step lists.
package terminal

import (
	"strings"
	"time"
)

// Kind says how a step is revealed.
type Kind int

const (
	// Output lines are committed whole after a settle delay.
	Output Kind = iota
	// Input lines are typed out character by character.
	Input
)

func (k Kind) String() string {
	if k == Input {
		return "input"
	}
	return "output"
}

const (
	// Prompt prefixes every committed Input line.
	Prompt = "> "
	// Placeholder is replaced by the resolved address in epilogue text.
	Placeholder = "{ip}"
	// FallbackAddress stands in for the address when the lookup fails.
	FallbackAddress = "127.0.0.1"
)

// Step is one scripted unit of playback.
type Step struct {
	Kind  Kind
	Text  string
	Style string
	// TypeDelay is the base per-character delay of Input steps.
	TypeDelay time.Duration
}

// Script holds the fixed preamble and the epilogue played after the
// address has been resolved.
type Script struct {
	Preamble []Step
	Epilogue []Step
}

// Line is a committed, immutable line of the log.
type Line struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// Interpolate returns a copy of steps with every Placeholder replaced by
// value. The input slice is left untouched.
func Interpolate(steps []Step, value string) []Step {
	out := make([]Step, len(steps))
	for i, step := range steps {
		step.Text = strings.ReplaceAll(step.Text, Placeholder, value)
		out[i] = step
	}
	return out
}
