// Package mazeui provides small terminal UX helpers shared by the mazegen
// CLI, grounded on parable-bloom's pkg/ui/spinner.go.
package mazeui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps github.com/briandowns/spinner with start/stop/log helpers
// that avoid tearing the spinner line when interleaving log output.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with a default character set and suffix.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start begins the spinner animation.
func (s *Spinner) Start() { s.s.Start() }

// Stop halts the spinner animation.
func (s *Spinner) Stop() { s.s.Stop() }

// UpdateMessage changes the spinner's suffix text.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// Info stops the spinner, prints a line, and restarts it if it was running.
func (s *Spinner) Info(format string, args ...interface{}) {
	wasActive := s.s.Active()
	if wasActive {
		s.s.Stop()
	}
	fmt.Printf(format+"\n", args...)
	if wasActive {
		s.s.Start()
	}
}
