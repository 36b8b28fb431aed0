package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// ProgressReporter reports progress while an analysis runs.
type ProgressReporter interface {
	Update(message string)
	Stop()
}

// NoOpProgress is used in JSON/API modes where no terminal is attached.
type NoOpProgress struct{}

func (n *NoOpProgress) Update(message string) {}
func (n *NoOpProgress) Stop()                 {}

// SpinnerProgress implements ProgressReporter using briandowns/spinner
type SpinnerProgress struct {
	spinner *spinner.Spinner
}

// NewSpinnerProgress creates a new spinner-based progress reporter
func NewSpinnerProgress() *SpinnerProgress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = "  "
	s.Color("cyan", "bold")

	return &SpinnerProgress{
		spinner: s,
	}
}

// Start starts the spinner with an initial message
func (sp *SpinnerProgress) Start(message string) {
	sp.spinner.Suffix = "  " + message
	sp.spinner.Start()
}

// Update updates the spinner message
func (sp *SpinnerProgress) Update(message string) {
	sp.spinner.Suffix = "  " + message
}

// Stop stops the spinner
func (sp *SpinnerProgress) Stop() {
	if sp.spinner.Active() {
		sp.spinner.Stop()
	}
}

var _ ProgressReporter = (*SpinnerProgress)(nil)
var _ ProgressReporter = (*NoOpProgress)(nil)
