package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibtime/internal/orchestration"
)

// SpinnerRefreshRate is the animation interval of the activity spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts a terminal spinner so DisplayActivity can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// CLIActivityReporter implements orchestration.ActivityReporter with a
// spinner.
type CLIActivityReporter struct{}

var _ orchestration.ActivityReporter = CLIActivityReporter{}

// DisplayActivity shows a spinner on out until done is closed.
func (CLIActivityReporter) DisplayActivity(wg *sync.WaitGroup, done <-chan struct{}, numCalculators int, out io.Writer) {
	DisplayActivity(wg, done, numCalculators, out)
}

// DisplayActivity runs a spinner on out until done is closed, then calls
// wg.Done. The spinner is cleared before returning so that the report starts
// on a clean line.
func DisplayActivity(wg *sync.WaitGroup, done <-chan struct{}, numCalculators int, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(activityLabel(numCalculators))
	s.Start()
	<-done
	s.Stop()
}

func activityLabel(numCalculators int) string {
	if numCalculators > 1 {
		return fmt.Sprintf(" Computing with %d algorithms...", numCalculators)
	}
	return " Computing..."
}
