package syncsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/globalmarket/backend/internal/notify"
	"github.com/globalmarket/backend/internal/terminal"
)

// fakeScheduler captures the registered task so tests fire it by hand.
type fakeScheduler struct {
	interval time.Duration
	task     func()
	started  bool
	stopped  bool
}

func (f *fakeScheduler) Every(interval time.Duration, task func()) error {
	f.interval = interval
	f.task = task
	return nil
}

func (f *fakeScheduler) Start() { f.started = true }
func (f *fakeScheduler) Stop()  { f.stopped = true }

func newTestSimulator(sources []string) (*Simulator, *terminal.Log) {
	term := terminal.NewLog(0)
	sim := New(term, sources, 0)
	// run deferred callbacks inline for deterministic assertions
	sim.after = func(_ time.Duration, f func()) { f() }
	return sim, term
}

func TestSimulator_Run(t *testing.T) {
	sources := []string{"Amazon", "eBay", "Walmart"}
	sim, term := newTestSimulator(sources)

	sim.Run()

	// header + one line per source + completion + summary
	lines := term.Recent(10)
	assert.Len(t, lines, len(sources)+3)

	// most recent first
	assert.Contains(t, lines[0].Message, "Active connections: 3")
	assert.Contains(t, lines[1].Message, "Product sync completed")
	assert.Contains(t, lines[2].Message, "Walmart")
	assert.Contains(t, lines[3].Message, "eBay")
	assert.Contains(t, lines[4].Message, "Amazon")
	assert.Contains(t, lines[5].Message, "Syncing products")
	assert.Equal(t, notify.SeverityInfo, lines[5].Severity)
}

func TestSimulator_RunIsCosmeticOnly(t *testing.T) {
	sim, term := newTestSimulator([]string{"Amazon"})

	before := term.Len()
	sim.Run()
	sim.Run()

	// the only observable effect is more log lines and fresh signal values
	assert.Greater(t, term.Len(), before)
}

func TestSimulator_SignalBars(t *testing.T) {
	sim, _ := newTestSimulator([]string{"Amazon"})

	bars := sim.SignalBars()
	assert.Len(t, bars, signalBarCount)
	for _, b := range bars {
		assert.Contains(t, []float64{0.5, 1.0}, b)
	}

	// returned slice is a copy
	bars[0] = 99
	assert.NotEqual(t, 99.0, sim.SignalBars()[0])
}

func TestSimulator_Attach(t *testing.T) {
	sim, term := newTestSimulator([]string{"Amazon", "eBay"})
	sched := &fakeScheduler{}

	assert.NoError(t, sim.Attach(sched, 0))
	assert.Equal(t, DefaultInterval, sched.interval)
	assert.NotNil(t, sched.task)

	sched.task()
	assert.Equal(t, 5, term.Len())
}
