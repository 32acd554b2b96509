// Package syncsim fakes the periodic "product sync" from external
// marketplaces. The simulator only writes activity-log lines and refreshes
// cosmetic signal-strength values — it never touches the catalog, the cart
// or the wallet, and performs no network activity.
package syncsim

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/globalmarket/backend/internal/notify"
	"github.com/globalmarket/backend/internal/terminal"
)

// DefaultInterval matches the original 30-second sync cadence.
const DefaultInterval = 30 * time.Second

// DefaultStagger is the delay between per-source log lines.
const DefaultStagger = 300 * time.Millisecond

const signalBarCount = 4

// Scheduler runs a task on a fixed interval. It exists so tests can replace
// the cron-backed implementation with a deterministic fake.
type Scheduler interface {
	Every(interval time.Duration, task func()) error
	Start()
	Stop()
}

// CronScheduler is the production Scheduler backed by robfig/cron.
type CronScheduler struct {
	c *cron.Cron
}

func NewCronScheduler() *CronScheduler {
	return &CronScheduler{c: cron.New()}
}

func (s *CronScheduler) Every(interval time.Duration, task func()) error {
	_, err := s.c.AddFunc(fmt.Sprintf("@every %s", interval), task)
	return err
}

func (s *CronScheduler) Start() { s.c.Start() }
func (s *CronScheduler) Stop()  { s.c.Stop() }

// Simulator emits one sync pass per interval: a header line, one staggered
// line per marketplace source, then a summary. The staggered lines are
// independent deferred callbacks; if the process exits mid-pass the rest
// simply never fire, and nothing needs rolling back.
type Simulator struct {
	term    *terminal.Log
	sources []string
	stagger time.Duration

	mu         sync.Mutex
	rng        *rand.Rand
	signalBars []float64

	after func(time.Duration, func())
}

func New(term *terminal.Log, sources []string, stagger time.Duration) *Simulator {
	if stagger < 0 {
		stagger = DefaultStagger
	}
	s := &Simulator{
		term:       term,
		sources:    sources,
		stagger:    stagger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		signalBars: make([]float64, signalBarCount),
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	s.RefreshSignal()
	return s
}

// Attach registers the periodic sync pass on the scheduler. The task runs
// for the process lifetime; no cancellation is needed.
func (s *Simulator) Attach(sched Scheduler, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return sched.Every(interval, s.Run)
}

// Run performs one cosmetic sync pass.
func (s *Simulator) Run() {
	s.term.Append("Syncing products from e-commerce platforms...", notify.SeverityInfo)

	for i, source := range s.sources {
		src := source
		s.after(time.Duration(i)*s.stagger, func() {
			s.term.Append(fmt.Sprintf("Connected to %s API - syncing products...", src), notify.SeveritySuccess)
		})
	}

	tail := time.Duration(len(s.sources))*s.stagger + 500*time.Millisecond
	if s.stagger == 0 {
		tail = 0
	}
	s.after(tail, func() {
		s.term.Append("Product sync completed. 50+ products updated from global sources.", notify.SeveritySuccess)
		s.term.Append(fmt.Sprintf("Active connections: %d e-commerce platforms", len(s.sources)), notify.SeverityInfo)
	})

	s.RefreshSignal()
}

// RefreshSignal re-rolls the signal-strength opacity values. The numbers
// carry no meaning; they only make the indicator flicker.
func (s *Simulator) RefreshSignal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.signalBars {
		if s.rng.Float64() > 0.3 {
			s.signalBars[i] = 1.0
		} else {
			s.signalBars[i] = 0.5
		}
	}
}

// SignalBars returns a copy of the current signal opacity values.
func (s *Simulator) SignalBars() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]float64, len(s.signalBars))
	copy(out, s.signalBars)
	return out
}
