// Package timer implements the study timer state machine.
package timer

import (
	"context"
	"errors"
	"log"

	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/stats"
)

// CommitInterval is the number of ticks between whole-minute commits.
const CommitInterval = 60

// State is a timer controller state.
type State int

// Controller states.
const (
	Idle State = iota
	Running
	Paused
	ConfirmingStop
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case ConfirmingStop:
		return "confirming-stop"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when an event is not allowed in the current state.
var ErrInvalidTransition = errors.New("invalid timer transition")

// Controller owns the elapsed-seconds counter and the tick source.
//
// The tick source is represented by a generation number. Entering Running
// acquires a fresh generation; every exit from Running releases it, so a tick
// carrying an older generation is ignored.
type Controller struct {
	ledger *stats.Ledger

	state     State
	elapsed   int
	committed int
	gen       int
	ticking   bool
}

// New returns an idle controller committing through ledger.
func New(ledger *stats.Ledger) *Controller {
	return &Controller{ledger: ledger}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Elapsed returns the live elapsed seconds.
func (c *Controller) Elapsed() int {
	return c.elapsed
}

// Running reports whether the tick source is active.
func (c *Controller) Running() bool {
	return c.state == Running
}

// Generation returns the id of the active tick source, valid while Running.
func (c *Controller) Generation() int {
	return c.gen
}

// Unsaved returns elapsed seconds not yet handed to the ledger this session.
func (c *Controller) Unsaved() int {
	return c.elapsed - c.committed
}

// Ledger returns the ledger the controller commits through.
func (c *Controller) Ledger() *stats.Ledger {
	return c.ledger
}

func (c *Controller) acquire() {
	c.gen++
	c.ticking = true
}

func (c *Controller) release() {
	if !c.ticking {
		return
	}
	c.gen++
	c.ticking = false
}

// Start moves Idle or Paused to Running and returns the tick generation.
func (c *Controller) Start() (int, error) {
	if c.state != Idle && c.state != Paused {
		return 0, ErrInvalidTransition
	}
	c.state = Running
	c.acquire()
	return c.gen, nil
}

// Pause freezes a running timer.
func (c *Controller) Pause() error {
	if c.state != Running {
		return ErrInvalidTransition
	}
	c.release()
	c.state = Paused
	return nil
}

// Toggle starts or pauses the timer. It returns the tick generation when
// the timer is now running.
func (c *Controller) Toggle() (gen int, running bool, err error) {
	if c.state == Running {
		return 0, false, c.Pause()
	}
	gen, err = c.Start()
	return gen, err == nil, err
}

// Reset zeroes the counter. Seconds since the last whole-minute commit are
// discarded, not committed.
func (c *Controller) Reset() error {
	switch c.state {
	case Idle:
		return nil
	case Running, Paused:
		c.release()
		c.clear()
		return nil
	default:
		return ErrInvalidTransition
	}
}

// RequestStop asks for stop confirmation, pausing the tick source.
func (c *Controller) RequestStop() error {
	if (c.state != Running && c.state != Paused) || c.elapsed == 0 {
		return ErrInvalidTransition
	}
	c.release()
	c.state = ConfirmingStop
	return nil
}

// CancelStop abandons the stop request and resumes running.
func (c *Controller) CancelStop() (int, error) {
	if c.state != ConfirmingStop {
		return 0, ErrInvalidTransition
	}
	c.state = Running
	c.acquire()
	return c.gen, nil
}

// ConfirmStop commits the partial minute and returns to Idle.
func (c *Controller) ConfirmStop(ctx context.Context) error {
	if c.state != ConfirmingStop {
		return ErrInvalidTransition
	}
	if rem := c.elapsed % CommitInterval; rem > 0 {
		c.commit(ctx, rem)
	}
	c.clear()
	return nil
}

// Tick advances a running timer by one second. Ticks from a released
// source are ignored and reported as false.
func (c *Controller) Tick(ctx context.Context, gen int) bool {
	if c.state != Running || gen != c.gen {
		return false
	}
	c.elapsed++
	if c.elapsed%CommitInterval == 0 {
		c.commit(ctx, CommitInterval)
	}
	return true
}

// Close releases the tick source. Later events are rejected.
func (c *Controller) Close() {
	c.release()
	c.state = Closed
}

// DayTotal returns the committed seconds for day plus, for today, the
// seconds of this session not yet committed.
func (c *Controller) DayTotal(ctx context.Context, day model.DayKey) int {
	now := c.ledger.Now()
	total := c.ledger.WeekRecord(ctx, stats.WeekKeyAt(now))[day]
	if day == stats.DayKeyAt(now) {
		total += c.Unsaved()
	}
	return total
}

// WeekView returns the current week with the live seconds folded into today.
func (c *Controller) WeekView(ctx context.Context) stats.WeekView {
	return stats.LoadWeekView(ctx, c.ledger, c.Unsaved())
}

func (c *Controller) commit(ctx context.Context, amount int) {
	c.committed += amount
	if err := c.ledger.Commit(ctx, amount); err != nil {
		log.Printf("failed to commit %ds of study time: %v", amount, err)
	}
}

func (c *Controller) clear() {
	c.state = Idle
	c.elapsed = 0
	c.committed = 0
}
