// Package tui provides the Bubble Tea integration for snakebite.
// It maps keys to actions, drives the simulation and animation clocks,
// and draws the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg triggers one simulation tick. Gen identifies the scheduler run
// that issued it; ticks from an earlier run are dropped on arrival.
type tickMsg struct {
	gen uint64
}

// frameMsg triggers one animation frame.
type frameMsg time.Time

// tickScheduler is a stoppable periodic tick source built on tea.Tick.
// Bubble Tea commands can only be issued from Update, so Start arms the
// scheduler and the model collects the pending command with take.
type tickScheduler struct {
	period  time.Duration
	gen     uint64
	running bool
	armed   bool
}

func newTickScheduler(period time.Duration) *tickScheduler {
	return &tickScheduler{period: period}
}

// Start begins a new run of ticks. Ticks already in flight become stale.
func (s *tickScheduler) Start() {
	if s.running {
		return
	}
	s.gen++
	s.running = true
	s.armed = true
}

// Stop halts ticking and invalidates any tick already in flight.
func (s *tickScheduler) Stop() {
	if !s.running {
		return
	}
	s.gen++
	s.running = false
	s.armed = false
}

// Running reports whether ticks are being delivered.
func (s *tickScheduler) Running() bool {
	return s.running
}

// take returns the first tick command after Start, or nil.
func (s *tickScheduler) take() tea.Cmd {
	if !s.armed {
		return nil
	}
	s.armed = false
	return s.next()
}

// accept reports whether msg belongs to the current run.
func (s *tickScheduler) accept(msg tickMsg) bool {
	return s.running && msg.gen == s.gen
}

// next schedules the following tick of the current run.
func (s *tickScheduler) next() tea.Cmd {
	if !s.running {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.period, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// frameCmd schedules the next animation frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
