package system

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// state tracks a system's position in its lifecycle.
type state int

const (
	statePending  state = iota // on the add queue, OnStart not yet called
	stateActive                // in the active set, receiving updates
	stateStopping              // on the remove queue, still receiving updates
	stateRemoved               // OnStop called, ownership released
)

type entry struct {
	sys   System
	seq   uint64 // registration order, tie-break for equal priorities
	state state
}

// Scheduler owns every registered system and drives the per-tick lifecycle.
// Add and Remove never mutate the active set directly; they queue the change
// until ProcessAdded / ProcessRemoved run between ticks, so Update never
// observes a half-registered or half-destroyed system. Single-threaded, like
// the rest of the engine: all calls happen on the simulation goroutine.
type Scheduler struct {
	active  []*entry // sorted by (priority, seq) ascending
	added   []*entry
	removed []*entry
	nextSeq uint64
	log     *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	return &Scheduler{
		active:  make([]*entry, 0, 16),
		added:   make([]*entry, 0, 4),
		removed: make([]*entry, 0, 4),
		log:     log,
	}
}

// Add queues a system for activation at the next ProcessAdded. Returns false
// if the system is already pending or active.
func (s *Scheduler) Add(sys System) bool {
	if s.find(sys) != nil {
		return false
	}
	s.added = append(s.added, &entry{sys: sys, seq: s.nextSeq, state: statePending})
	s.nextSeq++
	return true
}

// ProcessAdded starts every queued system in enqueue order and merges them
// into the active order. Must run between ticks, never from inside Update.
func (s *Scheduler) ProcessAdded() {
	if len(s.added) == 0 {
		return
	}
	for _, e := range s.added {
		e.sys.OnStart()
		e.state = stateActive
		s.active = append(s.active, e)
		s.log.Debug("system started",
			zap.Int("priority", e.sys.Priority()),
			zap.Uint64("seq", e.seq))
	}
	s.added = s.added[:0]
	sort.SliceStable(s.active, func(i, j int) bool {
		if s.active[i].sys.Priority() != s.active[j].sys.Priority() {
			return s.active[i].sys.Priority() < s.active[j].sys.Priority()
		}
		return s.active[i].seq < s.active[j].seq
	})
}

// Remove queues an active system for teardown. The system keeps receiving
// OnUpdate until ProcessRemoved runs. Returns false if the system is not
// currently active.
func (s *Scheduler) Remove(sys System) bool {
	e := s.find(sys)
	if e == nil || e.state != stateActive {
		return false
	}
	e.state = stateStopping
	s.removed = append(s.removed, e)
	return true
}

// ProcessRemoved stops every queued system in enqueue order and erases it
// from the active set. Must run between ticks.
func (s *Scheduler) ProcessRemoved() {
	if len(s.removed) == 0 {
		return
	}
	for _, e := range s.removed {
		if e.state != stateStopping {
			continue
		}
		e.sys.OnStop()
		e.state = stateRemoved
		s.erase(e)
	}
	s.removed = s.removed[:0]
}

// Update invokes OnUpdate on every active system in priority order. Systems
// queued for removal still run; systems queued for addition do not.
func (s *Scheduler) Update(dt time.Duration) {
	for _, e := range s.active {
		e.sys.OnUpdate(dt)
	}
}

// Stop invokes OnStop exactly once on every system that was started,
// including ones still waiting on the remove queue. Systems on the add queue
// were never started and are skipped. The engine shutdown path: callers
// follow with Clear.
func (s *Scheduler) Stop() {
	for _, e := range s.active {
		if e.state == stateActive || e.state == stateStopping {
			e.sys.OnStop()
			e.state = stateRemoved
		}
	}
}

// Clear drops all systems in every lifecycle state without invoking OnStop.
// Callers needing graceful teardown use Stop first.
func (s *Scheduler) Clear() {
	s.active = s.active[:0]
	s.added = s.added[:0]
	s.removed = s.removed[:0]
}

// Len reports the number of systems in the active set, including ones
// queued for removal but not yet processed.
func (s *Scheduler) Len() int {
	return len(s.active)
}

func (s *Scheduler) find(sys System) *entry {
	for _, e := range s.active {
		if e.sys == sys {
			return e
		}
	}
	for _, e := range s.added {
		if e.sys == sys {
			return e
		}
	}
	return nil
}

func (s *Scheduler) erase(e *entry) {
	for i, cur := range s.active {
		if cur == e {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}
