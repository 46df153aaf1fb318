package poller

// Scheduler decides when cadence-driven work is due. It fires at most once per run
// of an identical second: the guard is released as soon as a different second is
// observed, so the same mark fires again a minute later.
type Scheduler struct {
	lastFired int
	armed     bool
}

// NewScheduler returns a scheduler with no guard set.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// IsDue reports whether work should run at currentSecond.
func (s *Scheduler) IsDue(currentSecond int, cadence Cadence) bool {
	if s.armed && s.lastFired == currentSecond {
		return false
	}
	s.armed = false
	if !cadence.Contains(currentSecond) {
		return false
	}
	s.lastFired = currentSecond
	s.armed = true
	return true
}

// Reset clears the guard; call it on every view change.
func (s *Scheduler) Reset() {
	s.armed = false
	s.lastFired = 0
}
