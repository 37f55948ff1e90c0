package game

// RequestDrain starts draining the action queue unless a drain is already
// running, in which case it returns immediately.
func (s *Session) RequestDrain() {
	if s.flipState == Draining {
		return
	}
	s.flipState = Draining
	s.drainStarts++
	s.log.Debug("flip drain started", "queued", len(s.flips))
	s.drain()
}

// drain dispatches the head action and returns; the action's completion
// calls drain again. The queue is re-checked on every step, so actions
// enqueued while an animation is in flight are still consumed.
func (s *Session) drain() {
	for {
		if len(s.flips) == 0 {
			s.flipState = Idle
			s.log.Debug("flip drain stopped")
			return
		}
		next := s.flips[0]
		s.flips[0] = nil
		s.flips = s.flips[1:]

		switch a := next.(type) {
		case Flip:
			card := a.Card
			card.turn()
			card.Flipping = true
			s.animator.Animate(card, a.Duration, s.resume(func() {
				card.Flipping = false
			}))
			return
		case Pause:
			s.timer.After(a.Duration, s.resume(nil))
			return
		default:
			s.log.Debug("skipping unknown action", "action", next)
		}
	}
}

// resume wraps a completion so that a collaborator firing it twice cannot
// start a second drain step.
func (s *Session) resume(finish func()) func() {
	fired := false
	return func() {
		if fired {
			return
		}
		fired = true
		if finish != nil {
			finish()
		}
		s.drain()
	}
}
