package game

import "fmt"

// SubmitClick queues a click and processes the click queue.
func (s *Session) SubmitClick(c Click) {
	s.clicks = append(s.clicks, c)
	s.processClicks()
}

func (s *Session) processClicks() {
	if s.clickState == Draining {
		return
	}
	s.clickState = Draining
	for len(s.clicks) > 0 {
		click := s.clicks[0]
		s.clicks = s.clicks[1:]
		card := s.resolve(click)

		if card.Matched {
			s.log.Debug("ignoring click on matched card", "card", card.Index)
			continue
		}
		prev := s.pendingFaceUp
		if prev == card {
			s.log.Debug("ignoring repeat click", "card", card.Index)
			continue
		}

		s.counts.Clicks++
		s.flips = append(s.flips, Flip{Card: card, Duration: s.timing.FaceUp})
		if prev == nil {
			s.pendingFaceUp = card
			continue
		}

		s.counts.Pairs++
		if prev.Front == card.Front {
			prev.Matched = true
			card.Matched = true
			s.matched += 2
			s.log.Debug("pair matched", "first", prev.Index, "second", card.Index, "front", card.Front)
		} else {
			s.counts.Mismatches++
			s.flips = append(s.flips,
				Pause{Duration: s.timing.Pause},
				Flip{Card: prev, Duration: s.timing.FaceDown},
				Flip{Card: card, Duration: s.timing.FaceDown},
			)
			s.log.Debug("pair mismatched", "first", prev.Index, "second", card.Index)
		}
		s.pendingFaceUp = nil
	}
	s.clickState = Idle
	s.RequestDrain()
}

// resolve maps a click to its card. Filtering clicks that miss every card
// is the event source's job, so an unknown target is a caller bug.
func (s *Session) resolve(c Click) *Card {
	if c.Target < 0 || c.Target >= len(s.cards) {
		panic(fmt.Sprintf("game: click target %d outside deck of %d cards", c.Target, len(s.cards)))
	}
	return s.cards[c.Target]
}
