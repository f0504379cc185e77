package system

import "log"

// Scoreboard is the shared score state. One instance is created by the
// front end and handed to whatever awards points.
type Scoreboard struct {
	count   int
	display ScoreDisplay
}

func NewScoreboard(display ScoreDisplay) *Scoreboard {
	s := &Scoreboard{display: display}
	s.refresh()
	return s
}

// Add awards n points and refreshes the display.
func (s *Scoreboard) Add(n int) {
	if s == nil || n == 0 {
		return
	}
	s.count += n
	log.Printf("Scoreboard: +%d (total %d)", n, s.count)
	s.refresh()
}

func (s *Scoreboard) Count() int {
	if s == nil {
		return 0
	}
	return s.count
}

// SetDisplay swaps the display sink and pushes the current value to it.
func (s *Scoreboard) SetDisplay(display ScoreDisplay) {
	if s == nil {
		return
	}
	s.display = display
	s.refresh()
}

func (s *Scoreboard) refresh() {
	if s.display != nil {
		s.display.ShowScore(s.count)
	}
}
