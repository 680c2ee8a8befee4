package reveal

import "time"

// Transition describes one animated change towards To.
type Transition struct {
	To       Frame
	Delay    time.Duration
	Duration time.Duration
	Ease     string
}

const easeOut = "ease-out"

// Motion tracks the lifecycle of one mounted element. It reacts to
// visibility notifications and yields the transition to run, if any.
// reveal.js implements the same rules in the browser.
type Motion struct {
	cfg     Config
	current Frame
	shown   bool
	played  bool
	exited  bool
}

// NewMotion mounts an element in its hidden frame.
func NewMotion(cfg Config) *Motion {
	cfg = cfg.Clamped()
	return &Motion{cfg: cfg, current: cfg.Hidden()}
}

// Frame returns the frame the element is currently at or heading to.
func (m *Motion) Frame() Frame { return m.current }

// Shown reports whether the element is in its visible state.
func (m *Motion) Shown() bool { return m.shown }

// Observe handles a visibility notification carrying the visible
// proportion of the element. It returns false when nothing changes.
func (m *Motion) Observe(ratio float64) (Transition, bool) {
	if m.exited {
		return Transition{}, false
	}
	visible := ratio > 0 && ratio >= m.cfg.Threshold

	switch {
	case visible && !m.shown:
		if m.cfg.Once && m.played {
			return Transition{}, false
		}
		m.shown = true
		m.played = true
		m.current = m.cfg.Shown()
		return Transition{To: m.current, Delay: m.cfg.Delay, Duration: m.cfg.Duration, Ease: easeOut}, true
	case !visible && m.shown && !m.cfg.Once:
		m.shown = false
		m.current = m.cfg.Hidden()
		return Transition{To: m.current, Duration: m.cfg.Duration, Ease: easeOut}, true
	}
	return Transition{}, false
}

// Exit handles removal of the element from its list. Without an exit
// frame the element is removed immediately.
func (m *Motion) Exit() (Transition, bool) {
	if m.exited || m.cfg.Exit == nil {
		m.exited = true
		return Transition{}, false
	}
	m.exited = true
	m.shown = false
	m.current = *m.cfg.Exit
	return Transition{To: m.current, Duration: m.cfg.Duration, Ease: easeOut}, true
}
