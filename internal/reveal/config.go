package reveal

import (
	"errors"
	"time"
)

// Frame is a visual target: opacity and vertical offset in pixels.
type Frame struct {
	Opacity float64
	OffsetY float64
}

// Config holds the animation parameters of one rendered element.
type Config struct {
	Delay     time.Duration
	Duration  time.Duration
	OffsetY   float64
	Once      bool
	Threshold float64

	// Exit is applied when the element is removed from its list.
	Exit *Frame
}

// DefaultConfig returns the parameters used when none are given.
func DefaultConfig() Config {
	return Config{
		Delay:     0,
		Duration:  800 * time.Millisecond,
		OffsetY:   40,
		Once:      true,
		Threshold: 0.2,
	}
}

var (
	ErrThresholdRange   = errors.New("reveal: threshold must be within [0,1]")
	ErrNegativeDuration = errors.New("reveal: duration must not be negative")
	ErrNegativeDelay    = errors.New("reveal: delay must not be negative")
)

// Validate checks the config invariants.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return ErrThresholdRange
	}
	if c.Duration < 0 {
		return ErrNegativeDuration
	}
	if c.Delay < 0 {
		return ErrNegativeDelay
	}
	return nil
}

// Clamped returns a copy with every field forced into its valid range.
func (c Config) Clamped() Config {
	switch {
	case c.Threshold < 0:
		c.Threshold = 0
	case c.Threshold > 1:
		c.Threshold = 1
	}
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	return c
}

// Hidden is the frame the element starts from.
func (c Config) Hidden() Frame {
	return Frame{Opacity: 0, OffsetY: c.OffsetY}
}

// Shown is the frame the element animates to.
func (c Config) Shown() Frame {
	return Frame{Opacity: 1, OffsetY: 0}
}

// Stagger returns base + i*increment, the delay of the i-th sibling.
func Stagger(base, increment time.Duration, i int) time.Duration {
	return base + time.Duration(i)*increment
}
