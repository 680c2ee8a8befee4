package progress

import "strconv"

// Phase tells apart the situations that all map to step 0.
type Phase string

const (
	PhaseLoading Phase = "loading" // no status yet
	PhaseKnown   Phase = "known"
	PhaseUnknown Phase = "unknown" // status outside the catalog
)

// Visual is the presentation class of a single step.
type Visual string

const (
	VisualDone      Visual = "done"
	VisualActive    Visual = "active"
	VisualPending   Visual = "pending"
	VisualCancelled Visual = "cancelled"
)

// Glyph identifies the icon drawn inside a step circle.
type Glyph string

const (
	GlyphCross   Glyph = "x"
	GlyphCheck   Glyph = "check"
	GlyphSpinner Glyph = "spinner"
	GlyphOrdinal Glyph = "ordinal"
)

// Icon is the content of a step circle. Text is only set for ordinals.
type Icon struct {
	Glyph Glyph
	Text  string
}

// State is the derived progress of a booking over a step list.
type State struct {
	CurrentIndex int
	Cancelled    bool
	Phase        Phase
	Steps        []Step
}

// Derive maps a status onto steps. An empty status means the booking has
// not been loaded. Matching is exact; an unrecognized status falls back to
// the first step, like an absent one, with Phase set to PhaseUnknown.
func Derive(status string, steps []Step) State {
	st := State{Phase: PhaseLoading, Steps: steps}
	if status == "" {
		return st
	}

	st.Phase = PhaseUnknown
	for i, step := range steps {
		if string(step.Key) == status {
			st.CurrentIndex = i
			st.Phase = PhaseKnown
			break
		}
	}

	st.Cancelled = status == string(StatusCancelled) && st.CurrentIndex == len(steps)-1
	return st
}

// Visual returns the presentation class of the step at index i.
func (s State) Visual(i int) Visual {
	switch {
	case s.Cancelled && i == s.CurrentIndex:
		return VisualCancelled
	case i < s.CurrentIndex:
		return VisualDone
	case i == s.CurrentIndex:
		return VisualActive
	default:
		return VisualPending
	}
}

// Icon returns the circle content of the step at index i.
func (s State) Icon(i int) Icon {
	switch s.Visual(i) {
	case VisualCancelled:
		return Icon{Glyph: GlyphCross}
	case VisualDone:
		return Icon{Glyph: GlyphCheck}
	case VisualActive:
		return Icon{Glyph: GlyphSpinner}
	default:
		return Icon{Glyph: GlyphOrdinal, Text: strconv.Itoa(i + 1)}
	}
}

// Item is a fully resolved step, ready for a template.
type Item struct {
	Index      int
	Step       Step
	Visual     Visual
	Icon       Icon
	Current    bool
	Last       bool
	LineActive bool
}

// Items resolves every step of the state.
func (s State) Items() []Item {
	items := make([]Item, len(s.Steps))
	for i, step := range s.Steps {
		items[i] = Item{
			Index:      i,
			Step:       step,
			Visual:     s.Visual(i),
			Icon:       s.Icon(i),
			Current:    i == s.CurrentIndex,
			Last:       i == len(s.Steps)-1,
			LineActive: i < s.CurrentIndex,
		}
	}
	return items
}
