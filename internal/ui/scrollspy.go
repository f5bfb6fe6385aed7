package ui

// Heading is a table-of-contents target and its top offset relative to the
// viewport, in pixels.
type Heading struct {
	ID  string
	Top float64
}

// ActiveHeading returns the id of the last heading whose top, minus
// threshold, has reached the viewport top. ok is false when none has.
func ActiveHeading(headings []Heading, threshold float64) (id string, ok bool) {
	for _, h := range headings {
		if h.Top-threshold <= 0 {
			id, ok = h.ID, true
		}
	}
	return id, ok
}

// Event is an input to the scroll-spy.
type Event interface {
	isEvent()
}

// ScrollEvent and ResizeEvent request a recomputation on the next frame.
type ScrollEvent struct{}

type ResizeEvent struct{}

// FrameEvent is an animation frame carrying the current heading offsets.
type FrameEvent struct {
	Headings []Heading
}

// ClickEvent is a click on the table-of-contents link for ID.
type ClickEvent struct {
	ID string
}

func (ScrollEvent) isEvent() {}
func (ResizeEvent) isEvent() {}
func (FrameEvent) isEvent()  {}
func (ClickEvent) isEvent()  {}

// Spy is the scroll-spy state. At most one recomputation is pending at a
// time; scroll events arriving while one is pending are dropped.
type Spy struct {
	Threshold float64
	Pending   bool
	ActiveID  string
}

// Effect tells the host what to do after an event.
type Effect struct {
	// RequestFrame asks the host to deliver a FrameEvent.
	RequestFrame bool
	// ScrollTo names a heading to smooth-scroll to.
	ScrollTo string
}

// Update applies ev to s and returns the next state and any effect.
func Update(s Spy, ev Event) (Spy, Effect) {
	switch e := ev.(type) {
	case ScrollEvent, ResizeEvent:
		if s.Pending {
			return s, Effect{}
		}
		s.Pending = true
		return s, Effect{RequestFrame: true}
	case FrameEvent:
		s.Pending = false
		s.ActiveID, _ = ActiveHeading(e.Headings, s.Threshold)
		return s, Effect{}
	case ClickEvent:
		s.ActiveID = e.ID
		return s, Effect{ScrollTo: e.ID}
	}
	return s, Effect{}
}
