package ui

// Sense declares which interactions a region listens for. The zero value
// only reports hover.
type Sense uint8

const (
	SenseHover Sense = 0
	SenseClick Sense = 1 << iota
	SenseDrag
)

func SenseClickAndDrag() Sense { return SenseClick | SenseDrag }

func (s Sense) Click() bool { return s&SenseClick != 0 }
func (s Sense) Drag() bool  { return s&SenseDrag != 0 }

// Response reports what happened to an allocated region this frame.
type Response struct {
	ID    ID
	Rect  Rect
	Sense Sense

	Hovered     bool
	Clicked     bool // pressed and released inside
	Dragged     bool // held since a press inside
	DragStarted bool
	DragStopped bool

	pointer    Vec2
	hasPointer bool
}

// InteractPointerPos is the pointer position while the region is being
// pressed, dragged or clicked.
func (r Response) InteractPointerPos() (Vec2, bool) {
	return r.pointer, r.hasPointer
}
