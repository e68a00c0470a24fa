package core

// Input accumulates window events between frames.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	hasMouse       bool
	buttons        map[MouseButton]bool
	pressed        map[MouseButton]bool
	released       map[MouseButton]bool
	scrollX        float64
	scrollY        float64
}

// FrameInput is the per-frame snapshot returned by Input.Frame.
type FrameInput struct {
	MouseX, MouseY float64
	HasMouse       bool
	Down           bool // left button held
	Pressed        bool // left button went down this frame
	Released       bool // left button went up this frame
	ScrollX        float64
	ScrollY        float64 // lines, positive = up
}

func NewInput() *Input {
	return &Input{
		keys:     map[Key]bool{},
		buttons:  map[MouseButton]bool{},
		pressed:  map[MouseButton]bool{},
		released: map[MouseButton]bool{},
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		in.hasMouse = true
	case EventCursorLeave:
		in.hasMouse = false
	case EventMouseButton:
		if e.Down && !in.buttons[e.Button] {
			in.pressed[e.Button] = true
		}
		if !e.Down && in.buttons[e.Button] {
			in.released[e.Button] = true
		}
		in.buttons[e.Button] = e.Down
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool              { return in.keys[k] }
func (in *Input) IsMouseDown(b MouseButton) bool    { return in.buttons[b] }
func (in *Input) PendingScroll() (float64, float64) { return in.scrollX, in.scrollY }

// Frame snapshots the left-button/pointer/scroll state and clears the
// per-frame edges and scroll accumulators.
func (in *Input) Frame() FrameInput {
	f := FrameInput{
		MouseX:   in.mouseX,
		MouseY:   in.mouseY,
		HasMouse: in.hasMouse,
		Down:     in.buttons[MouseLeft],
		Pressed:  in.pressed[MouseLeft],
		Released: in.released[MouseLeft],
		ScrollX:  in.scrollX,
		ScrollY:  in.scrollY,
	}
	for b := range in.pressed {
		delete(in.pressed, b)
	}
	for b := range in.released {
		delete(in.released, b)
	}
	in.scrollX, in.scrollY = 0, 0
	return f
}
