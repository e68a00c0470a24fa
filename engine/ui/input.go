package ui

import "math"

// Input is the raw input the host feeds into Ctx.BeginFrame once per frame.
type Input struct {
	ScreenW, ScreenH float32
	Dt               float32 // seconds since last frame; 0 means 1/60

	PointerX, PointerY float32
	HasPointer         bool

	MouseDown     bool // primary button held
	MousePressed  bool // went down this frame
	MouseReleased bool // went up this frame

	// Wheel/trackpad delta this frame in points. Positive Y moves content
	// down (the wheel turned away from the user).
	ScrollX, ScrollY float32
}

// InputState is the per-frame view of input that widgets read.
type InputState struct {
	Input

	RawScrollDelta    Vec2 // unfiltered delta for this frame
	SmoothScrollDelta Vec2 // low-pass filtered delta for this frame
	PointerDelta      Vec2

	unprocessedScroll Vec2
	prevPointer       Vec2
	hadPointer        bool
}

const (
	// Fraction of pending scroll still unconsumed after smoothScrollWindow seconds.
	smoothScrollRemain = 0.1
	smoothScrollWindow = 0.1
	defaultDt          = 1.0 / 60
)

func (s *InputState) PointerPos() (Vec2, bool) {
	return Vec2{s.PointerX, s.PointerY}, s.HasPointer
}

func (s *InputState) begin(in Input) {
	if in.Dt <= 0 {
		in.Dt = defaultDt
	}
	s.Input = in

	s.RawScrollDelta = Vec2{in.ScrollX, in.ScrollY}

	t := float32(1 - math.Pow(smoothScrollRemain, float64(in.Dt)/smoothScrollWindow))
	s.unprocessedScroll = s.unprocessedScroll.Add(s.RawScrollDelta)
	s.SmoothScrollDelta.X, s.unprocessedScroll.X = smoothStep(s.unprocessedScroll.X, t)
	s.SmoothScrollDelta.Y, s.unprocessedScroll.Y = smoothStep(s.unprocessedScroll.Y, t)

	pos := Vec2{in.PointerX, in.PointerY}
	if in.HasPointer && s.hadPointer {
		s.PointerDelta = pos.Sub(s.prevPointer)
	} else {
		s.PointerDelta = Vec2{}
	}
	s.prevPointer, s.hadPointer = pos, in.HasPointer
}

// smoothStep emits fraction t of pending; under one point it emits the rest.
func smoothStep(pending, t float32) (emit, rest float32) {
	if pending > -1 && pending < 1 {
		return pending, 0
	}
	emit = pending * t
	return emit, pending - emit
}
