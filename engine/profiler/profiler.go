package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Profiler records nested open/close scope events into a fixed ring and
// exports them in speedscope's evented format. A nil *Profiler is valid and
// records nothing.
type Profiler struct {
	mu     sync.Mutex
	evs    []event
	write  uint64
	frames []string
	index  map[string]int
	now    func() time.Time
}

type event struct {
	atNS  int64
	frame int
	open  bool
}

var ErrNoEvents = errors.New("profiler: no events recorded")

// New keeps the most recent capacity events; older ones are overwritten.
func New(capacity int) *Profiler {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	return &Profiler{
		evs:   make([]event, capacity),
		index: map[string]int{},
		now:   time.Now,
	}
}

// Start opens a scope and returns the func that closes it.
func (p *Profiler) Start(name string) func() {
	if p == nil {
		return func() {}
	}
	p.mu.Lock()
	id := p.intern(name)
	start := p.now().UnixNano()
	p.push(event{atNS: start, frame: id, open: true})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		end := p.now().UnixNano()
		if end < start {
			end = start
		}
		p.push(event{atNS: end, frame: id})
		p.mu.Unlock()
	}
}

// Len is the number of events currently held.
func (p *Profiler) Len() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(min(p.write, uint64(len(p.evs))))
}

func (p *Profiler) intern(name string) int {
	if id, ok := p.index[name]; ok {
		return id
	}
	id := len(p.frames)
	p.index[name] = id
	p.frames = append(p.frames, name)
	return id
}

func (p *Profiler) push(e event) {
	p.evs[p.write%uint64(len(p.evs))] = e
	p.write++
}

// snapshot returns the held events in write order.
func (p *Profiler) snapshot() ([]event, []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.write
	size := uint64(len(p.evs))
	var start uint64
	if n > size {
		start = n - size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, p.evs[k%size])
	}
	return out, append([]string(nil), p.frames...)
}

// WriteSpeedscope encodes the held events as a speedscope document.
func (p *Profiler) WriteSpeedscope(w io.Writer, name string) error {
	if p == nil {
		return ErrNoEvents
	}
	evs, frames := p.snapshot()
	doc, err := speedscope(evs, frames, name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Dump writes a speedscope file into dir and returns its path.
func (p *Profiler) Dump(dir, name string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.speedscope.json", name, time.Now().Unix()))
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create profile: %w", err)
	}
	if err := p.WriteSpeedscope(f, name); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("rename profile: %w", err)
	}
	return path, nil
}

// ---------- speedscope document ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// speedscope drops closes that don't match the innermost open scope (their
// open was overwritten by the ring) and closes whatever is still open at the
// last timestamp.
func speedscope(evs []event, frames []string, name string) (*ssFile, error) {
	if len(evs) == 0 {
		return nil, ErrNoEvents
	}
	base := evs[0].atNS
	out := make([]ssEvent, 0, len(evs)+8)
	stack := make([]int, 0, 32)
	last := int64(0)

	for _, e := range evs {
		at := max((e.atNS-base)/1000, last)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, ErrNoEvents
	}

	fs := make([]ssFrame, len(frames))
	for i, n := range frames {
		fs[i] = ssFrame{Name: n}
	}
	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     name,
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "floatscroll-profiler",
		Name:     name,
	}, nil
}

// Runtime is a point-in-time view of the Go runtime for overlays.
type Runtime struct {
	HeapAlloc  uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

func ReadRuntime() Runtime {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Runtime{
		HeapAlloc:  m.HeapAlloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}
