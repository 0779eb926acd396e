package drivererr

import (
	"runtime"
	"strings"
)

type (
	// Stack represents a stack trace captured when an error was created.
	Stack interface {
		// StackTrace returns the raw stack trace as program counters.
		StackTrace() []uintptr
		// Frames returns the stack trace as structured frame information.
		Frames() []Frame
		// HeadFrame returns the frame where the error was created.
		HeadFrame() (Frame, bool)
		// TypeNames returns the owning type name of every frame, innermost first.
		TypeNames() []string
		// Len returns the number of frames in the stack trace.
		Len() int
	}

	// Frame represents a single frame in a stack trace.
	Frame struct {
		Func string `json:"func"`
		File string `json:"file"`
		Line int    `json:"line"`
	}

	stack []uintptr
)

var _ Stack = (*stack)(nil)

const (
	initialStackDepth = 32

	// callersSkip is the number of skip frames when using the Definition methods.
	// 4 frames: runtime.Callers, newStack, newError, and the Definition methods.
	callersSkip = 4
)

// newStack captures every frame above skip, growing the buffer as needed.
func newStack(skip int) stack {
	pcs := make([]uintptr, initialStackDepth)
	for {
		n := runtime.Callers(skip, pcs)
		if n < len(pcs) {
			return pcs[:n:n]
		}
		pcs = make([]uintptr, len(pcs)*2)
	}
}

func (s stack) StackTrace() []uintptr {
	if len(s) == 0 {
		return nil
	}
	return s[:]
}

func (s stack) Frames() []Frame {
	if len(s) == 0 {
		return nil
	}
	fs := runtime.CallersFrames(s)
	frames := make([]Frame, 0, len(s))
	for {
		f, more := fs.Next()
		frames = append(frames, Frame{
			Func: f.Function,
			File: f.File,
			Line: f.Line,
		})
		if !more {
			break
		}
	}
	return frames
}

func (s stack) HeadFrame() (Frame, bool) {
	if len(s) == 0 {
		return Frame{}, false
	}
	f, _ := runtime.CallersFrames(s[:1]).Next()
	return Frame{Func: f.Function, File: f.File, Line: f.Line}, true
}

func (s stack) TypeNames() []string {
	frames := s.Frames()
	if len(frames) == 0 {
		return nil
	}
	names := make([]string, 0, len(frames))
	for _, f := range frames {
		names = append(names, f.TypeName())
	}
	return names
}

func (s stack) Len() int {
	return len(s)
}

// TypeName returns the fully qualified name of the type that owns this frame's
// function, in the form "<import path>.<type>".
// Methods report their receiver type, closures and plain functions report the
// enclosing top-level function.
//
//	github.com/acme/chrome.(*ChromeDriver).Click  ->  github.com/acme/chrome.ChromeDriver
//	github.com/acme/chrome.Open.func1             ->  github.com/acme/chrome.Open
func (f Frame) TypeName() string {
	fn := f.Func
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	pkg := fn[:slash+1+dot]
	owner := fn[slash+1+dot+1:]

	if strings.HasPrefix(owner, "(") {
		owner = strings.TrimPrefix(owner[1:], "*")
		if i := strings.IndexAny(owner, ")["); i >= 0 {
			owner = owner[:i]
		}
	} else if i := strings.IndexAny(owner, ".["); i >= 0 {
		owner = owner[:i]
	}
	return pkg + "." + owner
}
