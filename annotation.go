package drivererr

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
)

type (
	// Annotation is a key/value pair attached to an error for additional context.
	Annotation struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	// annotations is an insertion-ordered map with unique keys.
	// Overwriting a key keeps its original position.
	annotations struct {
		mu     sync.RWMutex
		keys   []string
		values map[string]string
	}
)

var _ slog.LogValuer = (*annotations)(nil)

func newAnnotations() *annotations {
	return &annotations{}
}

// String renders the annotation the way it appears in an error message.
// The key is omitted when the value already starts with it.
func (a Annotation) String() string {
	if strings.HasPrefix(a.Value, a.Key) {
		return a.Value
	}
	return a.Key + ": " + a.Value
}

func (a *annotations) set(key, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setLocked(key, value)
}

func (a *annotations) setLocked(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// ensure stores the result of fn under key unless the key is already present.
func (a *annotations) ensure(key string, fn func() string) {
	a.mu.RLock()
	_, ok := a.values[key]
	a.mu.RUnlock()
	if ok {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.values[key]; !ok {
		a.setLocked(key, fn())
	}
}

func (a *annotations) len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.keys)
}

// snapshot returns a consistent copy of all entries in insertion order.
func (a *annotations) snapshot() []Annotation {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.keys) == 0 {
		return nil
	}
	out := make([]Annotation, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, Annotation{Key: k, Value: a.values[k]})
	}
	return out
}

func (a *annotations) all() iter.Seq2[string, string] {
	entries := a.snapshot()
	return func(yield func(string, string) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (a *annotations) clone() *annotations {
	if a == nil {
		return newAnnotations()
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return &annotations{
		keys:   slices.Clone(a.keys),
		values: maps.Clone(a.values),
	}
}

func (a *annotations) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, a.len())
	for k, v := range a.all() {
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.GroupValue(attrs...)
}
