package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Float is an atomic float64 stored as its bit pattern
// Zero value reads as 0.0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Text is an atomic string; values longer than MaxTextLen are truncated
type Text struct {
	ptr atomic.Pointer[string]
}

// MaxTextLen bounds stored text (a uuid fits)
const MaxTextLen = 40

func (s *Text) Set(v string) {
	if len(v) > MaxTextLen {
		v = v[:MaxTextLen]
	}
	s.ptr.Store(&v)
}

func (s *Text) Get() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Table holds named metrics of one type
// Lookups create on first use; callers cache the returned pointer
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first request
func (m *Table[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok = m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Each visits metrics in key order
func (m *Table[T]) Each(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

func (m *Table[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
