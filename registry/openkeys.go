package registry

import (
	"sync"
)

// OpenKeys tracks the keys a Session currently considers open.
// Membership is by Key.Equal. The zero value is ready to use.
//
// The mutex only keeps the slice consistent; it does not make a sequence of
// storage operations atomic.
type OpenKeys struct {
	mu   sync.Mutex
	keys []Key
}

// NewOpenKeys returns an empty set.
func NewOpenKeys() *OpenKeys {
	return &OpenKeys{}
}

// Add records k as open. A key opened twice is recorded twice and needs two
// closes, mirroring handle semantics.
func (o *OpenKeys) Add(k Key) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.keys = append(o.keys, k)
}

// Remove drops one entry equal to k. Removing a key that is not open is a
// no-op. It reports whether an entry was removed.
func (o *OpenKeys) Remove(k Key) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, open := range o.keys {
		if open.Equal(k) {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a key equal to k is open.
func (o *OpenKeys) Contains(k Key) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, open := range o.keys {
		if open.Equal(k) {
			return true
		}
	}
	return false
}

// Len returns the number of open entries.
func (o *OpenKeys) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.keys)
}

// Keys returns a snapshot of the open entries in the order they were added.
func (o *OpenKeys) Keys() []Key {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Key, len(o.keys))
	copy(out, o.keys)
	return out
}
