package goroutine

import (
	"sort"
	"sync"
	"sync/atomic"
)

var (
	goroutineCounter uint64
	goroutineMap     sync.Map
)

// RegisterGoroutine registers a new goroutine with a given name and returns a unique ID
func RegisterGoroutine(name string) uint64 {
	id := atomic.AddUint64(&goroutineCounter, 1)
	goroutineMap.Store(id, name)
	return id
}

// DeregisterGoroutine removes a goroutine from the map using its ID
func DeregisterGoroutine(id uint64) {
	goroutineMap.Delete(id)
}

// GetActiveGoroutines returns the names of the registered goroutines, sorted.
func GetActiveGoroutines() []string {
	var names []string
	goroutineMap.Range(func(_, value interface{}) bool {
		if name, ok := value.(string); ok {
			names = append(names, name)
		}
		return true
	})
	sort.Strings(names)
	return names
}
