package vga

import (
	"runtime"
	"sync/atomic"
)

// spinlock is a busy-wait mutual-exclusion lock. A freestanding kernel has
// no OS scheduler to park a goroutine against, so sync.Mutex's blocking
// semantics don't apply here the way they do in hosted code; this is the Go
// equivalent of the Rust driver's spinning_top::Spinlock, guarding the one
// Vga singleton the same way.
type spinlock struct {
	locked atomic.Bool
}

func (s *spinlock) Lock() {
	for !s.locked.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (s *spinlock) Unlock() {
	s.locked.Store(false)
}
