package mocks

// Package mocks contains simple hand-written test doubles for the storage
// and backend ports. These are lightweight and suitable for unit tests
// without codegen; the generated gomock doubles live alongside for tests
// that need call-order expectations.

import (
	"context"
	"sync"
	"time"

	"github.com/corpevents/eventdesk/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenSlot   = (*MemoryTokenSlot)(nil)
	_ ports.ReplicaSlot = (*MemoryReplicaSlot)(nil)
)

// MemoryTokenSlot is an in-memory durable slot. Function fields override
// individual operations for error injection.
type MemoryTokenSlot struct {
	LoadFunc  func(ctx context.Context) (ports.TokenBundle, error)
	StoreFunc func(ctx context.Context, bundle ports.TokenBundle) error
	ClearFunc func(ctx context.Context) error

	mu     sync.Mutex
	bundle ports.TokenBundle
}

func (s *MemoryTokenSlot) Load(ctx context.Context) (ports.TokenBundle, error) {
	if s.LoadFunc != nil {
		return s.LoadFunc(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bundle, nil
}

func (s *MemoryTokenSlot) Store(ctx context.Context, bundle ports.TokenBundle) error {
	if s.StoreFunc != nil {
		return s.StoreFunc(ctx, bundle)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = bundle
	return nil
}

func (s *MemoryTokenSlot) Clear(ctx context.Context) error {
	if s.ClearFunc != nil {
		return s.ClearFunc(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = ports.TokenBundle{}
	return nil
}

// Bundle returns the currently stored bundle.
func (s *MemoryTokenSlot) Bundle() ports.TokenBundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bundle
}

// Seed pre-populates the slot, bypassing any StoreFunc override.
func (s *MemoryTokenSlot) Seed(bundle ports.TokenBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = bundle
}

// MemoryReplicaSlot is an in-memory replica slot recording the last TTL it
// was written with.
type MemoryReplicaSlot struct {
	WriteFunc func(ctx context.Context, token string, ttl time.Duration) error
	ReadFunc  func(ctx context.Context) (string, error)
	ClearFunc func(ctx context.Context) error

	mu      sync.Mutex
	value   string
	lastTTL time.Duration
	writes  int
}

func (s *MemoryReplicaSlot) Write(ctx context.Context, token string, ttl time.Duration) error {
	if s.WriteFunc != nil {
		return s.WriteFunc(ctx, token, ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = token
	s.lastTTL = ttl
	s.writes++
	return nil
}

func (s *MemoryReplicaSlot) Read(ctx context.Context) (string, error) {
	if s.ReadFunc != nil {
		return s.ReadFunc(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *MemoryReplicaSlot) Clear(ctx context.Context) error {
	if s.ClearFunc != nil {
		return s.ClearFunc(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	return nil
}

// Value returns the currently mirrored token.
func (s *MemoryReplicaSlot) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// LastTTL returns the TTL of the most recent write.
func (s *MemoryReplicaSlot) LastTTL() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTTL
}

// Writes returns how many times the replica was written.
func (s *MemoryReplicaSlot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
