// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package state

import "sync"

// Store is the session-scoped key/value space a transfer is assembled in.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key. ok is true when the key exists,
	// even if its stored value is nil.
	Get(key string) (v any, ok bool)

	// Set stores v under key, replacing any existing value.
	Set(key string, v any)

	// Delete removes key.
	Delete(key string)

	// Clear removes every key.
	Clear()
}

// MemoryStore is the in-process Store used for live sessions.
//
// Thread Safety: Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]any)}
}

func (m *MemoryStore) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(key string, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = v
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]any)
}
