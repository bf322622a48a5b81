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

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager owns the per-session stores. Each conversation gets its
// own Store keyed by a generated session id.
//
// Thread Safety: Safe for concurrent use.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*MemoryStore
}

// NewSessionManager returns an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*MemoryStore)}
}

// Create allocates a new session and returns its id and store.
func (sm *SessionManager) Create() (string, Store) {
	id := uuid.NewString()
	st := NewMemoryStore()
	sm.mu.Lock()
	sm.sessions[id] = st
	sm.mu.Unlock()
	return id, st
}

// Get returns the store for id, if the session exists.
func (sm *SessionManager) Get(id string) (Store, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	st, ok := sm.sessions[id]
	return st, ok
}

// GetOrCreate returns the store for id, creating the session when it is
// unknown. Callers that generate their own session ids (tool invocations
// carrying a caller-chosen id) use this path.
func (sm *SessionManager) GetOrCreate(id string) Store {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st, ok := sm.sessions[id]; ok {
		return st
	}
	st := NewMemoryStore()
	sm.sessions[id] = st
	return st
}

// Delete removes the session and its store.
func (sm *SessionManager) Delete(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}
