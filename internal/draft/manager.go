// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package draft

import "sync"

// Manager hands out one Engine per admin session. Engines are created on
// first use and dropped on logout (or when the session sweeper notices an
// expired session), so an editor's unsaved draft survives page reloads
// within a session but not across logins.
type Manager struct {
	mu      sync.Mutex
	store   Store
	engines map[string]*Engine
}

// NewManager creates a manager whose engines read and write through store.
func NewManager(store Store) *Manager {
	return &Manager{
		store:   store,
		engines: make(map[string]*Engine),
	}
}

// Engine returns the engine for sessionID, creating it if needed.
func (m *Manager) Engine(sessionID string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.engines[sessionID]
	if !ok {
		e = NewEngine(m.store)
		m.engines[sessionID] = e
	}
	return e
}

// Peek returns the engine for sessionID, or nil when the session has not
// opened the editor yet. Used by operations that only need to sync an
// engine that already exists.
func (m *Manager) Peek(sessionID string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engines[sessionID]
}

// Remove drops the engine for sessionID, discarding any unsaved draft.
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, sessionID)
}

// Len returns the number of live engines. Used by the dashboard.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.engines)
}
