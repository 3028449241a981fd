// Package session tracks which workflows were launched from the same
// user conversation, so clients can fetch everything a conversation
// spawned without re-querying the database.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session groups the workflows created from one conversation.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	WorkflowIDs []string  `json:"workflow_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s Session) clone() Session {
	ids := make([]string, len(s.WorkflowIDs))
	copy(ids, s.WorkflowIDs)
	s.WorkflowIDs = ids
	return s
}

// Tracker manages sessions in memory.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewTracker creates an empty session tracker.
func NewTracker() *Tracker {
	return &Tracker{
		sessions: make(map[string]*Session),
	}
}

// Ensure returns sessionID if that session exists, creating it first if
// needed. An empty sessionID gets a fresh UUID.
func (t *Tracker) Ensure(sessionID, userID string) string {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[sessionID]; !ok {
		now := time.Now()
		t.sessions[sessionID] = &Session{
			ID:          sessionID,
			UserID:      userID,
			WorkflowIDs: []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return sessionID
}

// Attach records a workflow under its session, creating the session if
// it was never ensured. Duplicate attaches are ignored.
func (t *Tracker) Attach(sessionID, workflowID string) {
	if sessionID == "" || workflowID == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		now := time.Now()
		s = &Session{
			ID:          sessionID,
			WorkflowIDs: []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		t.sessions[sessionID] = s
	}
	for _, id := range s.WorkflowIDs {
		if id == workflowID {
			return
		}
	}
	s.WorkflowIDs = append(s.WorkflowIDs, workflowID)
	s.UpdatedAt = time.Now()
}

// Get retrieves a session by ID.
func (t *Tracker) Get(sessionID string) (Session, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.sessions[sessionID]
	if !ok {
		return Session{}, fmt.Errorf("session not found: %s", sessionID)
	}
	return s.clone(), nil
}

// List returns all sessions, optionally filtered by user.
func (t *Tracker) List(userID string) []Session {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Session, 0, len(t.sessions))
	for _, s := range t.sessions {
		if userID != "" && s.UserID != userID {
			continue
		}
		out = append(out, s.clone())
	}
	return out
}

// Delete removes a session. Workflows it referenced are untouched.
func (t *Tracker) Delete(sessionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[sessionID]; !ok {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	delete(t.sessions, sessionID)
	return nil
}
