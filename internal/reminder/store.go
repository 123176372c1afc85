// Package reminder holds the reminder title extraction and the ordered
// reminder store.
package reminder

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"sync"

	"github.com/pathakanu/myAssistant/internal/model"
)

// ErrNotFound is returned by RemoveAt when the position is outside the list.
var ErrNotFound = errors.New("reminder not found")

// Store keeps reminders in insertion order. Positions are 1-based and refer
// to the current list, not to reminder IDs.
type Store interface {
	Append(ctx context.Context, r *model.Reminder) error
	List(ctx context.Context) ([]model.Reminder, error)
	RemoveAt(ctx context.Context, position int) (model.Reminder, error)
}

// MemoryStore is a process-local Store. It assigns increasing IDs starting at 1.
type MemoryStore struct {
	mu        sync.Mutex
	reminders []model.Reminder
	nextID    uint
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Append assigns r an ID and adds it to the end of the list.
func (s *MemoryStore) Append(_ context.Context, r *model.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.reminders = append(s.reminders, *r)
	return nil
}

// List returns a copy of the reminders in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out, nil
}

// RemoveAt deletes the reminder at the 1-based position. Out of range
// positions return ErrNotFound and leave the store untouched.
func (s *MemoryStore) RemoveAt(_ context.Context, position int) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if position < 1 || position > len(s.reminders) {
		return model.Reminder{}, ErrNotFound
	}
	idx := position - 1
	removed := s.reminders[idx]
	s.reminders = append(s.reminders[:idx], s.reminders[idx+1:]...)
	return removed, nil
}

var positionPattern = regexp.MustCompile(`\d+`)

// ParsePosition returns the first integer in text, or 0 when there is none.
// Zero is never a valid position, so callers can pass it straight to RemoveAt.
func ParsePosition(text string) int {
	m := positionPattern.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
