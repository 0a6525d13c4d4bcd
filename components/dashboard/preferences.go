package dashboard

import (
	"context"
	"fmt"
	"sync"
)

// ThemeStore remembers the theme each viewer last chose.
type ThemeStore interface {
	Theme(ctx context.Context, viewer ViewerContext) (Theme, bool, error)
	SaveTheme(ctx context.Context, viewer ViewerContext, theme Theme) error
}

// InMemoryThemeStore provides a concurrency-safe default store scoped to the process.
type InMemoryThemeStore struct {
	mu   sync.RWMutex
	data map[string]Theme
}

// NewInMemoryThemeStore creates an empty theme store.
func NewInMemoryThemeStore() *InMemoryThemeStore {
	return &InMemoryThemeStore{
		data: make(map[string]Theme),
	}
}

// Theme returns the stored theme; anonymous viewers never have one.
func (s *InMemoryThemeStore) Theme(_ context.Context, viewer ViewerContext) (Theme, bool, error) {
	if viewer.UserID == "" {
		return "", false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	theme, ok := s.data[viewer.UserID]
	return theme, ok, nil
}

// SaveTheme persists the theme for a viewer.
func (s *InMemoryThemeStore) SaveTheme(_ context.Context, viewer ViewerContext, theme Theme) error {
	if viewer.UserID == "" {
		return fmt.Errorf("theme store requires viewer user id")
	}
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[viewer.UserID] = theme
	return nil
}
