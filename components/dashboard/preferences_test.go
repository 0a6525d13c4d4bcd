package dashboard

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryThemeStore(t *testing.T) {
	store := NewInMemoryThemeStore()
	viewer := ViewerContext{UserID: "user-1", Locale: "pt-br"}

	if _, ok, err := store.Theme(context.Background(), viewer); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	if err := store.SaveTheme(context.Background(), viewer, ThemeDark); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	theme, ok, err := store.Theme(context.Background(), viewer)
	if err != nil {
		t.Fatalf("Theme returned error: %v", err)
	}
	if !ok || theme != ThemeDark {
		t.Fatalf("expected dark theme persisted, got %q ok=%v", theme, ok)
	}
}

func TestInMemoryThemeStoreRejectsAnonymousViewers(t *testing.T) {
	store := NewInMemoryThemeStore()
	if err := store.SaveTheme(context.Background(), ViewerContext{}, ThemeDark); err == nil {
		t.Fatalf("expected error for anonymous viewer")
	}
	if _, ok, _ := store.Theme(context.Background(), ViewerContext{}); ok {
		t.Fatalf("anonymous viewers should never resolve a stored theme")
	}
}

func TestInMemoryThemeStoreRejectsInvalidTheme(t *testing.T) {
	store := NewInMemoryThemeStore()
	err := store.SaveTheme(context.Background(), ViewerContext{UserID: "user-1"}, Theme("sepia"))
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}
