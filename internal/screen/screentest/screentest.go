// Package screentest builds screen services over in-memory storage for
// screen tests.
package screentest

import (
	"testing"

	"github.com/abhisek/secplus/internal/content"
	"github.com/abhisek/secplus/internal/kv"
	"github.com/abhisek/secplus/internal/mastery"
	"github.com/abhisek/secplus/internal/prefs"
	"github.com/abhisek/secplus/internal/screen"
)

// Services returns services backed by the embedded content bundle and a
// fresh in-memory store.
func Services(t testing.TB) (screen.Services, *kv.Memory) {
	t.Helper()

	src, err := content.Embedded()
	if err != nil {
		t.Fatalf("embedded content: %v", err)
	}

	mem := kv.NewMemory()
	adapter := kv.New(mem, nil)
	return screen.Services{
		Catalog:  content.NewCatalog(src, nil),
		Progress: mastery.NewService(adapter),
		Prefs:    prefs.NewService(adapter, prefs.NewNotifier(), nil),
	}, mem
}

