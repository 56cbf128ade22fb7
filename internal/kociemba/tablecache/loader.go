package tablecache

import (
	"errors"
	"log"
	"sync"

	"github.com/kosolve/twophase/internal/kociemba/tables"
)

var (
	loadOnce sync.Once
	loaded   *tables.Tables
)

// LoadOrBuild returns a process-wide table set, building it (and saving
// it to path) at most once no matter how many callers race to ask for it
// concurrently. Subsequent calls, from the CLI or from concurrent HTTP
// requests during warmup, return the same already-built tables.
func LoadOrBuild(path string) (*tables.Tables, error) {
	loadOnce.Do(func() {
		if t, err := Load(path); err == nil {
			loaded = t
			return
		} else if !errors.Is(err, ErrCacheMiss) {
			log.Printf("tablecache: unexpected load error, rebuilding: %v", err)
		}

		loaded = tables.Build()
		if err := Save(path, loaded); err != nil {
			log.Printf("tablecache: failed to save cache to %s: %v", path, err)
		}
	})
	return loaded, nil
}
