// Package tablecache persists a built table set to disk and rehydrates
// it, so a process doesn't pay the BFS/move-table construction cost on
// every run. It is the "persistence collaborator" spec.md places outside
// the search core: core code only ever sees tables.Build, Load and Save.
package tablecache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"os"

	"github.com/gtank/blake2/blake2b"
	"github.com/kosolve/twophase/internal/kociemba/tables"
)

// formatVersion is bumped whenever the on-disk payload shape changes, so
// an old cache from a previous build is rejected instead of misread.
const formatVersion = 1

const checksumSize = 32 // BLAKE2b-256

// ErrCacheMiss is wrapped by every non-fatal reason Load declines to
// return a table set: missing file, version mismatch, truncated payload,
// or checksum failure. Callers should treat it uniformly as "build the
// tables and save them".
var ErrCacheMiss = errors.New("tablecache: cache miss")

// Load reads and validates a cached table image from path. Any problem
// with the file (missing, wrong version, corrupt) returns an error
// wrapping ErrCacheMiss; the caller should fall back to tables.Build.
func Load(path string) (*tables.Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, err)
	}

	if len(raw) < 1+checksumSize {
		return nil, fmt.Errorf("%w: file too short", ErrCacheMiss)
	}

	version := raw[0]
	digest := raw[1 : 1+checksumSize]
	payload := raw[1+checksumSize:]

	if version != formatVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrCacheMiss, version, formatVersion)
	}

	if !bytes.Equal(digest, checksum(payload)) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCacheMiss)
	}

	var t tables.Tables
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, err)
	}
	return &t, nil
}

// Save gob-encodes t, checksums the payload with BLAKE2b-256, and writes
// version + digest + payload to path atomically (temp file then rename).
func Save(path string, t *tables.Tables) error {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(t); err != nil {
		return fmt.Errorf("tablecache: encode: %w", err)
	}

	var out bytes.Buffer
	out.WriteByte(formatVersion)
	out.Write(checksum(payload.Bytes()))
	out.Write(payload.Bytes())

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("tablecache: write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("tablecache: rename: %w", err)
	}
	return nil
}

func checksum(payload []byte) []byte {
	d, err := blake2b.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		// Only negative/over-max output sizes or oversized key/salt cause
		// this, none of which vary at runtime for a fixed call site.
		panic(err)
	}
	d.Write(payload)
	return d.Sum(nil)
}
