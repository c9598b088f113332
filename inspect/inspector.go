// Package inspect describes layouts as JSON trees for debugging and
// automated testing. Set TERMTABLE_INSPECT=1 to have the interactive viewer
// write a snapshot of every layout it computes.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Introspectable is implemented by components that can report their
// layout at a given width.
type Introspectable interface {
	Inspect(maxWidth int) *Node
}

var (
	mu          sync.Mutex
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

func loadEnv() {
	enabledOnce.Do(func() {
		if os.Getenv("TERMTABLE_INSPECT") == "1" {
			enabled = true
			inspectFile = filepath.Join(os.TempDir(), "termtable-inspect.json")
		}
	})
}

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Enable turns inspection on and sends snapshots to path. An empty path
// turns it off.
func Enable(path string) {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()
	enabled = path != ""
	inspectFile = path
}

// GetInspectFile returns the path to the inspection output file.
func GetInspectFile() string {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes a snapshot to the inspection file when inspection
// is enabled.
func WriteSnapshot(snapshot *Snapshot) error {
	path := GetInspectFile()
	if path == "" {
		return nil
	}
	return WriteSnapshotToPath(snapshot, path)
}

// WriteSnapshotToPath writes a snapshot to a specific path.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshotToPath.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &s, nil
}
