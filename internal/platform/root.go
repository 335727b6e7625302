package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotNames are the file names FindSnapshot looks for, in order.
var SnapshotNames = []string{"revisions.yaml", "revisions.yml", "revisions.json", "revisions.md"}

// FindSnapshot recursively looks upwards from startDir for a snapshot file.
// If found, returns its absolute path.
func FindSnapshot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range SnapshotNames {
			if hasFile(dir, name) {
				return filepath.Join(dir, name), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no snapshot found from %s upwards", abs)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
