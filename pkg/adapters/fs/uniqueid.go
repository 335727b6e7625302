package fs

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// resolveUniqueID validates the unique id of an element or derives a stable
// one from the snapshot path and element id.
//
// Host unique ids are a UUID optionally followed by "-" and 8 hex digits
// (the episode suffix).
func resolveUniqueID(path string, spec ElementSpec) (string, error) {
	if spec.UniqueID == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		name := fmt.Sprintf("file://%s#%d", filepath.ToSlash(abs), spec.ID)
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String(), nil
	}

	if err := validateUniqueID(spec.UniqueID); err != nil {
		return "", fmt.Errorf("element %d: %w", spec.ID, err)
	}
	return spec.UniqueID, nil
}

func validateUniqueID(s string) error {
	const uuidLen = 36
	if len(s) < uuidLen {
		return fmt.Errorf("invalid unique id %q", s)
	}
	if _, err := uuid.Parse(s[:uuidLen]); err != nil {
		return fmt.Errorf("invalid unique id %q: %w", s, err)
	}
	suffix := s[uuidLen:]
	if suffix == "" {
		return nil
	}
	if len(suffix) != 9 || suffix[0] != '-' {
		return fmt.Errorf("invalid unique id suffix %q", suffix)
	}
	if _, err := hex.DecodeString(suffix[1:]); err != nil {
		return fmt.Errorf("invalid unique id suffix %q: %w", suffix, err)
	}
	return nil
}
