package platform

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/revdata/pkg/core"
)

// SelectSheets returns the sheets whose number matches the glob pattern,
// in document order. Patterns use doublestar syntax ("A1*", "{A,S}10?").
func SelectSheets(doc core.Document, pattern string) ([]*core.Sheet, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid sheet pattern %q", pattern)
	}

	var out []*core.Sheet
	for _, s := range doc.Sheets() {
		ok, err := doublestar.Match(pattern, s.Number)
		if err != nil {
			return nil, fmt.Errorf("invalid sheet pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sheet matches %q", pattern)
	}
	return out, nil
}
