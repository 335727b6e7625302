package fs

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/revdata/pkg/core"
)

// Snapshot is the on-disk form of a project document.
// The same schema is read from YAML, JSON and Markdown frontmatter.
type Snapshot struct {
	Title      string        `yaml:"title" json:"title"`
	Family     bool          `yaml:"family" json:"family"`
	ActiveView any           `yaml:"activeView" json:"activeView"`
	Revisions  []int64       `yaml:"revisions" json:"revisions"`
	Views      []ViewSpec    `yaml:"views" json:"views"`
	Elements   []ElementSpec `yaml:"elements" json:"elements"`

	// Notes holds the Markdown body, if any.
	Notes string `yaml:"-" json:"-"`
}

type ViewSpec struct {
	ID   int64  `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
}

type ElementSpec struct {
	ID         int64           `yaml:"id" json:"id"`
	UniqueID   string          `yaml:"uniqueId" json:"uniqueId"`
	Name       string          `yaml:"name" json:"name"`
	Category   string          `yaml:"category" json:"category"`
	Parameters []ParameterSpec `yaml:"parameters" json:"parameters"`
	Revision   *RevisionSpec   `yaml:"revision" json:"revision"`
	Sheet      *SheetSpec      `yaml:"sheet" json:"sheet"`
}

type RevisionSpec struct {
	Sequence    int                  `yaml:"sequence" json:"sequence"`
	Number      string               `yaml:"number" json:"number"`
	Numbering   core.NumberingScheme `yaml:"numbering" json:"numbering"`
	Date        string               `yaml:"date" json:"date"`
	Description string               `yaml:"description" json:"description"`
	Issued      bool                 `yaml:"issued" json:"issued"`
	IssuedTo    string               `yaml:"issuedTo" json:"issuedTo"`
	IssuedBy    string               `yaml:"issuedBy" json:"issuedBy"`
	Visibility  core.Visibility      `yaml:"visibility" json:"visibility"`
}

type SheetSpec struct {
	Number    string  `yaml:"number" json:"number"`
	Revisions []int64 `yaml:"revisions" json:"revisions"`
	Hidden    []int64 `yaml:"hidden" json:"hidden"`
}

// ParameterSpec describes one parameter. Value is interpreted according to
// Storage; Display is the host-formatted text of a number.
type ParameterSpec struct {
	Name     string `yaml:"name" json:"name"`
	Storage  string `yaml:"storage" json:"storage"`
	Semantic string `yaml:"semantic" json:"semantic"`
	Value    any    `yaml:"value" json:"value"`
	Display  string `yaml:"display" json:"display"`
}

// ParseStorageKind maps the storage names used in snapshots onto core kinds.
// The second result is false for names that are not recognized.
func ParseStorageKind(s string) (core.StorageKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number", "double":
		return core.Number, true
	case "reference", "elementid", "element_id":
		return core.Reference, true
	case "integer", "int":
		return core.Integer, true
	case "text", "string":
		return core.Text, true
	case "unexposed", "none", "":
		return core.Unexposed, true
	default:
		return core.Unexposed, false
	}
}

func parseSemantic(s string) core.SemanticType {
	switch strings.ToLower(strings.NewReplacer("/", "", "-", "", "_", "", " ", "").Replace(s)) {
	case "yesno", "bool", "boolean":
		return core.SemanticYesNo
	default:
		return core.SemanticNone
	}
}

// toValue converts a ParameterSpec into a core value.
// In strict mode unknown storage kinds are rejected instead of becoming unexposed.
func (p ParameterSpec) toValue(strict bool) (core.Value, error) {
	kind, known := ParseStorageKind(p.Storage)
	if !known && strict {
		return nil, fmt.Errorf("parameter %q: unknown storage %q", p.Name, p.Storage)
	}

	switch kind {
	case core.Number:
		raw, err := toFloat64(p.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		return core.NumberValue{Raw: raw, Display: p.Display}, nil
	case core.Reference:
		if p.Value == nil {
			return core.ReferenceValue{ID: core.InvalidElementID}, nil
		}
		id, err := toInt64(p.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		return core.ReferenceValue{ID: core.ElementID(id)}, nil
	case core.Integer:
		n, err := toInt64(p.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		return core.IntegerValue{Value: n, Semantic: parseSemantic(p.Semantic)}, nil
	case core.Text:
		return core.TextValue{Value: toText(p.Value)}, nil
	default:
		return core.UnexposedValue{}, nil
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d out of range", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		if n < math.MinInt64 || n >= math.MaxInt64+1 {
			return 0, fmt.Errorf("integer %v out of range", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case time.Time:
		return s.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}
