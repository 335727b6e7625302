package platform_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/revdata/internal/platform"
	"github.com/aretw0/revdata/pkg/adapters/fs"
	"github.com/aretw0/revdata/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `title: Tower A
activeView: A101
elements:
  - id: 1
    name: Rev 1
    revision: {sequence: 1, description: First}
  - id: 2
    name: Rev 2
    revision: {sequence: 2, description: Second}
  - id: 100
    name: Plan
    sheet: {number: A101, revisions: [1]}
  - id: 101
    name: Plan 2
    sheet: {number: A102, revisions: [2]}
  - id: 200
    name: Section
    sheet: {number: S201, revisions: [1, 2]}
`

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpen(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc, err := platform.Open(writeSnapshot(t, "revisions.yaml", snapshot), platform.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "Tower A", doc.Title())
	assert.Contains(t, logs.String(), "component=model")

	sheet, err := core.RequireSheetView(doc)
	require.NoError(t, err)
	assert.Equal(t, "A101", sheet.Number)

	records, err := platform.NewCollector(platform.WithLogger(logger)).CollectForDisplay(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestOpen_ActiveView(t *testing.T) {
	doc, err := platform.Open(writeSnapshot(t, "revisions.yaml", snapshot), platform.WithActiveView("S201"))
	require.NoError(t, err)

	sheet, err := core.RequireSheetView(doc)
	require.NoError(t, err)
	assert.Equal(t, "S201", sheet.Number)
}

func TestOpen_Strict(t *testing.T) {
	path := writeSnapshot(t, "revisions.yaml", snapshot+"unknown: true\n")

	_, err := platform.Open(path)
	require.NoError(t, err)

	_, err = platform.Open(path, platform.WithStrict(true))
	assert.Error(t, err)
}

// upperSerializer reads YAML with every key lowered first, standing in for a custom format.
type upperSerializer struct{}

func (upperSerializer) Parse(r io.Reader) (*fs.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return fs.NewYAMLSerializer(false).Parse(strings.NewReader(strings.ToLower(string(data))))
}

func TestOpen_CustomSerializer(t *testing.T) {
	path := writeSnapshot(t, "revisions.rev", "TITLE: tower\n")

	_, err := platform.Open(path)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	doc, err := platform.Open(path, platform.WithSerializer(".rev", upperSerializer{}))
	require.NoError(t, err)
	assert.Equal(t, "tower", doc.Title())
}

func TestSelectSheets(t *testing.T) {
	doc, err := platform.Open(writeSnapshot(t, "revisions.yaml", snapshot))
	require.NoError(t, err)

	numbers := func(sheets []*core.Sheet) []string {
		var out []string
		for _, s := range sheets {
			out = append(out, s.Number)
		}
		return out
	}

	got, err := platform.SelectSheets(doc, "A*")
	require.NoError(t, err)
	assert.Equal(t, []string{"A101", "A102"}, numbers(got))

	got, err = platform.SelectSheets(doc, "{A101,S2*}")
	require.NoError(t, err)
	assert.Equal(t, []string{"A101", "S201"}, numbers(got))

	_, err = platform.SelectSheets(doc, "Z*")
	assert.ErrorContains(t, err, "no sheet matches")

	_, err = platform.SelectSheets(doc, "[A")
	assert.ErrorContains(t, err, "invalid sheet pattern")
}
