package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/revdata/pkg/core"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "report.txt")

		if err := WriteFileAtomic(filename, 0644, writeString("hello atomic")); err != nil {
			t.Fatalf("WriteFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != "hello atomic" {
			t.Errorf("Expected content 'hello atomic', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "report.txt")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := WriteFileAtomic(filename, 0644, writeString("overwritten")); err != nil {
			t.Fatalf("WriteFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != "overwritten" {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Writer Failure Leaves Nothing Behind", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "report.txt")
		boom := errors.New("boom")

		err := WriteFileAtomic(filename, 0644, func(w io.Writer) error {
			io.WriteString(w, "partial")
			return boom
		})
		if !errors.Is(err, core.ErrReportWrite) {
			t.Fatalf("Expected ErrReportWrite, got %v", err)
		}
		if !errors.Is(err, boom) {
			t.Errorf("Expected the writer error to be wrapped, got %v", err)
		}

		if _, err := os.Stat(filename); !os.IsNotExist(err) {
			t.Error("Destination file should not exist")
		}
		entries, _ := os.ReadDir(tmpDir)
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("Temp file %s was not cleaned up", e.Name())
			}
		}
	})

	t.Run("Writer Failure Keeps Previous File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "report.txt")
		if err := os.WriteFile(filename, []byte("previous"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		err := WriteFileAtomic(filename, 0644, func(w io.Writer) error {
			return errors.New("boom")
		})
		if err == nil {
			t.Fatal("Expected error")
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "previous" {
			t.Errorf("Expected previous content to survive, got '%s'", string(got))
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "report.txt")

		err := WriteFileAtomic(filename, 0644, writeString("fail"))
		if !errors.Is(err, core.ErrReportWrite) {
			t.Errorf("Expected ErrReportWrite when directory is missing, got %v", err)
		}
	})
}
