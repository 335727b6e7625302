package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/revdata/pkg/core"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "revdata-tmp-"
)

// WriteFileAtomic streams write's output into a temporary file next to
// filename and renames it into place only if everything succeeded.
//
// The temporary file is closed exactly once and removed on every failure
// path, so filename is either fully written or left untouched.
// Errors wrap core.ErrReportWrite.
func WriteFileAtomic(filename string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(filename)

	// Create a temporary file in the same directory to ensure atomic rename
	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", core.ErrReportWrite, err)
	}

	closed := false
	defer func() {
		if !closed {
			tmpFile.Close()
		}
		if err != nil {
			os.Remove(tmpFile.Name())
		}
	}()

	buf := bufio.NewWriter(tmpFile)
	if err := write(buf); err != nil {
		return fmt.Errorf("%w: %w", core.ErrReportWrite, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write to temp file: %w", core.ErrReportWrite, err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync temp file: %w", core.ErrReportWrite, err)
	}

	closed = true
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", core.ErrReportWrite, err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("%w: failed to chmod temp file: %w", core.ErrReportWrite, err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("%w: failed to rename temp file to %s: %w", core.ErrReportWrite, filename, err)
	}

	return nil
}
