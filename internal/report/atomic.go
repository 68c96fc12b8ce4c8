package report

import (
	"fmt"
	"io"
	"os"
)

// writeAtomic writes through a .tmp sibling and renames it into place, so a
// failed run never leaves a half-written report behind.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", tmp, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("report: close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("report: publish %s: %w", path, err)
	}
	return nil
}
