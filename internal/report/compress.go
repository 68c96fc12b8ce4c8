package report

import (
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// Compress writes a brotli sidecar next to path and returns the sidecar
// path. The original report is left in place.
func Compress(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("report: open %s: %w", path, err)
	}
	defer src.Close()

	out := path + ".br"
	err = writeAtomic(out, func(w io.Writer) error {
		bw := brotli.NewWriter(w)
		if _, err := io.Copy(bw, src); err != nil {
			return fmt.Errorf("report: compress %s: %w", path, err)
		}
		return bw.Close()
	})
	if err != nil {
		return "", err
	}
	return out, nil
}
