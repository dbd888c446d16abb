package romloader

import (
	"fmt"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// extractFrom7z pulls the first matching member out of a 7z archive.
func extractFrom7z(path string, suffixes []string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("romloader: open 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !matches(f.Name, suffixes) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("romloader: open 7z member %s: %w", f.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("romloader: read 7z member %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}
	return nil, "", ErrNoMatch
}
