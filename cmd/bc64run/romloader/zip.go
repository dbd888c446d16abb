package romloader

import (
	"archive/zip"
	"fmt"
	"path/filepath"
)

// extractFromZIP pulls the first matching member out of a ZIP archive
// using the standard library's reader; ZIP needs no third-party
// decoder the way 7z and RAR do.
func extractFromZIP(path string, suffixes []string) ([]byte, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("romloader: open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !matches(f.Name, suffixes) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("romloader: open zip member %s: %w", f.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("romloader: read zip member %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}
	return nil, "", ErrNoMatch
}
