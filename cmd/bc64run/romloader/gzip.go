package romloader

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractFromGzip decompresses a single-member gzip stream (or
// .tar.gz's outer layer treated as a plain byte stream — the core's
// DiskImage consumers only care about the decompressed bytes, not tar
// headers, so a .tar.gz holding one file round-trips the same as a
// bare .gz).
func extractFromGzip(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("romloader: open gzip: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("romloader: gzip header: %w", err)
	}
	defer gz.Close()

	data, err := limitedRead(gz)
	if err != nil {
		return nil, "", fmt.Errorf("romloader: inflate %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if gz.Name != "" {
		name = gz.Name
	}
	return data, name, nil
}
