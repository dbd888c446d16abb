package romloader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func writeZip(t *testing.T, memberName string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roms.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	fw, err := w.Create(memberName)
	if err != nil {
		t.Fatalf("zip Create: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("zip Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip Close: %v", err)
	}
	return path
}

func writeGzip(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kernal.901227-03.bin.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("gzip Write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip Close: %v", err)
	}
	return path
}

func TestLoadRawFile(t *testing.T) {
	want := bytes.Repeat([]byte{0xaa}, 0x2000)
	path := writeFile(t, "kernal.bin", want)

	got, name, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != "kernal.bin" {
		t.Fatalf("name = %q, want kernal.bin", name)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("raw ROM bytes did not round-trip")
	}
}

func TestLoadZipPicksMatchingSuffix(t *testing.T) {
	want := bytes.Repeat([]byte{0x42}, 0x1000)
	path := writeZip(t, "characters.901225-01.bin", want)

	got, name, err := Load(path, []string{".bin"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != "characters.901225-01.bin" {
		t.Fatalf("name = %q", name)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("zip member bytes did not round-trip")
	}
}

func TestLoadZipNoMatchReturnsErrNoMatch(t *testing.T) {
	path := writeZip(t, "readme.txt", []byte("hello"))
	if _, _, err := Load(path, []string{".bin"}); err != ErrNoMatch {
		t.Fatalf("got %v, want ErrNoMatch", err)
	}
}

func TestLoadGzip(t *testing.T) {
	want := bytes.Repeat([]byte{0x55}, 0x2000)
	path := writeGzip(t, want)

	got, _, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("gzip member bytes did not round-trip")
	}
}
