package main

import (
	"path/filepath"
	"strings"

	bc64 "github.com/brianhuffman/bc64"
	"github.com/brianhuffman/bc64/cmd/bc64run/romloader"
)

// flatDisk implements bc64.DiskImage over a single PRG file (or a
// single member pulled out of an archive), the flat-blob level the
// core's disk interface asks for — no .d64 sector geometry, matching
// romloader's own disk_raw.c-equivalent scope (SPEC_FULL.md §4.6).
type flatDisk struct {
	name string
	data []byte
}

func loadDiskImage(path string) (bc64.DiskImage, error) {
	data, name, err := romloader.Load(path, nil)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return &flatDisk{name: strings.ToUpper(name), data: data}, nil
}

func (d *flatDisk) Open(name string) ([]byte, bool) {
	if !strings.EqualFold(name, d.name) {
		return nil, false
	}
	return d.data, true
}

func (d *flatDisk) Directory() []bc64.DirEntry {
	return []bc64.DirEntry{{Name: d.name, Blocks: (len(d.data) + 253) / 254}}
}

// Write replaces the single blob this image holds, so a SAVE in the
// same session can be LOADed back. It does not persist to the
// filesystem: the source path may point inside an archive member, and
// silently rewriting the host's original image on every SAVE is not a
// behavior this reference host opts into without being asked.
func (d *flatDisk) Write(name string, data []byte) bool {
	d.name = strings.ToUpper(name)
	d.data = append([]byte(nil), data...)
	return true
}
