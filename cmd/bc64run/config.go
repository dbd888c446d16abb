package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// Config holds everything the reference host needs to bring a machine
// up: where the three fixed ROM images live, an optional cartridge or
// disk image, and display/input preferences. It is loaded from an
// optional JSON file and then overridden by whichever flags the user
// actually passed, matching the layering the teacher's own config
// loading does (file defaults, flag overrides, no framework).
type Config struct {
	KernalPath  string `json:"kernal"`
	BasicPath   string `json:"basic"`
	ChargenPath string `json:"chargen"`
	CartPath    string `json:"cartridge"`
	DiskPath    string `json:"disk"`

	Scale      int  `json:"scale"`
	Fullscreen bool `json:"fullscreen"`

	Joystick1Port int `json:"joystick1_port"` // 0 = unassigned, 1 or 2
	Joystick2Port int `json:"joystick2_port"`
}

func defaultConfig() Config {
	return Config{
		Scale:         2,
		Joystick1Port: 2,
	}
}

// loadConfig reads an optional JSON config file, then applies command
// line flag overrides on top of it (or of the built-in defaults, if
// no -config file was given).
func loadConfig(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("bc64run", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a JSON config file")
	kernal := fs.String("kernal", "", "path to the KERNAL ROM image (8KB, may be archived)")
	basic := fs.String("basic", "", "path to the BASIC ROM image (8KB, may be archived)")
	chargen := fs.String("chargen", "", "path to the character generator ROM image (4KB, may be archived)")
	cart := fs.String("cart", "", "optional cartridge image mapped at $8000")
	disk := fs.String("disk", "", "optional disk image served as device 8")
	scale := fs.Int("scale", 0, "integer display scale factor (0 = use config/default)")
	fullscreen := fs.Bool("fullscreen", false, "start in fullscreen")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, fmt.Errorf("bc64run: read config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("bc64run: parse config: %w", err)
		}
	}

	if *kernal != "" {
		cfg.KernalPath = *kernal
	}
	if *basic != "" {
		cfg.BasicPath = *basic
	}
	if *chargen != "" {
		cfg.ChargenPath = *chargen
	}
	if *cart != "" {
		cfg.CartPath = *cart
	}
	if *disk != "" {
		cfg.DiskPath = *disk
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}

	if cfg.KernalPath == "" || cfg.BasicPath == "" || cfg.ChargenPath == "" {
		return Config{}, fmt.Errorf("bc64run: -kernal, -basic and -chargen (or a -config file naming them) are required")
	}
	return cfg, nil
}
