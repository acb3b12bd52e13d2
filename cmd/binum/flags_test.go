package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samcharles93/binum/pkg/binum"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "4779", want: 4779},
		{in: "0x12ab", want: 0x12ab},
		{in: "0o17", want: 15},
		{in: "-1", wantErr: true},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseOffset(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseOffset(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOffset(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseOffset(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want binum.Mode
	}{
		{in: "hex", want: binum.ModeHex},
		{in: "dec", want: binum.ModeDecimal},
		{in: "decimal", want: binum.ModeDecimal},
		{in: "oct", want: binum.ModeOctal},
		{in: "bin", want: binum.ModeBinary},
		{in: "sci", want: binum.ModeScientific},
		{in: "scientific", want: binum.ModeScientific},
	}
	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if err != nil {
			t.Errorf("parseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := parseFormat("all"); err == nil {
		t.Errorf("expected error for %q, it is handled before mode parsing", "all")
	}
}

func TestParseTypeFromFlags(t *testing.T) {
	defer func() { typeName, endian = "u32", "big" }()

	typeName, endian = "i16", "le"
	typ, err := parseType()
	if err != nil {
		t.Fatalf("parseType: %v", err)
	}
	want := binum.Type{Kind: binum.I16, Order: binum.Little}
	if typ != want {
		t.Fatalf("parseType = %v, want %v", typ, want)
	}

	typeName, endian = "u256", "big"
	if _, err := parseType(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}

	typeName, endian = "u8", "sideways"
	if _, err := parseType(); err == nil {
		t.Fatalf("expected error for unknown endianness")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if cfg := LoadConfig(); cfg != (Config{}) {
		t.Fatalf("expected zero config when file is missing, got %+v", cfg)
	}

	cfgDir := filepath.Join(dir, "binum")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := "endian: little\nuppercase: true\nlog_level: debug\nserver_address: 0.0.0.0:9090\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig()
	if cfg.Endian != "little" {
		t.Errorf("Endian = %q, want %q", cfg.Endian, "little")
	}
	if cfg.Uppercase == nil || !*cfg.Uppercase {
		t.Errorf("Uppercase = %v, want true", cfg.Uppercase)
	}
	if cfg.Prefix != nil {
		t.Errorf("Prefix = %v, want unset", cfg.Prefix)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ServerAddress != "0.0.0.0:9090" {
		t.Errorf("ServerAddress = %q, want %q", cfg.ServerAddress, "0.0.0.0:9090")
	}
}
