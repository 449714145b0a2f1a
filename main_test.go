package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPPM(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.ppm")
	if err := run(out, "ppm", 2, 2); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3+4 || lines[0] != "P3" || lines[1] != "2 2" || lines[2] != "255" {
		t.Fatalf("unexpected ppm output %q", b)
	}
	if lines[3] != "0 255 64" {
		t.Fatalf("first pixel got %q", lines[3])
	}
}

func TestRunPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	if err := run(out, "png", 3, 1); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "\x89PNG") {
		t.Fatalf("output is not a png")
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	if err := run(filepath.Join(dir, "x"), "bmp", 2, 2); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := run(filepath.Join(dir, "y"), "ppm", 0, 2); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := os.Stat(filepath.Join(dir, "y")); !os.IsNotExist(err) {
		t.Error("no file should be created for bad dimensions")
	}
}
