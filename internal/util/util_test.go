package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/blackwell-systems/libraryctl/internal/util"
)

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := util.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Stat after EnsureDir: %v", err)
	}
	if !fi.IsDir() {
		t.Error("EnsureDir path is not a directory")
	}
}

func TestEnsureDir_Existing(t *testing.T) {
	if err := util.EnsureDir(t.TempDir()); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty-*")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if util.IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}

func TestIsTerminal_ClosedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty-*")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	if util.IsTerminal(f) {
		t.Error("closed file reported as terminal")
	}
}

func TestInitColor_Disable(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()

	color.NoColor = false
	util.InitColor(true)
	if !color.NoColor {
		t.Error("InitColor(true) should disable color")
	}
}
