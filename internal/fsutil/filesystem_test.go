package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"testing"
)

func TestMemoryFileSystemReadWrite(t *testing.T) {
	m := NewMemoryFileSystem()

	if err := m.WriteFile("root/sentinel-2/patch/a.tif", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := m.ReadFile("root/sentinel-2/patch/a.tif")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("ReadFile = %q, want %q", data, "abc")
	}

	// ReadFile returns a copy, not the stored slice.
	data[0] = 'z'
	again, _ := m.ReadFile("root/sentinel-2/patch/a.tif")
	if string(again) != "abc" {
		t.Errorf("stored data mutated through ReadFile result: %q", again)
	}
}

func TestMemoryFileSystemOpen(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.WriteFile("f.txt", []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := m.Open("f.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("read %q, want %q", got, "hello")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err == nil {
		t.Error("second Close should fail")
	}

	if _, err := m.Open("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoryFileSystemImplicitDirs(t *testing.T) {
	m := NewMemoryFileSystem()
	files := []string{
		"data/sentinel-1/S1A_1/b.tif",
		"data/sentinel-1/S1A_1/a.tif",
		"data/sentinel-1/S1A_2/a.tif",
	}
	for _, name := range files {
		if err := m.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}

	if !m.Exists("data/sentinel-1") {
		t.Error("implicit directory should exist")
	}
	info, err := m.Stat("data/sentinel-1")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat on implicit directory should report IsDir")
	}

	entries, err := m.ReadDir("data/sentinel-1/S1A_1")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 || entries[0].Name() != "a.tif" || entries[1].Name() != "b.tif" {
		t.Errorf("ReadDir order wrong: %v", entries)
	}

	dirs, err := m.ReadDir("data/sentinel-1")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(dirs) != 2 || !dirs[0].IsDir() {
		t.Errorf("expected 2 child directories, got %v", dirs)
	}

	if _, err := m.ReadDir("data/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(missing) = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoryFileSystemMkdirAll(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if !m.Exists("a/b/c") {
		t.Error("MkdirAll directory should exist")
	}
}

func TestOSFileSystem(t *testing.T) {
	osfs := OSFileSystem{}
	dir := t.TempDir()

	name := dir + "/x.txt"
	if err := osfs.WriteFile(name, []byte("y"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !osfs.Exists(name) {
		t.Error("Exists should report written file")
	}
	data, err := osfs.ReadFile(name)
	if err != nil || string(data) != "y" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	entries, err := osfs.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Errorf("ReadDir = %v, %v", entries, err)
	}
	if osfs.Exists(dir + "/missing") {
		t.Error("Exists should be false for missing file")
	}
}
