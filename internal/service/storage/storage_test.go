package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Navii02/pods-pidBackend/internal/config"
)

func newTestLayout(t *testing.T) *Layout {
	t.Helper()
	return NewLayout(config.StorageConfig{
		Root:          t.TempDir(),
		DocumentsDir:  "documents",
		ModelsDir:     "models",
		UnassignedDir: "unassignedModels",
		TagsDir:       "tags",
		ConvertersDir: "converters",
	})
}

func TestLayoutDirs(t *testing.T) {
	l := newTestLayout(t)

	if err := l.EnsureBaseDirs(); err != nil {
		t.Fatalf("EnsureBaseDirs failed: %v", err)
	}
	for _, dir := range []string{l.DocumentsDir(), l.ModelsRoot(), l.TagsRoot()} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("dir %s missing: %v", dir, err)
		}
	}

	got := l.UnassignedDir("PRJ123")
	want := filepath.Join(l.cfg.Root, "unassignedModels", "PRJ123")
	if got != want {
		t.Errorf("UnassignedDir = %q, want %q", got, want)
	}
}

func TestMove(t *testing.T) {
	l := newTestLayout(t)

	src := filepath.Join(l.UnassignedDir("PRJ123"), "pump.glb")
	dst := filepath.Join(l.TagsDir("PRJ123"), "pump.glb")
	if err := l.EnsureDir(filepath.Dir(src)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, []byte("glb"), 0o644); err != nil {
		t.Fatal(err)
	}

	moved, err := l.Move(src, dst)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !moved {
		t.Error("expected moved = true")
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone")
	}

	// 重复移动：源已不存在，视为已完成
	moved, err = l.Move(src, dst)
	if err != nil {
		t.Fatalf("second Move failed: %v", err)
	}
	if moved {
		t.Error("expected moved = false when source is gone")
	}
}

func TestRemove(t *testing.T) {
	l := newTestLayout(t)

	path := filepath.Join(l.DocumentsDir(), "drawing.svg")
	if err := l.EnsureDir(filepath.Dir(path)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := l.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	// 幂等：文件已不存在也成功
	if err := l.Remove(path); err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
}

func TestFileSize(t *testing.T) {
	l := newTestLayout(t)

	path := filepath.Join(l.cfg.Root, "data.bin")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	size, err := l.FileSize(path)
	if err != nil {
		t.Fatalf("FileSize failed: %v", err)
	}
	if size != 2048 {
		t.Errorf("size = %d, want 2048", size)
	}

	if _, err := l.FileSize(filepath.Join(l.cfg.Root, "missing.bin")); err == nil {
		t.Error("expected error for missing file")
	}
}
