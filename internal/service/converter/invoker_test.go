package converter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertPassthrough(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "models")

	src := filepath.Join(srcDir, "pump.glb")
	if err := os.WriteFile(src, []byte("binary-gltf"), 0o644); err != nil {
		t.Fatal(err)
	}

	inv := NewInvoker(t.TempDir())
	out, err := inv.Convert(context.Background(), src, dstDir)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if filepath.Base(out) != "pump.glb" {
		t.Errorf("output name = %q, want pump.glb", filepath.Base(out))
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not readable: %v", err)
	}
	if string(data) != "binary-gltf" {
		t.Errorf("output content = %q", data)
	}

	// 源文件保持原样
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source file should remain: %v", err)
	}
}

func TestConvertMissingConverter(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "rig.fbx")
	if err := os.WriteFile(src, []byte("fbx-data"), 0o644); err != nil {
		t.Fatal(err)
	}

	// 空的转换器目录，fbx 转换器不存在
	inv := NewInvoker(t.TempDir())
	if _, err := inv.Convert(context.Background(), src, t.TempDir()); err == nil {
		t.Fatal("expected converter-not-found error")
	}
}

func TestConvertUnsupported(t *testing.T) {
	inv := NewInvoker(t.TempDir())
	if _, err := inv.Convert(context.Background(), "model.obj", t.TempDir()); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
