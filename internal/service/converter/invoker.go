package converter

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Invoker 调用外部转换器，把源模型文件转换为 glb 落到目标目录
type Invoker struct {
	convertersDir string
}

// NewInvoker 创建转换器调用器，convertersDir 为转换器可执行文件根目录
func NewInvoker(convertersDir string) *Invoker {
	return &Invoker{convertersDir: convertersDir}
}

// Convert 转换 src 到 dstDir，返回落盘后的文件路径
// passthrough 格式直接复制；转换器不存在时立即失败
func (v *Invoker) Convert(ctx context.Context, src, dstDir string) (string, error) {
	f, err := Lookup(src)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	dst := filepath.Join(dstDir, OutputName(src))

	if f.Passthrough {
		if err := copyFile(src, dst); err != nil {
			return "", fmt.Errorf("failed to copy model file: %w", err)
		}
		return dst, nil
	}

	exe := filepath.Join(v.convertersDir, f.Exe)
	if _, err := os.Stat(exe); err != nil {
		return "", fmt.Errorf("converter not found for %s: %s", f.Ext, exe)
	}

	args := make([]string, 0, len(f.Args))
	for _, a := range f.Args {
		a = strings.ReplaceAll(a, "{in}", src)
		a = strings.ReplaceAll(a, "{out}", dst)
		args = append(args, a)
	}

	cmd := exec.CommandContext(ctx, exe, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("converter %s failed: %w: %s", f.Exe, err, strings.TrimSpace(string(out)))
	}

	if _, err := os.Stat(dst); err != nil {
		return "", fmt.Errorf("converter %s produced no output: %w", f.Exe, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
