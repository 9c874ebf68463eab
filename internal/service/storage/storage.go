package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Navii02/pods-pidBackend/internal/config"
)

// Layout 项目文件目录布局
// 模型文件在 unassignedModels/{projectId} 与 tags/{projectId} 之间流转，
// 图纸文件统一放 documents 目录
type Layout struct {
	cfg config.StorageConfig
}

// NewLayout 创建目录布局
func NewLayout(cfg config.StorageConfig) *Layout {
	return &Layout{cfg: cfg}
}

// DocumentsDir 图纸文件目录
func (l *Layout) DocumentsDir() string {
	return l.cfg.DocumentsPath()
}

// ModelsRoot 所有项目转换输出目录的根
func (l *Layout) ModelsRoot() string {
	return l.cfg.ModelsPath()
}

// TagsRoot 所有项目已分配模型目录的根
func (l *Layout) TagsRoot() string {
	return l.cfg.TagsPath()
}

// ModelsDir 项目的转换输出目录
func (l *Layout) ModelsDir(projectID string) string {
	return filepath.Join(l.cfg.ModelsPath(), projectID)
}

// UnassignedDir 项目的未分配模型目录
func (l *Layout) UnassignedDir(projectID string) string {
	return filepath.Join(l.cfg.UnassignedPath(), projectID)
}

// TagsDir 项目的已分配模型目录
func (l *Layout) TagsDir(projectID string) string {
	return filepath.Join(l.cfg.TagsPath(), projectID)
}

// ConvertersDir 转换器可执行文件目录
func (l *Layout) ConvertersDir() string {
	return l.cfg.ConvertersPath()
}

// EnsureBaseDirs 创建所有根目录
func (l *Layout) EnsureBaseDirs() error {
	dirs := []string{
		l.cfg.DocumentsPath(),
		l.cfg.ModelsPath(),
		l.cfg.UnassignedPath(),
		l.cfg.TagsPath(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureDir 创建目录
func (l *Layout) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Move 移动文件，源不存在时视为已移动
// 返回是否实际发生了移动
func (l *Layout) Move(src, dst string) (bool, error) {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}
	if err := os.Rename(src, dst); err != nil {
		return false, fmt.Errorf("failed to move %s: %w", filepath.Base(src), err)
	}
	return true, nil
}

// Remove 删除文件，不存在时视为成功
func (l *Layout) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileSize 获取文件大小（字节），文件不存在返回错误
func (l *Layout) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
