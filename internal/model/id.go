package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 生成实体短 ID：前缀 + uuid 去掉连字符后的前 6 位
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + raw[:6]
}
