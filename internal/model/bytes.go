package model

import "encoding/json"

// ByteArray 前端传来的文件内容字节
// 兼容 JSON 数字数组和 base64 字符串两种编码
type ByteArray []byte

// UnmarshalJSON 实现 json.Unmarshaler
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw []byte
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*b = raw
		return nil
	}
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	out := make([]byte, len(nums))
	for i, n := range nums {
		out[i] = byte(n)
	}
	*b = out
	return nil
}
