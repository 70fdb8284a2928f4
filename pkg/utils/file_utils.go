// 本文件用于文件读写相关的通用工具函数
package utils

import "os"

// ReadFileString 读取完整文件内容，保留末尾换行
func ReadFileString(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFileTruncate 截断（不存在则创建）文件后原样写入 data，不追加换行
func WriteFileTruncate(filePath string, data string) error {
	return os.WriteFile(filePath, []byte(data), 0o666)
}
