// 本文件用于 sysfs 路径拼接与越界校验
package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideBaseDir 表示拼接结果未落在根目录下
var ErrOutsideBaseDir = errors.New("路径不在 CPU 根目录下")

// JoinUnder 以 baseDir 为根拼接 elems，结果必须严格位于 baseDir 之下
// 仅做词法校验，不解析符号链接（sysfs 中 cpufreq 本身就是指向 policyN 的链接）
func JoinUnder(baseDir string, elems ...string) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return "", fmt.Errorf("根目录为空")
	}
	base := filepath.Clean(baseDir)
	full := filepath.Join(append([]string{base}, elems...)...)

	rel, err := filepath.Rel(base, full)
	if err != nil {
		return "", fmt.Errorf("计算相对路径失败: %w", err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideBaseDir, toSlashPath(filepath.Join(elems...)))
	}
	return full, nil
}

// IsSingleElement 判断 name 是否为单级路径名
func IsSingleElement(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// toSlashPath 用于将路径统一为斜杠格式
func toSlashPath(input string) string {
	cleaned := filepath.Clean(input)
	cleaned = filepath.ToSlash(cleaned)
	return strings.TrimPrefix(cleaned, "./")
}
