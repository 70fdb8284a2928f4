package sysinfo

import (
	"errors"
	"io/fs"
	"strings"
)

// IsPermissionErr 判断错误是否由权限不足导致
func IsPermissionErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "operation not permitted") ||
		strings.Contains(msg, "access is denied")
}
