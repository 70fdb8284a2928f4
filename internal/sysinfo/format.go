// 本文件用于提供频率格式化与辅助函数
package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKHz 将 sysfs 中以 kHz 为单位的频率转为 MHz 文本，无法解析时返回 "-"
func FormatKHz(raw string) string {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "-"
	}
	if value%1000 == 0 {
		return fmt.Sprintf("%d MHz", value/1000)
	}
	return fmt.Sprintf("%.1f MHz", float64(value)/1000)
}
