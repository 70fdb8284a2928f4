//go:build darwin
// +build darwin

// 本文件用于 macOS 下 CPU 标称频率读取
package sysinfo

import "golang.org/x/sys/unix"

// detectCPUMHz Apple Silicon 上 hw.cpufrequency 不存在，依次尝试 max 键
func detectCPUMHz() float64 {
	for _, key := range []string{"hw.cpufrequency", "hw.cpufrequency_max"} {
		if freq, err := unix.SysctlUint64(key); err == nil && freq > 0 {
			return float64(freq) / 1e6
		}
	}
	return 0
}
