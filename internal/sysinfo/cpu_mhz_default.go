//go:build !darwin
// +build !darwin

// 本文件用于提供非 macOS 的 CPU 频率默认实现
package sysinfo

// detectCPUMHz 非 macOS 平台交给 gopsutil，这里返回 0
func detectCPUMHz() float64 {
	return 0
}
