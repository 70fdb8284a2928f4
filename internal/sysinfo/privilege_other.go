//go:build !unix

package sysinfo

// IsPrivileged 非 unix 平台没有 cpufreq sysfs，不做判断
func IsPrivileged() bool {
	return true
}
