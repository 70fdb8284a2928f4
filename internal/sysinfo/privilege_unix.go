//go:build unix

package sysinfo

import "golang.org/x/sys/unix"

// IsPrivileged 判断当前进程是否以 root 身份运行
func IsPrivileged() bool {
	return unix.Geteuid() == 0
}
