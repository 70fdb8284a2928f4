// 本文件用于通过 procfs/sysfs 采集各核心的 cpufreq 只读状态
package cpufreq

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prometheus/procfs/sysfs"
)

// cpuSubPath 为 sysfs 挂载点到 CPU 根目录的相对路径
const cpuSubPath = "devices/system/cpu"

// ErrNonStandardRoot 表示根目录不以 devices/system/cpu 结尾，无法推导 sysfs 挂载点
var ErrNonStandardRoot = errors.New("CPU 根目录不是标准 sysfs 布局")

// CoreStats 表示单个核心的 cpufreq 只读状态
type CoreStats struct {
	Core               string
	Governor           string
	Driver             string
	AvailableGovernors string
	CurFreqKHz         *uint64
}

// sysFS 为 procfs/sysfs 的最小接口，测试可替换
type sysFS interface {
	SystemCpufreq() ([]sysfs.SystemCPUCpufreqStats, error)
}

type realSysFS struct {
	sysfs sysfs.FS
}

func (s *realSysFS) SystemCpufreq() ([]sysfs.SystemCPUCpufreqStats, error) {
	return s.sysfs.SystemCpufreq()
}

func newSysFS(mountPoint string) (sysFS, error) {
	fs, err := sysfs.NewFS(mountPoint)
	if err != nil {
		return nil, err
	}
	return &realSysFS{sysfs: fs}, nil
}

// MountPoint 由 CPU 根目录推导 sysfs 挂载点，如 /sys/devices/system/cpu -> /sys
func MountPoint(root string) (string, error) {
	cleaned := filepath.ToSlash(filepath.Clean(root))
	if cleaned == cpuSubPath {
		return ".", nil
	}
	if !strings.HasSuffix(cleaned, "/"+cpuSubPath) {
		return "", fmt.Errorf("%w: %s", ErrNonStandardRoot, root)
	}
	mount := strings.TrimSuffix(cleaned, "/"+cpuSubPath)
	if mount == "" {
		mount = "/"
	}
	return filepath.FromSlash(mount), nil
}

// CpufreqStats 返回以核心名（cpu<N>）为键的 cpufreq 状态，未导出 cpufreq 的核心不在结果中
func (s *Sysfs) CpufreqStats() (map[string]CoreStats, error) {
	mount, err := MountPoint(s.root)
	if err != nil {
		return nil, err
	}
	fs, err := newSysFS(mount)
	if err != nil {
		return nil, fmt.Errorf("打开 sysfs 失败: %w", err)
	}
	return collectStats(fs)
}

func collectStats(fs sysFS) (map[string]CoreStats, error) {
	raw, err := fs.SystemCpufreq()
	if err != nil {
		return nil, fmt.Errorf("读取 cpufreq 状态失败: %w", err)
	}
	stats := make(map[string]CoreStats, len(raw))
	for _, item := range raw {
		// 跳过的核心在结果切片中保留零值
		if item.Name == "" {
			continue
		}
		core := cpuPrefix + item.Name
		stats[core] = CoreStats{
			Core:               core,
			Governor:           strings.TrimSpace(item.Governor),
			Driver:             strings.TrimSpace(item.Driver),
			AvailableGovernors: strings.TrimSpace(item.AvailableGovernors),
			CurFreqKHz:         item.ScalingCurrentFrequency,
		}
	}
	return stats, nil
}
