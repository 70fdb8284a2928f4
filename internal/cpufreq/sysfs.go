// 本文件用于枚举 sysfs 下的 CPU 核心并读写其调速器
package cpufreq

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"cpu-governor/internal/governor"
	"cpu-governor/internal/pathutil"
	"cpu-governor/pkg/utils"
)

const (
	// DefaultRoot 为内核导出 CPU 控制目录的位置
	DefaultRoot = "/sys/devices/system/cpu"

	cpuPrefix    = "cpu"
	cpufreqDir   = "cpufreq"
	governorAttr = "scaling_governor"
)

var (
	// ErrInvalidCoreID 表示核心名不是 cpu<N> 形式
	ErrInvalidCoreID = errors.New("无效的 CPU 核心名")

	coreNamePattern = regexp.MustCompile(`^cpu\d+$`)
)

// Sysfs 绑定一个 CPU 根目录，根目录可替换便于测试
type Sysfs struct {
	root string
}

// New 创建 Sysfs，root 为空时使用 DefaultRoot
func New(root string) *Sysfs {
	if strings.TrimSpace(root) == "" {
		root = DefaultRoot
	}
	return &Sysfs{root: root}
}

// Root 返回当前根目录
func (s *Sysfs) Root() string {
	return s.root
}

type coreEntry struct {
	name string
	num  uint64
}

// ListCores 返回根目录下所有 cpu<N> 条目，按 N 数值升序（cpu2 排在 cpu10 之前）
func (s *Sysfs) ListCores() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("读取 CPU 根目录失败: %w", err)
	}

	cores := make([]coreEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !coreNamePattern.MatchString(name) {
			continue
		}
		num, err := coreNumber(name)
		if err != nil {
			return nil, err
		}
		cores = append(cores, coreEntry{name: name, num: num})
	}

	sort.Slice(cores, func(i, j int) bool {
		return cores[i].num < cores[j].num
	})

	names := make([]string, len(cores))
	for i, c := range cores {
		names[i] = c.name
	}
	return names, nil
}

// coreNumber 解析 cpu<N> 中的 N，过滤后仍失败只可能是数值溢出
func coreNumber(name string) (uint64, error) {
	num, err := strconv.ParseUint(strings.TrimPrefix(name, cpuPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidCoreID, name, err)
	}
	return num, nil
}

// AttrPath 返回 <root>/<core>/cpufreq/<attr>
func (s *Sysfs) AttrPath(core, attr string) (string, error) {
	if !coreNamePattern.MatchString(core) {
		return "", fmt.Errorf("%w: %s", ErrInvalidCoreID, core)
	}
	if !pathutil.IsSingleElement(attr) {
		return "", fmt.Errorf("无效的 cpufreq 属性名: %q", attr)
	}
	return pathutil.JoinUnder(s.root, core, cpufreqDir, attr)
}

// GovernorPath 返回核心调速器文件路径
func (s *Sysfs) GovernorPath(core string) (string, error) {
	return s.AttrPath(core, governorAttr)
}

// ReadGovernor 返回调速器文件的原始内容（含内核写入的末尾换行）
func (s *Sysfs) ReadGovernor(core string) (string, error) {
	path, err := s.GovernorPath(core)
	if err != nil {
		return "", err
	}
	contents, err := utils.ReadFileString(path)
	if err != nil {
		return "", fmt.Errorf("读取 %s 调速器失败: %w", core, err)
	}
	return contents, nil
}

// WriteGovernor 截断写入调速器名称，不追加换行
func (s *Sysfs) WriteGovernor(core string, g governor.Governor) error {
	path, err := s.GovernorPath(core)
	if err != nil {
		return err
	}
	if err := utils.WriteFileTruncate(path, g.String()); err != nil {
		return fmt.Errorf("写入 %s 调速器失败: %w", core, err)
	}
	return nil
}
