// 本文件用于定义 CPU 调速器名称常量表与校验
package governor

import (
	"errors"
	"fmt"
)

// Governor 表示一个 cpufreq 调速器名称
type Governor string

const (
	Conservative Governor = "conservative"
	Ondemand     Governor = "ondemand"
	Userspace    Governor = "userspace"
	Powersave    Governor = "powersave"
	Performance  Governor = "performance"
	Schedutil    Governor = "schedutil"
)

// ErrInvalidGovernor 表示调速器名称不在已知列表中
var ErrInvalidGovernor = errors.New("无效的调速器")

// 声明顺序即 list 命令的输出顺序
var known = [...]Governor{
	Conservative,
	Ondemand,
	Userspace,
	Powersave,
	Performance,
	Schedutil,
}

var byName = func() map[string]Governor {
	m := make(map[string]Governor, len(known))
	for _, g := range known {
		m[string(g)] = g
	}
	return m
}()

// All 按声明顺序返回全部调速器，调用方可以随意修改返回的切片
func All() []Governor {
	out := make([]Governor, len(known))
	copy(out, known[:])
	return out
}

// Parse 校验并返回调速器，大小写敏感且不做裁剪
func Parse(value string) (Governor, error) {
	if g, ok := byName[value]; ok {
		return g, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidGovernor, value)
}

func (g Governor) String() string {
	return string(g)
}
