// 本文件用于路径工具的单元测试
package pathutil

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestJoinUnder_BuildsGovernorPath(t *testing.T) {
	got, err := JoinUnder("/sys/devices/system/cpu", "cpu0", "cpufreq", "scaling_governor")
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	want := filepath.FromSlash("/sys/devices/system/cpu/cpu0/cpufreq/scaling_governor")
	if got != want {
		t.Fatalf("路径不符合预期，期望 %q 实际 %q", want, got)
	}
}

func TestJoinUnder_CleansTrailingSeparator(t *testing.T) {
	got, err := JoinUnder("/sys/devices/system/cpu/", "cpu12", "cpufreq/scaling_governor")
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	want := filepath.FromSlash("/sys/devices/system/cpu/cpu12/cpufreq/scaling_governor")
	if got != want {
		t.Fatalf("路径不符合预期，期望 %q 实际 %q", want, got)
	}
}

func TestJoinUnder_RejectsEscape(t *testing.T) {
	cases := map[string][]string{
		"parent":      {"..", "etc", "passwd"},
		"nested up":   {"cpu0", "..", "..", "x"},
		"root itself": {"."},
		"empty":       {},
	}
	for name, elems := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := JoinUnder(t.TempDir(), elems...)
			if !errors.Is(err, ErrOutsideBaseDir) {
				t.Fatalf("期望返回越界错误，实际: %v", err)
			}
		})
	}
}

func TestJoinUnder_EmptyBase(t *testing.T) {
	if _, err := JoinUnder("  ", "cpu0"); err == nil {
		t.Fatalf("根目录为空时期望返回错误")
	}
}

func TestIsSingleElement(t *testing.T) {
	cases := map[string]bool{
		"cpu0":    true,
		"cpu10":   true,
		"":        false,
		".":       false,
		"..":      false,
		"cpu0/x":  false,
		`cpu0\x`:  false,
		"../cpu0": false,
	}
	for name, want := range cases {
		if got := IsSingleElement(name); got != want {
			t.Errorf("IsSingleElement(%q) 期望 %v 实际 %v", name, want, got)
		}
	}
}
