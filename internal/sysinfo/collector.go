package sysinfo

import (
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

var brandGHzPattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*ghz`)

// CollectCPUSummary 采集处理器型号、核数与标称主频
// 各项尽力而为，全部失败时才返回错误
func CollectCPUSummary() (CPUSummary, error) {
	summary := CPUSummary{}

	logical, logicalErr := cpu.Counts(true)
	if logicalErr != nil || logical <= 0 {
		logical = runtime.NumCPU()
	}
	summary.Logical = logical
	if physical, err := cpu.Counts(false); err == nil {
		summary.Physical = physical
	}

	infos, infoErr := cpu.Info()
	if infoErr == nil && len(infos) > 0 {
		summary.Model = strings.TrimSpace(infos[0].ModelName)
		summary.MHz = sanitizeMHz(infos[0].Mhz)
	}
	if summary.MHz <= 0 {
		summary.MHz = sanitizeMHz(detectCPUMHz())
	}
	if summary.MHz <= 0 {
		summary.MHz = parseBrandMHz(summary.Model)
	}

	if logicalErr != nil && infoErr != nil {
		return summary, infoErr
	}
	return summary, nil
}

func sanitizeMHz(mhz float64) float64 {
	// 部分平台会返回极小值（如 24 MHz），直接视为未知
	if mhz < 100 {
		return 0
	}
	return mhz
}

func parseBrandMHz(brand string) float64 {
	if strings.TrimSpace(brand) == "" {
		return 0
	}
	matches := brandGHzPattern.FindStringSubmatch(brand)
	if len(matches) < 2 {
		return 0
	}
	val, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0
	}
	return val * 1000
}
