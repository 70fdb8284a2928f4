package sysinfo

import "fmt"

// CPUSummary 表示 status 命令头部展示的处理器概况
type CPUSummary struct {
	Model    string  `json:"model"`
	Logical  int     `json:"logical"`
	Physical int     `json:"physical"`
	MHz      float64 `json:"mhz"`
}

// Label 返回单行概况文本
func (s CPUSummary) Label() string {
	model := s.Model
	if model == "" {
		model = "--"
	}
	label := fmt.Sprintf("%s · %d 逻辑核", model, s.Logical)
	if s.Physical > 0 {
		label += fmt.Sprintf(" / %d 物理核", s.Physical)
	}
	if s.MHz > 0 {
		label += fmt.Sprintf(" · %.1f GHz", s.MHz/1000)
	}
	return label
}
