// 本文件用于定义配置与业务模型
package models

// Config 配置结构体
type Config struct {
	CPURoot       string `yaml:"cpu_root"`        // CPU 控制目录根路径
	LogLevel      string `yaml:"log_level"`       // debug|info|warn|error
	LogFile       string `yaml:"log_file"`        // 为空时只输出到标准错误
	LogShowCaller bool   `yaml:"log_show_caller"` // 日志是否带调用文件
}

// CoreStatus 表示单个核心的调速状态，字段缺失时为空字符串
type CoreStatus struct {
	Core               string
	Governor           string
	CurFreqKHz         string
	Driver             string
	AvailableGovernors string
}

// SetReport 汇总一次批量设置的结果
type SetReport struct {
	Governor string
	Written  []string
	Failed   []CoreFailure
}

// CoreFailure 记录单个核心的失败原因
type CoreFailure struct {
	Core string
	Err  error
}
