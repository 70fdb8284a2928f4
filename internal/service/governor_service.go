package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cpu-governor/internal/cpufreq"
	"cpu-governor/internal/governor"
	"cpu-governor/internal/logger"
	"cpu-governor/internal/models"
	"cpu-governor/internal/sysinfo"
)

// SummaryFunc 采集处理器概况，测试中可替换
type SummaryFunc func() (sysinfo.CPUSummary, error)

// GovernorService 串起核心枚举与逐核读写
/**
字段含义：
sysfs：绑定 CPU 根目录，负责枚举与逐核读写。
stdout：只写命令结果，便于脚本解析。
stderr：写逐核失败信息。
summary：status 命令头部使用的处理器概况来源。
*/
type GovernorService struct {
	sysfs   *cpufreq.Sysfs
	stdout  io.Writer
	stderr  io.Writer
	summary SummaryFunc
}

// NewGovernorService 创建服务，writer 为 nil 时使用进程标准输出/错误
func NewGovernorService(config *models.Config, stdout, stderr io.Writer) *GovernorService {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &GovernorService{
		sysfs:   cpufreq.New(config.CPURoot),
		stdout:  stdout,
		stderr:  stderr,
		summary: sysinfo.CollectCPUSummary,
	}
}

// SetSummaryFunc 替换处理器概况来源
func (s *GovernorService) SetSummaryFunc(fn SummaryFunc) {
	if fn != nil {
		s.summary = fn
	}
}

// List 逐行输出全部调速器名称
func (s *GovernorService) List() {
	for _, g := range governor.All() {
		fmt.Fprintln(s.stdout, g)
	}
}

// GetCurrent 逐核输出 "<core>: <原始内容>"，首个读取失败即中止
func (s *GovernorService) GetCurrent() error {
	cores, err := s.sysfs.ListCores()
	if err != nil {
		return err
	}
	logger.Debug("%s 下发现 %d 个核心", s.sysfs.Root(), len(cores))

	for _, core := range cores {
		contents, err := s.sysfs.ReadGovernor(core)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "%s: %s", core, contents)
	}
	return nil
}

// isPrivileged 判断当前进程是否具备写权限，测试中可替换
var isPrivileged = sysinfo.IsPrivileged

// Set 先校验再逐核写入，单核失败只记录并继续
// 只有校验失败和枚举失败会返回错误
func (s *GovernorService) Set(value string) (models.SetReport, error) {
	report := models.SetReport{Governor: value}

	g, err := governor.Parse(value)
	if err != nil {
		return report, err
	}

	cores, err := s.sysfs.ListCores()
	if err != nil {
		return report, err
	}

	for _, core := range cores {
		if err := s.sysfs.WriteGovernor(core, g); err != nil {
			report.Failed = append(report.Failed, models.CoreFailure{Core: core, Err: err})
			fmt.Fprintf(s.stderr, "%s: 写入失败: %v\n", core, err)
			continue
		}
		report.Written = append(report.Written, core)
		fmt.Fprintf(s.stdout, "%s: %s\n", core, g)
	}

	if len(report.Failed) > 0 {
		logger.Warn("调速器 %s 写入完成，成功 %d 个，失败 %d 个", g, len(report.Written), len(report.Failed))
		if needsPrivilegeHint(report.Failed) {
			logger.Warn("当前用户不是 root，写入调速器需要 root 权限")
		}
	} else {
		logger.Info("调速器 %s 已写入 %d 个核心", g, len(report.Written))
	}
	return report, nil
}

// needsPrivilegeHint 仅当存在权限错误且当前用户不是 root 时返回 true
func needsPrivilegeHint(failures []models.CoreFailure) bool {
	if isPrivileged() {
		return false
	}
	for _, failure := range failures {
		if sysinfo.IsPermissionErr(failure.Err) {
			return true
		}
	}
	return false
}

// Status 输出处理器概况与逐核状态，缺失的属性显示为 "-"
func (s *GovernorService) Status() ([]models.CoreStatus, error) {
	cores, err := s.sysfs.ListCores()
	if err != nil {
		return nil, err
	}

	summary, err := s.summary()
	if err != nil {
		logger.Debug("采集处理器概况失败: %v", err)
	}
	fmt.Fprintln(s.stdout, summary.Label())

	stats, err := s.sysfs.CpufreqStats()
	if err != nil {
		logger.Warn("读取 cpufreq 状态失败，仅输出调速器: %v", err)
	}

	statuses := make([]models.CoreStatus, 0, len(cores))
	for _, core := range cores {
		status := s.coreStatus(core, stats)
		statuses = append(statuses, status)
		fmt.Fprintf(s.stdout, "%s: governor=%s freq=%s driver=%s available=%s\n",
			core,
			orDash(status.Governor),
			sysinfo.FormatKHz(status.CurFreqKHz),
			orDash(status.Driver),
			orDash(status.AvailableGovernors),
		)
	}
	return statuses, nil
}

// coreStatus 优先使用 cpufreq 统计，缺失时退回逐核读取调速器
func (s *GovernorService) coreStatus(core string, stats map[string]cpufreq.CoreStats) models.CoreStatus {
	status := models.CoreStatus{Core: core}
	if st, ok := stats[core]; ok {
		status.Governor = st.Governor
		status.Driver = st.Driver
		status.AvailableGovernors = st.AvailableGovernors
		if st.CurFreqKHz != nil {
			status.CurFreqKHz = strconv.FormatUint(*st.CurFreqKHz, 10)
		}
		return status
	}
	contents, err := s.sysfs.ReadGovernor(core)
	if err != nil {
		logger.Debug("%s 未导出 cpufreq，可能已离线: %v", core, err)
		return status
	}
	status.Governor = strings.TrimSpace(contents)
	return status
}

// IsUsageError 判断错误属于输入错误而非 I/O 错误
func IsUsageError(err error) bool {
	return errors.Is(err, governor.ErrInvalidGovernor)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
