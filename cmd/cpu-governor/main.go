// 本文件用于 CPU 调速器命令入口
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpu-governor/internal/config"
	"cpu-governor/internal/logger"
	"cpu-governor/internal/models"
	"cpu-governor/internal/service"
)

const listCommand = "list"

const (
	exitCodeOK    = 0
	exitCodeUsage = 1
	exitCodeIOErr = 2
)

type cliOptions struct {
	configPath string
	root       string
	logLevel   string
}

// ioError 标记需要以 exitCodeIOErr 退出的错误
type ioError struct {
	err error
}

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout io.Writer, stderr io.Writer) int {
	defer logger.Close()

	// cobra 遇到 nil 会回退到 os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCommand(stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "cpu-governor 执行失败: %v\n", err)
		return exitCodeFor(err)
	}
	return exitCodeOK
}

func exitCodeFor(err error) int {
	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return exitCodeIOErr
	}
	return exitCodeUsage
}

func newRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	options := &cliOptions{}
	var svc *service.GovernorService

	rootCmd := &cobra.Command{
		Use:           "cpu-governor",
		Short:         "查看或设置 CPU 调速器",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(options)
			if err != nil {
				// list 只输出固定列表，不依赖任何配置
				if cmd.Name() != listCommand {
					return err
				}
				fmt.Fprintf(stderr, "cpu-governor 配置无效，使用默认配置: %v\n", err)
				cfg = defaultConfig()
			}
			if err := initLogger(cfg, stderr); err != nil {
				return err
			}
			logger.Debug("CPU 根目录: %s", cfg.CPURoot)
			svc = service.NewGovernorService(cfg, stdout, stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return fmt.Errorf("缺少子命令")
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.configPath, "config", "", "配置文件路径（可选）")
	flags.StringVar(&options.root, "root", "", "CPU 控制目录，默认 /sys/devices/system/cpu")
	flags.StringVar(&options.logLevel, "log-level", "", "日志级别：debug|info|warn|error")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:     listCommand,
			Aliases: []string{"l"},
			Short:   "列出可用的调速器",
			Args:    cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				svc.List()
			},
		},
		&cobra.Command{
			Use:     "set <value>",
			Aliases: []string{"s"},
			Short:   "为所有核心设置调速器",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := svc.Set(args[0])
				return classify(err)
			},
		},
		&cobra.Command{
			Use:     "get-current",
			Aliases: []string{"g", "get-curr"},
			Short:   "输出每个核心当前的调速器",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return classify(svc.GetCurrent())
			},
		},
		&cobra.Command{
			Use:     "status",
			Aliases: []string{"st"},
			Short:   "输出处理器概况与每个核心的频率状态",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := svc.Status()
				return classify(err)
			},
		},
	)
	return rootCmd
}

// classify 区分输入错误与 I/O 错误
func classify(err error) error {
	if err == nil || service.IsUsageError(err) {
		return err
	}
	return &ioError{err: err}
}

func loadConfig(options *cliOptions) (*models.Config, error) {
	cfg, err := config.LoadConfig(options.configPath)
	if err != nil {
		return nil, err
	}
	if root := strings.TrimSpace(options.root); root != "" {
		cfg.CPURoot = root
	}
	if level := strings.TrimSpace(options.logLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *models.Config {
	cfg := &models.Config{}
	config.ApplyDefaults(cfg)
	return cfg
}

// initLogger 日志文件不可用时退回只写标准错误
func initLogger(cfg *models.Config, stderr io.Writer) error {
	err := logger.InitLogger(cfg, stderr)
	if err == nil {
		return nil
	}
	consoleOnly := *cfg
	consoleOnly.LogFile = ""
	if fallbackErr := logger.InitLogger(&consoleOnly, stderr); fallbackErr != nil {
		return fallbackErr
	}
	logger.Warn("初始化日志文件失败，仅输出到标准错误: %v", err)
	return nil
}
