package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"

	"github.com/Goden-Gun/facecodes/pkg/config"
	log "github.com/Goden-Gun/facecodes/pkg/logger"
)

// LoggerOptions 日志初始化选项
type LoggerOptions struct {
	// ServiceName 服务名称，用于日志文件命名
	ServiceName string
	// Stdout 控制台输出目标，nil 则使用 os.Stdout
	Stdout io.Writer
	// AddNodeHook 是否为每条日志添加节点 ID
	AddNodeHook bool
}

// nodeHook 添加节点ID到日志
type nodeHook struct {
	nodeID string
}

func (h *nodeHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *nodeHook) Fire(entry *log.Entry) error {
	entry.Data["node_id"] = h.nodeID
	return nil
}

// detectNodeID 检测节点ID
func detectNodeID() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}

	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		hostname := strings.TrimSpace(string(data))
		if hostname != "" {
			return hostname
		}
	}

	return "unknown"
}

// InitLoggerWithOptions 初始化日志；cfg.File.Enabled 时同时输出到滚动文件
func InitLoggerWithOptions(cfg config.LogConfig, opts LoggerOptions) error {
	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{})
	default:
		log.SetFormatter(&log.JSONFormatter{})
	}

	lvl, levelErr := log.ParseLevel(cfg.Level)
	if levelErr != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	log.SetReportCaller(cfg.ReportCaller)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if cfg.File.Enabled {
		writer, err := newRotateWriter(cfg.File, opts.ServiceName)
		if err != nil {
			return err
		}
		log.SetOutput(io.MultiWriter(stdout, writer))
	} else {
		log.SetOutput(stdout)
	}

	if opts.AddNodeHook {
		log.AddHook(&nodeHook{nodeID: detectNodeID()})
	}

	// 输出目标就绪后再告警，避免写入旧的 sink
	if levelErr != nil {
		log.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	return nil
}

// newRotateWriter 创建按天滚动的日志文件
func newRotateWriter(fileCfg config.LogFileConfig, serviceName string) (*rotatelogs.RotateLogs, error) {
	logDir := fileCfg.Dir
	if logDir == "" {
		logDir = "./logs"
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	filename := fileCfg.Filename
	if filename == "" {
		filename = serviceName
	}
	if filename == "" {
		filename = "facecodes"
	}

	maxAge := fileCfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}

	rotationDays := fileCfg.RotationDays
	if rotationDays <= 0 {
		rotationDays = 1
	}

	writer, err := rotatelogs.New(
		filepath.Join(logDir, filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(logDir, filename+".log")),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotationDays)*24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("setup log rotation: %w", err)
	}
	return writer, nil
}
