package config

import "strings"

// ==================== LogConfig 默认值 ====================

// ApplyDefaults 应用日志配置默认值
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "text"
	}
	if l.Level == "" {
		l.Level = "info"
	}
	l.File.ApplyDefaults()
}

// ApplyDefaults 应用日志文件配置默认值
func (f *LogFileConfig) ApplyDefaults() {
	if f.Dir == "" {
		f.Dir = "./logs"
	}
	if f.MaxAgeDays <= 0 {
		f.MaxAgeDays = 7
	}
	if f.RotationDays <= 0 {
		f.RotationDays = 1
	}
}

// ==================== AppConfig 默认值 ====================

// ApplyDefaults 应用基础配置默认值
func (a *AppConfig) ApplyDefaults() {
	if a.Env == "" {
		a.Env = GetEnv()
	}
	if a.NodeID == "" {
		a.NodeID = GetNodeID()
	}
}

// ==================== VendorConfig 默认值 ====================

// ApplyDefaults 去除厂商消息首尾空白；空字符串保留占位，表示该偏移量无消息
func (v *VendorConfig) ApplyDefaults() {
	v.Name = strings.TrimSpace(v.Name)
	for i, msg := range v.ErrorMessages {
		v.ErrorMessages[i] = strings.TrimSpace(msg)
	}
	for i, msg := range v.AcquiredMessages {
		v.AcquiredMessages[i] = strings.TrimSpace(msg)
	}
}
