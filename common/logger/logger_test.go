package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()
	defer func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	}()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message", zap.Int("polygons", 3))
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)
			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestFieldsAndCaller(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nav.log")
	defer func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	}()
	if err := Init("info", logFile); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	Info("mesh compiled", zap.Int("polygons", 47))
	Sugar.Infof("demo path with %d points", 5)
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	logContent := string(content)
	for _, exp := range []string{"mesh compiled", `"polygons": 47`, "demo path with 5 points", "logger_test.go"} {
		if !strings.Contains(logContent, exp) {
			t.Errorf("expected %q in log output, got %s", exp, logContent)
		}
	}
}

func TestComponentNames(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nav.log")
	defer func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	}()
	if err := InitWithFileConfig("info", FileConfig{Path: logFile}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	tests := []struct {
		log  func()
		want string
	}{
		{func() { Info("root message") }, Name + " "},
		{func() { Component("navpoly").Warn("compile message") }, Name + ".navpoly "},
		{func() { Component("navigation").Error("query message") }, Name + ".navigation "},
	}
	for _, tt := range tests {
		tt.log()
	}
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != len(tests) {
		t.Fatalf("expected %d log lines, got %d", len(tests), len(lines))
	}
	for i, tt := range tests {
		if !strings.Contains(lines[i], tt.want) {
			t.Errorf("expected logger name %q in %q", tt.want, lines[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
	if IsValidLevel("verbose") {
		t.Error("verbose is not a valid level")
	}
	if !IsValidLevel("warn") {
		t.Error("warn is a valid level")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
