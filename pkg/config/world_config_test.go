package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// getProjectRoot returns the project root directory.
// It uses runtime.Caller to find the source file location and navigates up to project root.
func getProjectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	// This file is at pkg/config/world_config_test.go
	// Navigate up two directories to reach project root
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// TestLoadWorldConfig 测试加载项目自带的世界配置
func TestLoadWorldConfig(t *testing.T) {
	initProjectData(t)

	cfg, err := LoadWorldConfig(WorldConfigPath)
	if err != nil {
		t.Fatalf("LoadWorldConfig() error: %v", err)
	}

	if cfg.TileWidth != TileWidth {
		t.Errorf("TileWidth = %v, want %v", cfg.TileWidth, TileWidth)
	}
	if cfg.AbsorbRadius >= cfg.PickupRadius {
		t.Errorf("absorbRadius %v must be smaller than pickupRadius %v", cfg.AbsorbRadius, cfg.PickupRadius)
	}
	if cfg.Window.ClearColor != WindowClearColor {
		t.Errorf("ClearColor = %#x, want %#x", cfg.Window.ClearColor, WindowClearColor)
	}
	if cfg.Window.Title != WindowTitle {
		t.Errorf("Title = %q, want %q", cfg.Window.Title, WindowTitle)
	}
}

// TestParseWorldConfigDefaults 测试缺省字段保留默认值
func TestParseWorldConfigDefaults(t *testing.T) {
	cfg, err := ParseWorldConfig([]byte("selectionRadius: 6\n"))
	if err != nil {
		t.Fatalf("ParseWorldConfig() error: %v", err)
	}
	if cfg.SelectionRadius != 6 {
		t.Errorf("SelectionRadius = %v, want 6", cfg.SelectionRadius)
	}
	if cfg.PickupRadius != PickupRadius || cfg.Window.FPSLimit != FPSLimit {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

// TestWorldConfigValidate 测试配置校验
func TestWorldConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"瓦片宽度为零", "tileWidth: 0", "tileWidth"},
		{"吸收半径大于拾取半径", "absorbRadius: 30", "absorbRadius"},
		{"负衰减速率", "cameraRate: -1", "damping rates"},
		{"负生成数量", "spawn:\n  rockCount: -1", "spawn counts"},
		{"帧率上限为零", "window:\n  fpsLimit: 0", "fpsLimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorldConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestApplyEnvOverrides 测试环境变量覆盖
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvRockCount, "3")
	t.Setenv(EnvZoom, "2.5")

	cfg := DefaultWorldConfig()
	applied, err := ApplyEnvOverrides(cfg)
	if err != nil {
		t.Fatalf("ApplyEnvOverrides() error: %v", err)
	}

	if len(applied) != 3 {
		t.Errorf("applied = %v, want 3 keys", applied)
	}
	if cfg.Spawn.Seed != 42 || cfg.Spawn.RockCount != 3 || cfg.CameraZoom != 2.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

// TestApplyEnvOverridesInvalid 测试非法的环境变量值
func TestApplyEnvOverridesInvalid(t *testing.T) {
	t.Setenv(EnvFPSLimit, "fast")

	if _, err := ApplyEnvOverrides(DefaultWorldConfig()); err == nil {
		t.Error("expected parse error for non-numeric fps limit")
	}

	t.Setenv(EnvFPSLimit, "0")
	if _, err := ApplyEnvOverrides(DefaultWorldConfig()); err == nil {
		t.Error("expected validation error for zero fps limit")
	}
}
