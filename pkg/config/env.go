package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量覆盖项
// 优先级：环境变量 > .env 文件 > data/world.yaml > 代码常量
const (
	EnvSeed      = "OOGA_SEED"
	EnvFPSLimit  = "OOGA_FPS_LIMIT"
	EnvRockCount = "OOGA_ROCK_COUNT"
	EnvTreeCount = "OOGA_TREE_COUNT"
	EnvZoom      = "OOGA_ZOOM"
)

// LoadDotEnv 加载 .env 文件（不存在时返回错误，调用方可忽略）
// godotenv 不会覆盖已存在的环境变量
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// ApplyEnvOverrides 使用环境变量覆盖配置，返回被覆盖的键
// 覆盖后会重新校验配置
func ApplyEnvOverrides(cfg *WorldConfig) ([]string, error) {
	var applied []string

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return applied, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Spawn.Seed = seed
		applied = append(applied, EnvSeed)
	}

	intOverrides := []struct {
		key    string
		target *int
	}{
		{EnvFPSLimit, &cfg.Window.FPSLimit},
		{EnvRockCount, &cfg.Spawn.RockCount},
		{EnvTreeCount, &cfg.Spawn.TreeCount},
	}
	for _, o := range intOverrides {
		v, ok := os.LookupEnv(o.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return applied, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.target = n
		applied = append(applied, o.key)
	}

	if v, ok := os.LookupEnv(EnvZoom); ok {
		zoom, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return applied, fmt.Errorf("%s: %w", EnvZoom, err)
		}
		cfg.CameraZoom = zoom
		applied = append(applied, EnvZoom)
	}

	if err := cfg.Validate(); err != nil {
		return applied, fmt.Errorf("invalid config after env overrides: %w", err)
	}
	return applied, nil
}
