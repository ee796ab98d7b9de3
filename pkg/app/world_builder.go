package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/entities"
	"github.com/gonewx/oogagoblin/pkg/game"
)

// LoadWorldConfig 加载世界配置并应用环境变量和命令行覆盖
// 优先级：命令行 > 环境变量 > data/world.yaml
func LoadWorldConfig(cfg Config) (*config.WorldConfig, error) {
	worldCfg, err := config.LoadWorldConfig(config.WorldConfigPath)
	if err != nil {
		return nil, err
	}

	applied, err := config.ApplyEnvOverrides(worldCfg)
	if err != nil {
		return nil, err
	}
	if len(applied) > 0 {
		logrus.WithField("keys", applied).Info("Applied environment overrides")
	}

	if cfg.Seed != 0 {
		worldCfg.Spawn.Seed = cfg.Seed
	}
	return worldCfg, nil
}

// ResolveSeed 返回实际使用的随机种子，0 表示使用当前时间
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// BuildWorld 根据配置创建并填充世界
//
// 返回：
//
//	*game.World - 已生成玩家、岩石和树木的世界
//	int64 - 实际使用的随机种子（用于复现）
//	error - 原型配置无效或实体池容量不足时返回错误
func BuildWorld(worldCfg *config.WorldConfig) (*game.World, int64, error) {
	reg, err := config.LoadArchetypeRegistry(config.ArchetypeConfigPath)
	if err != nil {
		return nil, 0, err
	}

	seed := ResolveSeed(worldCfg.Spawn.Seed)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15))

	w := game.NewWorld(reg, worldCfg)
	if err := entities.PopulateWorld(w, rng); err != nil {
		return nil, seed, fmt.Errorf("failed to populate world: %w", err)
	}
	return w, seed, nil
}
