package entities

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/types"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// NewPlayerEntity 在原点创建玩家并登记到世界
func NewPlayerEntity(w *game.World) error {
	player, err := NewEntity(w.Pool, w.Registry, types.ArchetypePlayer, mgl64.Vec2{})
	if err != nil {
		return err
	}
	return w.SetPlayer(player)
}

// RandomTilePosition 在 [-spawnRange, spawnRange] 内随机取点并吸附到瓦片中心
func RandomTilePosition(rng *rand.Rand, spawnRange, tileWidth float64) mgl64.Vec2 {
	p := mgl64.Vec2{
		(rng.Float64()*2 - 1) * spawnRange,
		(rng.Float64()*2 - 1) * spawnRange,
	}
	return utils.SnapToTile(p, tileWidth)
}

// PopulateWorld 生成开局实体：玩家、岩石和树木
// 岩石和树木的位置随机并吸附到瓦片网格
func PopulateWorld(w *game.World, rng *rand.Rand) error {
	log := logrus.WithField("system", "WorldFactory")

	if err := NewPlayerEntity(w); err != nil {
		return fmt.Errorf("failed to spawn player: %w", err)
	}

	spawn := w.Config.Spawn
	batches := []struct {
		archetype types.Archetype
		count     int
	}{
		{types.ArchetypeRock, spawn.RockCount},
		{types.ArchetypeTree, spawn.TreeCount},
	}

	for _, b := range batches {
		for i := 0; i < b.count; i++ {
			pos := RandomTilePosition(rng, spawn.Range, w.Config.TileWidth)
			if _, err := NewEntity(w.Pool, w.Registry, b.archetype, pos); err != nil {
				return fmt.Errorf("failed to spawn %s #%d: %w", b.archetype, i, err)
			}
		}
		log.Debugf("生成 %d 个 %s", b.count, b.archetype)
	}

	log.Infof("世界生成完成，实体数量: %d/%d", w.Pool.Len(), w.Pool.Cap())
	return nil
}
