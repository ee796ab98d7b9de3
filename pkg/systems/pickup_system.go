package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/types"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// PickupSystem 管理掉落物的拾取
//
// 工作流程：
//  1. 掉落物进入玩家的拾取半径后，每帧以指数衰减方式飞向玩家
//  2. 距离小于吸收阈值时，背包中对应原型数量 +1，并释放掉落物槽位
type PickupSystem struct {
	log *logrus.Entry
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem() *PickupSystem {
	return &PickupSystem{
		log: logrus.WithField("system", "PickupSystem"),
	}
}

// Update 处理所有掉落物，返回本帧被吸收的数量
func (s *PickupSystem) Update(w *game.World, dt float64) int {
	player := w.Player()
	if player == nil {
		return 0
	}

	cfg := w.Config
	absorbed := 0

	for _, item := range w.Pool.WithFlags(types.FlagItem) {
		if item.Pos.Sub(player.Pos).Len() > cfg.PickupRadius {
			continue
		}

		utils.AnimateVec2ToTarget(&item.Pos, player.Pos, dt, cfg.PickupRate)

		if item.Pos.Sub(player.Pos).Len() < cfg.AbsorbRadius {
			archetype := item.Archetype
			w.Inventory.Add(archetype, 1)
			w.Pool.Release(item)
			absorbed++
			s.log.Debugf("拾取 %s，背包数量: %d", archetype, w.Inventory.Count(archetype))
		}
	}

	return absorbed
}
