package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/entities"
	"github.com/gonewx/oogagoblin/pkg/game"
)

// MiningState 可开采实体的状态
// 生命值是唯一可恢复的状态，两次点击之间不保留任何中间状态
type MiningState int

const (
	// MiningIntact 完好（生命值等于初始值）
	MiningIntact MiningState = iota
	// MiningDamaged 受损（0 < 生命值 < 初始值）
	MiningDamaged
	// MiningDestroyed 已销毁（槽位已释放）
	MiningDestroyed
)

// String 返回状态名称
func (s MiningState) String() string {
	switch s {
	case MiningIntact:
		return "Intact"
	case MiningDamaged:
		return "Damaged"
	case MiningDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// GetMiningState 根据槽位和原型配置推导开采状态
func GetMiningState(e *ecs.Entity, reg *config.ArchetypeRegistry) MiningState {
	if e == nil || !e.IsValid() || e.Health <= 0 {
		return MiningDestroyed
	}
	if e.Health >= reg.Get(e.Archetype).Health {
		return MiningIntact
	}
	return MiningDamaged
}

// MiningSystem 处理对选中实体的开采
type MiningSystem struct {
	log *logrus.Entry
}

// NewMiningSystem 创建开采系统
func NewMiningSystem() *MiningSystem {
	return &MiningSystem{
		log: logrus.WithField("system", "MiningSystem"),
	}
}

// Update 消费主操作按下事件并作用于本帧的选中实体
//
// 只有存在选中实体时才会消费按下事件。生命值降到 0 时，
// 若原型配置了掉落物，先在原位置生成掉落物，再释放被开采实体的槽位。
// 生成掉落物时实体池已满会返回包装了 ecs.ErrPoolExhausted 的错误。
func (s *MiningSystem) Update(w *game.World, frame *game.WorldFrame, in game.Input) error {
	target := frame.Selected
	if target == nil || !in.IsKeyJustPressed(game.KeyMouseLeft) {
		return nil
	}
	in.ConsumeKeyJustPressed(game.KeyMouseLeft)

	target.Health--
	s.log.Debugf("开采 %s，剩余生命值: %d", target.Archetype, target.Health)

	if target.Health > 0 {
		return nil
	}

	row := w.Registry.Get(target.Archetype)
	if row.HasDrop() {
		if _, err := entities.NewEntity(w.Pool, w.Registry, row.Drop, target.Pos); err != nil {
			return fmt.Errorf("failed to spawn drop for %s: %w", target.Archetype, err)
		}
		s.log.Debugf("%s 被摧毁，掉落 %s 于 (%.1f, %.1f)", target.Archetype, row.Drop, target.Pos[0], target.Pos[1])
	}

	w.Pool.Release(target)
	return nil
}
