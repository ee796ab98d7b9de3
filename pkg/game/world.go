package game

import (
	"fmt"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/ecs"
)

// World 模拟上下文
//
// 实体池和背包由 tick 编排者独占持有和修改，
// 每个 tick 函数都显式接收 *World，不存在全局可变状态。
// World 在启动时创建一次，进程退出时随之销毁，任何实体的生命周期都不会超过它。
type World struct {
	Pool      *ecs.Pool
	Inventory *Inventory
	Registry  *config.ArchetypeRegistry
	Config    *config.WorldConfig
	Camera    *Camera

	playerIndex int // 玩家所在槽位；玩家不会被释放，因此槽位下标跨帧稳定
}

// NewWorld 创建空世界（尚未生成任何实体）
func NewWorld(reg *config.ArchetypeRegistry, cfg *config.WorldConfig) *World {
	return NewWorldWithPool(ecs.NewPool(), reg, cfg)
}

// NewWorldWithPool 使用给定实体池创建世界（测试中用于小容量池）
func NewWorldWithPool(pool *ecs.Pool, reg *config.ArchetypeRegistry, cfg *config.WorldConfig) *World {
	return &World{
		Pool:        pool,
		Inventory:   NewInventory(),
		Registry:    reg,
		Config:      cfg,
		Camera:      NewCamera(cfg.CameraZoom, cfg.Window.Width, cfg.Window.Height),
		playerIndex: -1,
	}
}

// SetPlayer 登记玩家实体
func (w *World) SetPlayer(e *ecs.Entity) error {
	idx := w.Pool.Index(e)
	if idx < 0 {
		return fmt.Errorf("player entity does not belong to this world's pool")
	}
	w.playerIndex = idx
	return nil
}

// Player 返回玩家实体，未登记时返回 nil
func (w *World) Player() *ecs.Entity {
	if w.playerIndex < 0 {
		return nil
	}
	e := w.Pool.At(w.playerIndex)
	if !e.IsValid() {
		return nil
	}
	return e
}
