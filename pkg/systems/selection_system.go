package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/types"
)

// SelectionSystem 每帧查找光标下最近的可开采实体
type SelectionSystem struct {
	log *logrus.Entry
}

// NewSelectionSystem 创建选择系统
func NewSelectionSystem() *SelectionSystem {
	return &SelectionSystem{
		log: logrus.WithField("system", "SelectionSystem"),
	}
}

// Update 计算本帧选中实体并写入 frame.Selected（可能为 nil）
func (s *SelectionSystem) Update(w *game.World, frame *game.WorldFrame, cursorWorld mgl64.Vec2) {
	frame.CursorWorld = cursorWorld
	frame.Selected = FindNearestSelectable(w.Pool, cursorWorld, w.Config.SelectionRadius)
}

// FindNearestSelectable 返回距离 cursor 最近且严格小于 radius 的可开采实体
//
// 只有距离严格小于当前最优值才会替换，距离相等时保留槽位下标更小（更早遍历到）的实体。
// 半径外的实体即使最近也不会被选中；没有候选时返回 nil。
func FindNearestSelectable(pool *ecs.Pool, cursor mgl64.Vec2, radius float64) *ecs.Entity {
	var selected *ecs.Entity
	best := radius

	for _, e := range pool.WithFlags(types.FlagDestroyable) {
		dist := e.Pos.Sub(cursor).Len()
		if dist < best {
			best = dist
			selected = e
		}
	}
	return selected
}
