package systems

import (
	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// TileVisibilitySystem 计算本帧需要绘制的地面瓦片范围
// 结果写入 WorldFrame，供渲染层读取
type TileVisibilitySystem struct{}

// NewTileVisibilitySystem 创建瓦片可见范围系统
func NewTileVisibilitySystem() *TileVisibilitySystem {
	return &TileVisibilitySystem{}
}

// Update 以玩家所在瓦片为中心计算可见范围
func (s *TileVisibilitySystem) Update(w *game.World, frame *game.WorldFrame) {
	center := w.Camera.Pos
	if player := w.Player(); player != nil {
		center = player.Pos
	}
	frame.VisibleTiles = utils.TileRangeAround(center, w.Config.VisibleTileRadius, w.Config.TileWidth)
}
