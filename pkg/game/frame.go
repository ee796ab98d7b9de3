package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// WorldFrame 单帧临时记录
//
// 每个 tick 开始时以零值重新创建，只在本 tick 内写入和读取，不跨 tick 保留。
// Selected 是弱引用（普通槽位指针），不持有实体。
type WorldFrame struct {
	Selected     *ecs.Entity
	VisibleTiles utils.TileRange
	CursorWorld  mgl64.Vec2
}

// IsSelected 判断实体是否为本帧选中对象
func (f *WorldFrame) IsSelected(e *ecs.Entity) bool {
	return f != nil && f.Selected != nil && f.Selected == e
}
