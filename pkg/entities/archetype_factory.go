package entities

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/types"
)

// SetupEntity 将原型配置复制到新分配的槽位上
// 槽位必须刚由 Pool.Allocate 返回（其余字段为零值）
func SetupEntity(e *ecs.Entity, reg *config.ArchetypeRegistry, a types.Archetype) {
	row := reg.Get(a)
	e.Archetype = a
	e.Sprite = row.Sprite
	e.Health = row.Health
	e.Flags = types.FlagValid | row.Flags
}

// NewEntity 分配一个槽位并按原型初始化
// 参数:
//   - pool: 实体池
//   - reg: 原型注册表
//   - a: 原型
//   - pos: 世界坐标
//
// 返回: 新实体；实体池已满时返回包装了 ecs.ErrPoolExhausted 的错误
func NewEntity(pool *ecs.Pool, reg *config.ArchetypeRegistry, a types.Archetype, pos mgl64.Vec2) (*ecs.Entity, error) {
	e, err := pool.Allocate()
	if err != nil {
		return nil, fmt.Errorf("failed to create %s entity: %w", a, err)
	}
	SetupEntity(e, reg, a)
	e.Pos = pos
	return e, nil
}
