package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/entities"
	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/types"
)

// testArchetypeYAML 测试用原型配置（岩石生命值为 4）
const testArchetypeYAML = `archetypes:
  player:
    sprite: player
    flags: [sprite]
  rock:
    sprite: rock0
    health: 4
    flags: [sprite, destroyable]
    drop: item_rock
  tree:
    sprite: tree0
    health: 2
    flags: [sprite, destroyable]
  item_rock:
    sprite: item_rock
    flags: [sprite, item]
  item_pine_wood:
    sprite: item_pine_wood
    flags: [sprite, item]
sprites:
  player: {size: [7, 9], color: 0xFFFFFFFF}
  rock0: {size: [7, 5], color: 0xFFFFFFFF}
  tree0: {size: [9, 16], color: 0xFFFFFFFF}
  item_rock: {size: [4, 3], color: 0xFFFFFFFF}
  item_pine_wood: {size: [5, 3], color: 0xFFFFFFFF}
`

// newTestWorld 创建带玩家（位于原点）的小容量测试世界
func newTestWorld(t *testing.T, capacity int) *game.World {
	t.Helper()

	reg, err := config.ParseArchetypeRegistry([]byte(testArchetypeYAML))
	if err != nil {
		t.Fatalf("ParseArchetypeRegistry() error: %v", err)
	}

	cfg := config.DefaultWorldConfig()
	cfg.SelectionRadius = 6

	w := game.NewWorldWithPool(ecs.NewPoolWithCapacity(capacity), reg, cfg)
	if err := entities.NewPlayerEntity(w); err != nil {
		t.Fatalf("NewPlayerEntity() error: %v", err)
	}
	return w
}

// spawn 在指定位置创建实体
func spawn(t *testing.T, w *game.World, a types.Archetype, x, y float64) *ecs.Entity {
	t.Helper()
	e, err := entities.NewEntity(w.Pool, w.Registry, a, mgl64.Vec2{x, y})
	if err != nil {
		t.Fatalf("NewEntity(%s) error: %v", a, err)
	}
	return e
}

// isLive 判断实体是否仍能在遍历中被看到
func isLive(w *game.World, target *ecs.Entity) bool {
	for _, e := range w.Pool.All() {
		if e == target {
			return true
		}
	}
	return false
}
