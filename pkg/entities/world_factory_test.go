package entities

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/embedded"
	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/types"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// loadProjectRegistry 加载项目 data/ 目录下的原型配置
func loadProjectRegistry(t *testing.T) *config.ArchetypeRegistry {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	embedded.Init(os.DirFS(filepath.Join(filepath.Dir(filename), "..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })

	reg, err := config.LoadArchetypeRegistry(config.ArchetypeConfigPath)
	if err != nil {
		t.Fatalf("LoadArchetypeRegistry() error: %v", err)
	}
	return reg
}

// TestNewEntitySetup 测试按原型初始化实体
func TestNewEntitySetup(t *testing.T) {
	reg := loadProjectRegistry(t)
	pool := ecs.NewPoolWithCapacity(4)

	e, err := NewEntity(pool, reg, types.ArchetypeRock, mgl64.Vec2{8, 16})
	if err != nil {
		t.Fatalf("NewEntity() error: %v", err)
	}

	row := reg.Get(types.ArchetypeRock)
	if e.Archetype != types.ArchetypeRock || e.Sprite != row.Sprite || e.Health != row.Health {
		t.Errorf("entity not configured from registry: %+v", *e)
	}
	if !e.Flags.Has(types.FlagValid | types.FlagDestroyable | types.FlagRenderSprite) {
		t.Errorf("flags = %s, want valid|sprite|destroyable", e.Flags)
	}
	if e.Pos != (mgl64.Vec2{8, 16}) {
		t.Errorf("Pos = %v, want [8 16]", e.Pos)
	}
}

// TestNewEntityExhausted 测试实体池满时返回错误
func TestNewEntityExhausted(t *testing.T) {
	reg := loadProjectRegistry(t)
	pool := ecs.NewPoolWithCapacity(1)

	if _, err := NewEntity(pool, reg, types.ArchetypeRock, mgl64.Vec2{}); err != nil {
		t.Fatalf("NewEntity() error: %v", err)
	}
	_, err := NewEntity(pool, reg, types.ArchetypeRock, mgl64.Vec2{})
	if !errors.Is(err, ecs.ErrPoolExhausted) {
		t.Errorf("expected ErrPoolExhausted, got %v", err)
	}
}

// TestPopulateWorld 测试开局生成
func TestPopulateWorld(t *testing.T) {
	reg := loadProjectRegistry(t)
	cfg := config.DefaultWorldConfig()
	cfg.Spawn.RockCount = 7
	cfg.Spawn.TreeCount = 5
	w := game.NewWorld(reg, cfg)

	if err := PopulateWorld(w, rand.New(rand.NewPCG(1, 2))); err != nil {
		t.Fatalf("PopulateWorld() error: %v", err)
	}

	player := w.Player()
	if player == nil || player.Archetype != types.ArchetypePlayer {
		t.Fatal("player not registered")
	}
	if player.Pos != (mgl64.Vec2{}) {
		t.Errorf("player Pos = %v, want origin", player.Pos)
	}

	counts := map[types.Archetype]int{}
	for _, e := range w.Pool.All() {
		counts[e.Archetype]++
		if e.Archetype == types.ArchetypePlayer {
			continue
		}
		// 生成位置必须在瓦片中心
		if snapped := utils.SnapToTile(e.Pos, cfg.TileWidth); snapped != e.Pos {
			t.Errorf("%s at %v is not tile-snapped", e.Archetype, e.Pos)
		}
		limit := cfg.Spawn.Range + cfg.TileWidth
		if e.Pos[0] < -limit || e.Pos[0] > limit || e.Pos[1] < -limit || e.Pos[1] > limit {
			t.Errorf("%s at %v outside spawn range", e.Archetype, e.Pos)
		}
	}

	if counts[types.ArchetypeRock] != 7 || counts[types.ArchetypeTree] != 5 || counts[types.ArchetypePlayer] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

// TestPopulateWorldPoolTooSmall 测试生成数量超过池容量
func TestPopulateWorldPoolTooSmall(t *testing.T) {
	reg := loadProjectRegistry(t)
	cfg := config.DefaultWorldConfig()
	w := game.NewWorldWithPool(ecs.NewPoolWithCapacity(5), reg, cfg)

	err := PopulateWorld(w, rand.New(rand.NewPCG(1, 2)))
	if !errors.Is(err, ecs.ErrPoolExhausted) {
		t.Errorf("expected ErrPoolExhausted, got %v", err)
	}
}
