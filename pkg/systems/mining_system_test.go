package systems

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/ecs"
	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/types"
)

// clickOn 模拟一帧：选择光标下实体并执行开采
func clickOn(t *testing.T, w *game.World, cursor mgl64.Vec2, press bool) *game.InputState {
	t.Helper()
	in := game.NewInputState()
	if press {
		in.Press(game.KeyMouseLeft)
	}
	frame := &game.WorldFrame{}
	NewSelectionSystem().Update(w, frame, cursor)
	if err := NewMiningSystem().Update(w, frame, in); err != nil {
		t.Fatalf("MiningSystem.Update() error: %v", err)
	}
	return in
}

// TestMiningEndToEnd 测试生命值为 4 的实体恰好需要 4 次点击
func TestMiningEndToEnd(t *testing.T) {
	w := newTestWorld(t, 16)
	rock := spawn(t, w, types.ArchetypeRock, 40, 24)
	rockIndex := w.Pool.Index(rock)
	lastPos := rock.Pos
	cursor := mgl64.Vec2{41, 24}

	if state := GetMiningState(rock, w.Registry); state != MiningIntact {
		t.Fatalf("initial state = %s, want Intact", state)
	}

	for press := 1; press <= 3; press++ {
		clickOn(t, w, cursor, true)
		if !isLive(w, rock) {
			t.Fatalf("rock destroyed after %d presses", press)
		}
		if rock.Health != 4-press {
			t.Errorf("after %d presses health = %d, want %d", press, rock.Health, 4-press)
		}
		if state := GetMiningState(rock, w.Registry); state != MiningDamaged {
			t.Errorf("after %d presses state = %s, want Damaged", press, state)
		}
	}

	// 没有按下事件的帧不造成伤害
	clickOn(t, w, cursor, false)
	if rock.Health != 1 {
		t.Fatalf("frame without press changed health to %d", rock.Health)
	}

	clickOn(t, w, cursor, true)

	if isLive(w, rock) {
		t.Fatal("rock still visible after 4th press")
	}
	if w.Pool.At(rockIndex).IsValid() {
		t.Error("rock slot not released")
	}
	if state := GetMiningState(w.Pool.At(rockIndex), w.Registry); state != MiningDestroyed {
		t.Errorf("final state = %s, want Destroyed", state)
	}

	var drops []*ecs.Entity
	for _, e := range w.Pool.WithFlags(types.FlagItem) {
		drops = append(drops, e)
	}
	if len(drops) != 1 {
		t.Fatalf("expected exactly 1 drop, got %d", len(drops))
	}
	if drops[0].Archetype != types.ArchetypeItemRock {
		t.Errorf("drop archetype = %s, want item_rock", drops[0].Archetype)
	}
	if drops[0].Pos != lastPos {
		t.Errorf("drop at %v, want %v", drops[0].Pos, lastPos)
	}
}

// TestMiningConsumesPressOnce 测试按下事件只被处理一次
func TestMiningConsumesPressOnce(t *testing.T) {
	w := newTestWorld(t, 8)
	rock := spawn(t, w, types.ArchetypeRock, 10, 10)

	in := game.NewInputState()
	in.Press(game.KeyMouseLeft)

	frame := &game.WorldFrame{}
	NewSelectionSystem().Update(w, frame, rock.Pos)

	mining := NewMiningSystem()
	for i := 0; i < 3; i++ {
		if err := mining.Update(w, frame, in); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	}

	if rock.Health != 3 {
		t.Errorf("health = %d, want 3 (press processed more than once)", rock.Health)
	}
	if in.IsKeyJustPressed(game.KeyMouseLeft) {
		t.Error("press should be consumed")
	}
}

// TestMiningWithoutSelection 测试没有选中实体时不消费按下事件
func TestMiningWithoutSelection(t *testing.T) {
	w := newTestWorld(t, 8)
	rock := spawn(t, w, types.ArchetypeRock, 50, 50)

	in := clickOn(t, w, mgl64.Vec2{0, 50}, true)

	if rock.Health != 4 {
		t.Errorf("rock outside selection radius damaged: health = %d", rock.Health)
	}
	if !in.IsKeyJustPressed(game.KeyMouseLeft) {
		t.Error("press must stay available when nothing is selected")
	}
}

// TestMiningNoDrop 测试没有掉落配置的原型被摧毁后不生成掉落物
func TestMiningNoDrop(t *testing.T) {
	w := newTestWorld(t, 8)
	tree := spawn(t, w, types.ArchetypeTree, 0, 30)

	clickOn(t, w, tree.Pos, true)
	clickOn(t, w, tree.Pos, true)

	if isLive(w, tree) {
		t.Fatal("tree should be destroyed after 2 presses")
	}
	for _, e := range w.Pool.WithFlags(types.FlagItem) {
		t.Errorf("unexpected drop %s", e.Archetype)
	}
	if w.Pool.Len() != 1 {
		t.Errorf("pool Len = %d, want only the player", w.Pool.Len())
	}
}

// TestMiningDropPoolExhausted 测试掉落物无法分配时返回致命错误
func TestMiningDropPoolExhausted(t *testing.T) {
	w := newTestWorld(t, 2) // 玩家 + 岩石
	rock := spawn(t, w, types.ArchetypeRock, 5, 5)
	rock.Health = 1

	in := game.NewInputState()
	in.Press(game.KeyMouseLeft)
	frame := &game.WorldFrame{}
	NewSelectionSystem().Update(w, frame, rock.Pos)

	err := NewMiningSystem().Update(w, frame, in)
	if !errors.Is(err, ecs.ErrPoolExhausted) {
		t.Errorf("expected ErrPoolExhausted, got %v", err)
	}
}
