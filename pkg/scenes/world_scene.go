package scenes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/systems"
	"github.com/gonewx/oogagoblin/pkg/types"
)

// Renderable 渲染层需要的单个实体快照
type Renderable struct {
	Archetype types.Archetype
	Sprite    types.SpriteID
	Pos       mgl64.Vec2
	Selected  bool
}

// WorldScene 世界场景
//
// Update 是每个 tick 的唯一入口，按固定顺序调用各系统：
//
//	时间增量 -> 摄像机 -> 光标换算 -> 可见瓦片 -> 选择 -> 拾取 -> 开采 -> 移动
//
// 本 tick 的 WorldFrame 在 Update 开始时清零，只由 Draw 读取。
type WorldScene struct {
	world    *game.World
	clock    *game.Clock
	settings *game.SettingsManager // 可为 nil

	// 系统
	cameraSystem         *systems.CameraSystem
	tileVisibilitySystem *systems.TileVisibilitySystem
	selectionSystem      *systems.SelectionSystem
	pickupSystem         *systems.PickupSystem
	miningSystem         *systems.MiningSystem
	movementSystem       *systems.PlayerMovementSystem

	frame game.WorldFrame
	ticks uint64

	// 占位精灵图像，首次绘制时按注册表生成
	spriteImages [types.SpriteCount]*ebiten.Image

	log *logrus.Entry
}

// NewWorldScene 创建世界场景，摄像机立即对齐玩家
func NewWorldScene(w *game.World, clock *game.Clock, settings *game.SettingsManager) *WorldScene {
	s := &WorldScene{
		world:                w,
		clock:                clock,
		settings:             settings,
		cameraSystem:         systems.NewCameraSystem(),
		tileVisibilitySystem: systems.NewTileVisibilitySystem(),
		selectionSystem:      systems.NewSelectionSystem(),
		pickupSystem:         systems.NewPickupSystem(),
		miningSystem:         systems.NewMiningSystem(),
		movementSystem:       systems.NewPlayerMovementSystem(),
		log:                  logrus.WithField("system", "WorldScene"),
	}
	s.cameraSystem.SnapToPlayer(w)
	return s
}

// Update 推进一个 tick
// 返回的错误只可能来自实体池耗尽，调用方应终止程序
func (s *WorldScene) Update(in game.Input) error {
	dt := s.clock.Tick()
	frame := game.WorldFrame{}

	s.cameraSystem.Update(s.world, dt)
	cursor := s.world.Camera.ScreenToWorld(in.CursorPosition())

	s.tileVisibilitySystem.Update(s.world, &frame)
	s.selectionSystem.Update(s.world, &frame, cursor)

	if n := s.pickupSystem.Update(s.world, dt); n > 0 {
		s.log.Debugf("tick %d: 吸收 %d 个掉落物", s.ticks, n)
	}

	if err := s.miningSystem.Update(s.world, &frame, in); err != nil {
		return fmt.Errorf("tick %d: %w", s.ticks, err)
	}

	s.movementSystem.Update(s.world, in, dt)

	s.frame = frame
	s.ticks++
	return nil
}

// RenderSnapshot 按槽位顺序返回所有需要绘制精灵的实体
func (s *WorldScene) RenderSnapshot() []Renderable {
	out := make([]Renderable, 0, s.world.Pool.Len())
	for _, e := range s.world.Pool.WithFlags(types.FlagRenderSprite) {
		out = append(out, Renderable{
			Archetype: e.Archetype,
			Sprite:    e.Sprite,
			Pos:       e.Pos,
			Selected:  s.frame.IsSelected(e),
		})
	}
	return out
}

// Frame 返回最近一个 tick 的帧数据
func (s *WorldScene) Frame() game.WorldFrame {
	return s.frame
}

// World 返回场景持有的世界
func (s *WorldScene) World() *game.World {
	return s.world
}

// Ticks 已完成的 tick 数
func (s *WorldScene) Ticks() uint64 {
	return s.ticks
}

// showDebugText 设置中是否开启了调试文本
func (s *WorldScene) showDebugText() bool {
	return s.settings != nil && s.settings.GetSettings().ShowDebugText
}
