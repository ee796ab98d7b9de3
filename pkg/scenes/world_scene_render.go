package scenes

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/oogagoblin/pkg/types"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// 地面棋盘格颜色
var (
	tileColorA     = color.RGBA{R: 0x2A, G: 0x4D, B: 0x2F, A: 0xFF}
	tileColorB     = color.RGBA{R: 0x31, G: 0x57, B: 0x36, A: 0xFF}
	highlightColor = color.NRGBA{R: 0xFF, G: 0xE0, B: 0x66, A: 0xFF}
)

const (
	// highlightPeriod 选中高亮呼吸动画周期（秒）
	highlightPeriod = 1.2

	inventoryPanelX    = 10
	inventoryPanelY    = 10
	inventoryLineHeight = 16
)

// Draw 绘制地面、实体、选中高亮和背包
// 只读取世界状态和最近一帧，不修改任何模拟数据
func (s *WorldScene) Draw(screen *ebiten.Image) {
	s.drawTiles(screen)

	debug := s.showDebugText()
	for _, r := range s.RenderSnapshot() {
		bounds := s.spriteBounds(r)
		s.drawSprite(screen, r.Sprite, bounds)
		if r.Selected {
			s.drawHighlight(screen, bounds)
		}
		if debug {
			x, y := s.screenPoint(mgl64.Vec2{bounds.Min[0], bounds.Min[1]})
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f,%.0f", r.Pos[0], r.Pos[1]), int(x), int(y)+2)
		}
	}

	s.drawInventory(screen)
	if debug {
		s.drawDebugInfo(screen)
	}
}

// drawTiles 以棋盘格绘制本帧可见范围内的地面瓦片
func (s *WorldScene) drawTiles(screen *ebiten.Image) {
	tw := s.world.Config.TileWidth
	half := mgl64.Vec2{tw * 0.5, tw * 0.5}
	side := float32(tw * s.world.Camera.Zoom)

	s.frame.VisibleTiles.Each(func(x, y int) {
		center := mgl64.Vec2{utils.TileToWorld(x, tw), utils.TileToWorld(y, tw)}
		r := utils.MakeRange2(center.Sub(half), center.Add(half))
		sx, sy := s.screenPoint(mgl64.Vec2{r.Min[0], r.Max[1]})

		clr := tileColorA
		if (x+y)&1 != 0 {
			clr = tileColorB
		}
		vector.DrawFilledRect(screen, sx, sy, side, side, clr, false)
	})
}

// spriteBounds 精灵在世界中的矩形，锚点为底边中点
func (s *WorldScene) spriteBounds(r Renderable) utils.Range2 {
	size := s.world.Registry.Sprite(r.Sprite).Size
	return utils.MakeBottomCenter(size).Shift(r.Pos)
}

// drawSprite 按世界矩形绘制占位精灵
func (s *WorldScene) drawSprite(screen *ebiten.Image, id types.SpriteID, bounds utils.Range2) {
	img := s.spriteImage(id)
	if img == nil {
		return
	}
	x, y := s.screenPoint(mgl64.Vec2{bounds.Min[0], bounds.Max[1]})

	zoom := s.world.Camera.Zoom
	size := bounds.Size()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size[0]*zoom/float64(w), size[1]*zoom/float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// drawHighlight 在选中实体外围描边，边框随时间呼吸
func (s *WorldScene) drawHighlight(screen *ebiten.Image, bounds utils.Range2) {
	x, y := s.screenPoint(mgl64.Vec2{bounds.Min[0], bounds.Max[1]})
	size := bounds.Size().Mul(s.world.Camera.Zoom)

	pulse := utils.EaseInOutCubic(utils.PingPong(s.clock.Now(), highlightPeriod))
	pad := float32(2 + 2*pulse)
	clr := highlightColor
	clr.A = uint8(160 + 95*pulse)

	vector.StrokeRect(screen, x-pad, y-pad, float32(size[0])+pad*2, float32(size[1])+pad*2, 2, clr, false)
}

// drawInventory 在左上角列出背包内容
func (s *WorldScene) drawInventory(screen *ebiten.Image) {
	y := inventoryPanelY
	ebitenutil.DebugPrintAt(screen, "Inventory", inventoryPanelX, y)
	for _, entry := range s.world.Inventory.Entries() {
		y += inventoryLineHeight
		name := s.world.Registry.DisplayName(entry.Archetype)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s x%d", name, entry.Count), inventoryPanelX, y)
	}
}

// drawDebugInfo 显示光标世界坐标和光标下的实体
func (s *WorldScene) drawDebugInfo(screen *ebiten.Image) {
	cursor := s.frame.CursorWorld
	hovered := "-"
	for _, r := range s.RenderSnapshot() {
		if s.spriteBounds(r).Contains(cursor) {
			hovered = s.world.Registry.DisplayName(r.Archetype)
		}
	}

	msg := fmt.Sprintf("TPS: %.0f  entities: %d/%d\ncursor: %.1f, %.1f  hover: %s",
		ebiten.ActualTPS(), s.world.Pool.Len(), s.world.Pool.Cap(), cursor[0], cursor[1], hovered)
	ebitenutil.DebugPrintAt(screen, msg, inventoryPanelX, screen.Bounds().Dy()-40)
}

// spriteImage 返回精灵的占位图像，按需生成并缓存
func (s *WorldScene) spriteImage(id types.SpriteID) *ebiten.Image {
	if id == types.SpriteNil || id >= types.SpriteCount {
		return nil
	}
	if img := s.spriteImages[id]; img != nil {
		return img
	}

	cfg := s.world.Registry.Sprite(id)
	w, h := int(cfg.Size[0]), int(cfg.Size[1])
	if w <= 0 || h <= 0 {
		return nil
	}
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.Color)
	s.spriteImages[id] = img
	return img
}

// screenPoint 世界坐标转屏幕坐标
func (s *WorldScene) screenPoint(world mgl64.Vec2) (float32, float32) {
	p := s.world.Camera.WorldToScreen(world)
	return float32(p[0]), float32(p[1])
}
