// Package utils 提供通用工具函数
package utils

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 单帧的主指针状态
// 统一鼠标左键和触摸输入，移动端的点击等同于鼠标左键
type PointerState struct {
	// JustPressed 本帧刚刚按下
	JustPressed bool
	// Pressed 当前处于按下状态
	Pressed bool
	// Pos 指针屏幕坐标
	Pos mgl64.Vec2
	// IsTouch 本帧输入来自触摸
	IsTouch bool
}

// PointerSampler 指针采样器
// 触摸释放后没有位置信息，因此保存最后一次触摸位置作为光标位置
type PointerSampler struct {
	lastTouch    mgl64.Vec2
	hasLastTouch bool
}

// NewPointerSampler 创建指针采样器
func NewPointerSampler() *PointerSampler {
	return &PointerSampler{}
}

// Sample 采样当前帧的指针状态，优先检测触摸
func (p *PointerSampler) Sample() PointerState {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		p.rememberTouch(touchIDs[0])
		return PointerState{JustPressed: true, Pressed: true, Pos: p.lastTouch, IsTouch: true}
	}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		p.rememberTouch(touchIDs[0])
		return PointerState{Pressed: true, Pos: p.lastTouch, IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	state := PointerState{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pos:         mgl64.Vec2{float64(x), float64(y)},
	}

	// 触摸设备上没有鼠标光标，保持最后触摸位置
	if p.hasLastTouch && !state.Pressed && IsMobile() {
		state.Pos = p.lastTouch
	}
	return state
}

func (p *PointerSampler) rememberTouch(id ebiten.TouchID) {
	x, y := ebiten.TouchPosition(id)
	p.lastTouch = mgl64.Vec2{float64(x), float64(y)}
	p.hasLastTouch = true
}
