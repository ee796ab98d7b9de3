package game

import "github.com/go-gl/mathgl/mgl64"

// Key 模拟核心关心的按键和鼠标按钮
type Key int

const (
	KeyMouseLeft Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyF11
	KeyF3

	KeyCount
)

// Input 当前帧的输入状态
//
// ConsumeKeyJustPressed 保证一次按下最多被处理一次：
// 消费之后，同一帧内 IsKeyJustPressed 对该键返回 false。
type Input interface {
	IsKeyDown(k Key) bool
	IsKeyJustPressed(k Key) bool
	ConsumeKeyJustPressed(k Key)
	// CursorPosition 返回屏幕坐标（像素，原点在左上角）
	CursorPosition() mgl64.Vec2
}

// InputAxis 根据 WASD 计算归一化的移动方向（Y 轴向上）
func InputAxis(in Input) mgl64.Vec2 {
	var axis mgl64.Vec2
	if in.IsKeyDown(KeyA) {
		axis[0] -= 1
	}
	if in.IsKeyDown(KeyD) {
		axis[0] += 1
	}
	if in.IsKeyDown(KeyS) {
		axis[1] -= 1
	}
	if in.IsKeyDown(KeyW) {
		axis[1] += 1
	}
	if axis.Len() == 0 {
		return axis
	}
	return axis.Normalize()
}
