package game

import "github.com/go-gl/mathgl/mgl64"

// InputState 单帧输入快照，实现 Input 接口
// 平台适配层每帧把设备状态写入快照，模拟核心只读取快照
type InputState struct {
	down        [KeyCount]bool
	justPressed [KeyCount]bool
	cursor      mgl64.Vec2
}

// NewInputState 创建空输入快照
func NewInputState() *InputState {
	return &InputState{}
}

// BeginFrame 清除上一帧的"刚按下"事件
func (s *InputState) BeginFrame() {
	s.justPressed = [KeyCount]bool{}
}

// SetKeyDown 设置按键是否处于按下状态
func (s *InputState) SetKeyDown(k Key, down bool) {
	if k < 0 || k >= KeyCount {
		return
	}
	s.down[k] = down
}

// Press 记录一次按下事件（同时置为按下状态）
func (s *InputState) Press(k Key) {
	if k < 0 || k >= KeyCount {
		return
	}
	s.down[k] = true
	s.justPressed[k] = true
}

// SetCursor 设置光标屏幕坐标
func (s *InputState) SetCursor(p mgl64.Vec2) {
	s.cursor = p
}

// IsKeyDown 实现 Input
func (s *InputState) IsKeyDown(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.down[k]
}

// IsKeyJustPressed 实现 Input
func (s *InputState) IsKeyJustPressed(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.justPressed[k]
}

// ConsumeKeyJustPressed 实现 Input，消费后同一帧内不再报告该按下事件
func (s *InputState) ConsumeKeyJustPressed(k Key) {
	if k < 0 || k >= KeyCount {
		return
	}
	s.justPressed[k] = false
}

// CursorPosition 实现 Input
func (s *InputState) CursorPosition() mgl64.Vec2 {
	return s.cursor
}
