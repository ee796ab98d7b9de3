package game

import "github.com/go-gl/mathgl/mgl64"

// Camera 世界摄像机
//
// 世界坐标 Y 轴向上，屏幕坐标原点在左上角、Y 轴向下。
// 变换链：世界 -> 平移(-Pos) -> 缩放(Zoom) -> 正交投影 -> NDC -> 屏幕像素
type Camera struct {
	Pos          mgl64.Vec2
	Zoom         float64
	ScreenWidth  float64
	ScreenHeight float64
}

// NewCamera 创建摄像机
func NewCamera(zoom float64, screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         zoom,
		ScreenWidth:  float64(screenWidth),
		ScreenHeight: float64(screenHeight),
	}
}

// SetScreenSize 更新逻辑屏幕尺寸（窗口缩放时调用）
func (c *Camera) SetScreenSize(width, height int) {
	c.ScreenWidth = float64(width)
	c.ScreenHeight = float64(height)
}

// Projection 以屏幕中心为原点的正交投影
func (c *Camera) Projection() mgl64.Mat4 {
	hw := c.ScreenWidth * 0.5
	hh := c.ScreenHeight * 0.5
	return mgl64.Ortho2D(-hw, hw, -hh, hh)
}

// View 世界到摄像机空间的变换
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.Scale3D(c.Zoom, c.Zoom, 1).Mul4(mgl64.Translate3D(-c.Pos[0], -c.Pos[1], 0))
}

// ViewProjection 世界到 NDC 的完整变换
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// ScreenToWorld 将屏幕像素坐标转换为世界坐标
func (c *Camera) ScreenToWorld(screen mgl64.Vec2) mgl64.Vec2 {
	ndc := mgl64.Vec4{
		screen[0]/c.ScreenWidth*2 - 1,
		1 - screen[1]/c.ScreenHeight*2,
		0,
		1,
	}
	world := c.ViewProjection().Inv().Mul4x1(ndc)
	return mgl64.Vec2{world[0], world[1]}
}

// WorldToScreen 将世界坐标转换为屏幕像素坐标
func (c *Camera) WorldToScreen(world mgl64.Vec2) mgl64.Vec2 {
	ndc := c.ViewProjection().Mul4x1(mgl64.Vec4{world[0], world[1], 0, 1})
	return mgl64.Vec2{
		(ndc[0] + 1) * 0.5 * c.ScreenWidth,
		(1 - ndc[1]) * 0.5 * c.ScreenHeight,
	}
}
