package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Range2 轴对齐矩形，Min 为左下角，Max 为右上角（世界坐标，Y 轴向上）
type Range2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// MakeRange2 由两个角点构造矩形
func MakeRange2(min, max mgl64.Vec2) Range2 {
	return Range2{Min: min, Max: max}
}

// MakeBottomCenter 构造以原点为底边中点、尺寸为 size 的矩形
// 精灵以底边中点作为锚点绘制
func MakeBottomCenter(size mgl64.Vec2) Range2 {
	r := Range2{Max: size}
	return r.Shift(mgl64.Vec2{size[0] * -0.5, 0})
}

// MakeBottomLeft 以 pos 为左下角构造矩形
func MakeBottomLeft(pos, size mgl64.Vec2) Range2 {
	return Range2{Min: pos, Max: pos.Add(size)}
}

// Shift 平移矩形
func (r Range2) Shift(offset mgl64.Vec2) Range2 {
	r.Min = r.Min.Add(offset)
	r.Max = r.Max.Add(offset)
	return r
}

// Size 返回矩形宽高（始终非负）
func (r Range2) Size() mgl64.Vec2 {
	d := r.Min.Sub(r.Max)
	return mgl64.Vec2{math.Abs(d[0]), math.Abs(d[1])}
}

// Contains 点是否在矩形内（含边界）
func (r Range2) Contains(v mgl64.Vec2) bool {
	return v[0] >= r.Min[0] && v[0] <= r.Max[0] &&
		v[1] >= r.Min[1] && v[1] <= r.Max[1]
}

// Center 矩形中心
func (r Range2) Center() mgl64.Vec2 {
	return mgl64.Vec2{
		(r.Max[0]-r.Min[0])*0.5 + r.Min[0],
		(r.Max[1]-r.Min[1])*0.5 + r.Min[1],
	}
}
