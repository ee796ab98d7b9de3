package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 瓦片坐标映射
//
// 世界是一张隐式的正方形瓦片网格，瓦片本身不作为实体存储，
// 只用于生成物的对齐放置和可见范围计算。
//
//	WorldToTile(p) = round(p / w)
//	TileToWorld(t) = t * w
//
// 对任意整数 t 有 WorldToTile(TileToWorld(t)) == t；
// 反向组合会把连续坐标吸附到最近的瓦片中心。

// WorldToTile 将世界坐标（单轴）转换为瓦片下标
func WorldToTile(p, tileWidth float64) int {
	return int(math.Round(p / tileWidth))
}

// TileToWorld 将瓦片下标转换为瓦片中心的世界坐标（单轴）
func TileToWorld(t int, tileWidth float64) float64 {
	return float64(t) * tileWidth
}

// SnapToTile 将世界坐标吸附到最近的瓦片中心
func SnapToTile(p mgl64.Vec2, tileWidth float64) mgl64.Vec2 {
	return mgl64.Vec2{
		TileToWorld(WorldToTile(p[0], tileWidth), tileWidth),
		TileToWorld(WorldToTile(p[1], tileWidth), tileWidth),
	}
}

// TileRange 闭区间瓦片范围 [MinX, MaxX] x [MinY, MaxY]
type TileRange struct {
	MinX, MinY int
	MaxX, MaxY int
}

// TileRangeAround 以 center 所在瓦片为中心、向四周扩展 radiusTiles 格的范围
// 渲染层用它决定需要绘制哪些地面瓦片
func TileRangeAround(center mgl64.Vec2, radiusTiles int, tileWidth float64) TileRange {
	cx := WorldToTile(center[0], tileWidth)
	cy := WorldToTile(center[1], tileWidth)
	return TileRange{
		MinX: cx - radiusTiles,
		MinY: cy - radiusTiles,
		MaxX: cx + radiusTiles,
		MaxY: cy + radiusTiles,
	}
}

// Empty 范围是否为空
func (r TileRange) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Count 范围内瓦片数量
func (r TileRange) Count() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// Each 按行遍历范围内的所有瓦片
func (r TileRange) Each(fn func(x, y int)) {
	if r.Empty() {
		return
	}
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			fn(x, y)
		}
	}
}
