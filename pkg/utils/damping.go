package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DampEpsilon 吸附阈值：单轴误差不超过该值时直接设为目标值
// 避免指数衰减无限逼近而永远不收敛
const DampEpsilon = 0.001

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DampFactor 计算本帧的插值系数 1 - 2^(-rate*dt)
// 连续时间下的指数衰减在单帧上的离散化，与帧率无关：
// 把 dt 拆成若干子步连续应用，结果与一次性应用整个 dt 相同
func DampFactor(dt, rate float64) float64 {
	return 1 - math.Pow(2, -rate*dt)
}

// AnimateToTarget 将 value 以指数衰减方式向 target 逼近
//
// 公式：value += (target - value) * (1 - 2^(-rate*dt))
//
// 当 |value - target| <= DampEpsilon 时，value 被精确设置为 target 并返回 true
func AnimateToTarget(value *float64, target, dt, rate float64) bool {
	*value = Lerp(*value, target, DampFactor(dt, rate))
	if math.Abs(*value-target) <= DampEpsilon {
		*value = target
		return true
	}
	return false
}

// AnimateVec2ToTarget 二维版本，两个轴使用相同的 dt 和 rate 独立衰减
// 两个轴都收敛时返回 true
func AnimateVec2ToTarget(value *mgl64.Vec2, target mgl64.Vec2, dt, rate float64) bool {
	doneX := AnimateToTarget(&value[0], target[0], dt, rate)
	doneY := AnimateToTarget(&value[1], target[1], dt, rate)
	return doneX && doneY
}
