package utils

import "math"

// 缓动函数
//
// 接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutCubic 三次方缓出，开始快结束慢
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// PingPong 将时间映射为周期往返的进度 ∈ [0, 1]
// 用于选中高亮等循环动画，period <= 0 时返回 0
func PingPong(now, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(now, period) / period
	if phase < 0 {
		phase += 1
	}
	if phase < 0.5 {
		return phase * 2
	}
	return 2 - phase*2
}
