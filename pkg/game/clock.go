package game

import "time"

// TimeSource 单调递增的时间源（秒）
type TimeSource func() float64

// Clock 根据时间源计算每个 tick 的时间增量
type Clock struct {
	now     TimeSource
	last    float64
	started bool
}

// NewClock 创建基于单调时钟的 Clock
func NewClock() *Clock {
	start := time.Now()
	return NewClockWithSource(func() float64 {
		return time.Since(start).Seconds()
	})
}

// NewClockWithSource 使用自定义时间源（测试中使用手动推进的时间）
func NewClockWithSource(src TimeSource) *Clock {
	return &Clock{now: src}
}

// Tick 返回距离上一次 Tick 的秒数，首次调用返回 0
func (c *Clock) Tick() float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Now 返回时间源的当前读数
func (c *Clock) Now() float64 {
	return c.now()
}
