package types

import (
	"fmt"
	"strings"
)

// EntityFlags 实体能力标志位集合
// 各子系统只按能力筛选实体，不对原型做分支判断
type EntityFlags uint8

const (
	// FlagValid 槽位被占用
	FlagValid EntityFlags = 1 << iota
	// FlagRenderSprite 需要绘制精灵
	FlagRenderSprite
	// FlagDestroyable 可被开采的世界物体
	FlagDestroyable
	// FlagItem 可拾取的掉落物
	FlagItem
)

var flagNames = []struct {
	flag EntityFlags
	name string
}{
	{FlagValid, "valid"},
	{FlagRenderSprite, "sprite"},
	{FlagDestroyable, "destroyable"},
	{FlagItem, "item"},
}

// Has 判断是否包含全部给定标志
func (f EntityFlags) Has(mask EntityFlags) bool {
	return f&mask == mask
}

// String 以 "sprite|item" 形式输出
func (f EntityFlags) String() string {
	if f == 0 {
		return "none"
	}
	parts := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseEntityFlag 解析单个标志名称
func ParseEntityFlag(name string) (EntityFlags, error) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown entity flag %q", name)
}
