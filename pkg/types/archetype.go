// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Archetype 标识实体的种类（玩家、岩石、掉落物等），决定实体的默认配置
type Archetype uint8

const (
	// ArchetypeNil 无效原型（空槽位的零值）
	ArchetypeNil Archetype = iota
	// ArchetypePlayer 玩家
	ArchetypePlayer
	// ArchetypeRock 岩石（可开采）
	ArchetypeRock
	// ArchetypeTree 树木（可开采）
	ArchetypeTree
	// ArchetypeItemRock 掉落的石块
	ArchetypeItemRock
	// ArchetypeItemPineWood 掉落的松木
	ArchetypeItemPineWood

	// ArchetypeCount 原型总数，用于定长表
	ArchetypeCount
)

var archetypeNames = [ArchetypeCount]string{
	ArchetypeNil:          "nil",
	ArchetypePlayer:       "player",
	ArchetypeRock:         "rock",
	ArchetypeTree:         "tree",
	ArchetypeItemRock:     "item_rock",
	ArchetypeItemPineWood: "item_pine_wood",
}

// String 返回原型在配置文件中使用的名称
func (a Archetype) String() string {
	if a >= ArchetypeCount {
		return fmt.Sprintf("Archetype(%d)", uint8(a))
	}
	return archetypeNames[a]
}

// ParseArchetype 将配置文件中的名称解析为原型
func ParseArchetype(name string) (Archetype, error) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), nil
		}
	}
	return ArchetypeNil, fmt.Errorf("unknown archetype %q", name)
}

// AllArchetypes 返回所有需要配置的原型（不含 ArchetypeNil）
func AllArchetypes() []Archetype {
	out := make([]Archetype, 0, ArchetypeCount-1)
	for a := ArchetypePlayer; a < ArchetypeCount; a++ {
		out = append(out, a)
	}
	return out
}

// UnmarshalText 允许在 YAML 中直接以名称书写原型
func (a *Archetype) UnmarshalText(text []byte) error {
	parsed, err := ParseArchetype(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
