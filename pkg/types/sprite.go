package types

import "fmt"

// SpriteID 视觉标识，渲染层据此查找图像句柄
type SpriteID uint8

const (
	SpriteNil SpriteID = iota
	SpritePlayer
	SpriteRock0
	SpriteTree0
	SpriteItemRock
	SpriteItemPineWood

	SpriteCount
)

var spriteNames = [SpriteCount]string{
	SpriteNil:          "nil",
	SpritePlayer:       "player",
	SpriteRock0:        "rock0",
	SpriteTree0:        "tree0",
	SpriteItemRock:     "item_rock",
	SpriteItemPineWood: "item_pine_wood",
}

// String 返回精灵名称
func (s SpriteID) String() string {
	if s >= SpriteCount {
		return fmt.Sprintf("SpriteID(%d)", uint8(s))
	}
	return spriteNames[s]
}

// ParseSpriteID 将名称解析为精灵 ID
func ParseSpriteID(name string) (SpriteID, error) {
	for i, n := range spriteNames {
		if n == name {
			return SpriteID(i), nil
		}
	}
	return SpriteNil, fmt.Errorf("unknown sprite %q", name)
}

// UnmarshalText 允许在 YAML 中直接以名称书写精灵
func (s *SpriteID) UnmarshalText(text []byte) error {
	parsed, err := ParseSpriteID(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
