package config

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/oogagoblin/pkg/embedded"
	"github.com/gonewx/oogagoblin/pkg/types"
	"gopkg.in/yaml.v3"
)

// ArchetypeConfigPath 原型配置文件（嵌入资源路径）
const ArchetypeConfigPath = "data/archetypes.yaml"

// ArchetypeConfig 单个原型的静态配置
// 精灵映射、显示名称、掉落映射、初始属性集中在一行，新增原型时不会出现遗漏
type ArchetypeConfig struct {
	Archetype   types.Archetype
	Sprite      types.SpriteID
	DisplayName string
	Health      int               // 初始生命值，不可开采的原型为 0
	Flags       types.EntityFlags // 不含 FlagValid
	Drop        types.Archetype   // 开采完成后的掉落物，ArchetypeNil 表示无掉落
}

// HasDrop 是否配置了掉落物
func (c ArchetypeConfig) HasDrop() bool {
	return c.Drop != types.ArchetypeNil
}

// SpriteConfig 占位精灵的尺寸和颜色
type SpriteConfig struct {
	Size  mgl64.Vec2 // 世界像素
	Color color.RGBA
}

// archetypeYAML 配置文件中的原型行
type archetypeYAML struct {
	Sprite      types.SpriteID  `yaml:"sprite"`
	DisplayName string          `yaml:"displayName"`
	Health      int             `yaml:"health"`
	Flags       []string        `yaml:"flags"`
	Drop        types.Archetype `yaml:"drop"`
}

// spriteYAML 配置文件中的精灵行
type spriteYAML struct {
	Size  [2]float64 `yaml:"size"`
	Color uint32     `yaml:"color"` // 0xRRGGBBAA
}

// archetypeFileYAML 原型配置文件结构
type archetypeFileYAML struct {
	Archetypes map[string]archetypeYAML `yaml:"archetypes"`
	Sprites    map[string]spriteYAML    `yaml:"sprites"`
}

// ArchetypeRegistry 原型注册表
// 以原型枚举为下标的定长表，加载完成后只读
type ArchetypeRegistry struct {
	rows    [types.ArchetypeCount]ArchetypeConfig
	sprites [types.SpriteCount]SpriteConfig
}

// LoadArchetypeRegistry 从 YAML 文件加载原型注册表
// 参数：
//
//	filepath - 嵌入资源路径
//
// 返回：
//
//	*ArchetypeRegistry - 校验通过的注册表
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadArchetypeRegistry(filepath string) (*ArchetypeRegistry, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype file %s: %w", filepath, err)
	}

	reg, err := ParseArchetypeRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("invalid archetypes in %s: %w", filepath, err)
	}
	return reg, nil
}

// ParseArchetypeRegistry 解析并校验内存中的原型配置
func ParseArchetypeRegistry(data []byte) (*ArchetypeRegistry, error) {
	var file archetypeFileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse archetype YAML: %w", err)
	}

	reg := &ArchetypeRegistry{}
	seen := make(map[types.Archetype]bool, len(file.Archetypes))

	for name, row := range file.Archetypes {
		a, err := types.ParseArchetype(name)
		if err != nil {
			return nil, err
		}
		if a == types.ArchetypeNil {
			return nil, fmt.Errorf("archetype %q is reserved", name)
		}

		var flags types.EntityFlags
		for _, flagName := range row.Flags {
			f, err := types.ParseEntityFlag(flagName)
			if err != nil {
				return nil, fmt.Errorf("archetype %s: %w", name, err)
			}
			if f == types.FlagValid {
				return nil, fmt.Errorf("archetype %s: flag %q is managed by the entity pool", name, flagName)
			}
			flags |= f
		}

		reg.rows[a] = ArchetypeConfig{
			Archetype:   a,
			Sprite:      row.Sprite,
			DisplayName: row.DisplayName,
			Health:      row.Health,
			Flags:       flags,
			Drop:        row.Drop,
		}
		seen[a] = true
	}

	for name, row := range file.Sprites {
		id, err := types.ParseSpriteID(name)
		if err != nil {
			return nil, err
		}
		reg.sprites[id] = SpriteConfig{
			Size:  mgl64.Vec2{row.Size[0], row.Size[1]},
			Color: HexToRGBA(row.Color),
		}
	}

	if err := validateArchetypes(reg, seen); err != nil {
		return nil, err
	}
	return reg, nil
}

// validateArchetypes 验证注册表的完整性和一致性
func validateArchetypes(reg *ArchetypeRegistry, seen map[types.Archetype]bool) error {
	for _, a := range types.AllArchetypes() {
		if !seen[a] {
			return fmt.Errorf("archetype %s: missing configuration row", a)
		}

		row := reg.rows[a]
		destroyable := row.Flags.Has(types.FlagDestroyable)
		item := row.Flags.Has(types.FlagItem)

		if destroyable && item {
			return fmt.Errorf("archetype %s: destroyable and item flags are mutually exclusive", a)
		}
		if destroyable && row.Health <= 0 {
			return fmt.Errorf("archetype %s: destroyable archetype needs positive health, got %d", a, row.Health)
		}
		if !destroyable && row.Health != 0 {
			return fmt.Errorf("archetype %s: health %d set on non-destroyable archetype", a, row.Health)
		}
		if row.HasDrop() {
			if !destroyable {
				return fmt.Errorf("archetype %s: only destroyable archetypes can drop items", a)
			}
			if !reg.rows[row.Drop].Flags.Has(types.FlagItem) || !seen[row.Drop] {
				return fmt.Errorf("archetype %s: drop %s is not an item archetype", a, row.Drop)
			}
		}
		if row.Flags.Has(types.FlagRenderSprite) {
			if row.Sprite == types.SpriteNil {
				return fmt.Errorf("archetype %s: sprite flag set without a sprite", a)
			}
			if s := reg.sprites[row.Sprite]; s.Size[0] <= 0 || s.Size[1] <= 0 {
				return fmt.Errorf("archetype %s: sprite %s has no size", a, row.Sprite)
			}
		}
	}
	return nil
}

// Get 返回原型配置的副本
func (r *ArchetypeRegistry) Get(a types.Archetype) ArchetypeConfig {
	if a >= types.ArchetypeCount {
		return ArchetypeConfig{}
	}
	return r.rows[a]
}

// Sprite 返回精灵配置
func (r *ArchetypeRegistry) Sprite(id types.SpriteID) SpriteConfig {
	if id >= types.SpriteCount {
		return SpriteConfig{}
	}
	return r.sprites[id]
}

// DisplayName 返回原型显示名称
func (r *ArchetypeRegistry) DisplayName(a types.Archetype) string {
	return r.Get(a).DisplayName
}

// HexToRGBA 将 0xRRGGBBAA 转换为颜色
func HexToRGBA(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 24),
		G: uint8(hex >> 16),
		B: uint8(hex >> 8),
		A: uint8(hex),
	}
}
