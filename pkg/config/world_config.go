package config

import (
	"fmt"

	"github.com/gonewx/oogagoblin/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WorldConfigPath 世界配置文件（嵌入资源路径）
const WorldConfigPath = "data/world.yaml"

// Tile & Interaction Configuration (瓦片与交互配置)
const (
	// TileWidth 瓦片边长（世界像素）
	TileWidth = 8.0

	// SelectionRadius 鼠标选中半径，超出该距离的实体即使最近也不会被选中
	SelectionRadius = 16.0

	// PickupRadius 掉落物开始飞向玩家的半径
	PickupRadius = 20.0

	// AbsorbRadius 掉落物被收入背包的距离阈值（必须小于 PickupRadius）
	AbsorbRadius = 2.0

	// VisibleTileRadius 以玩家为中心绘制的瓦片半径（格）
	VisibleTileRadius = 40
)

// Animation Configuration (动画配置)
const (
	// CameraRate 摄像机跟随玩家的衰减速率
	CameraRate = 15.0

	// PickupRate 掉落物飞向玩家的衰减速率
	PickupRate = 15.0

	// PlayerSpeed 玩家移动速度（世界像素/秒）
	PlayerSpeed = 50.0

	// CameraZoom 世界到屏幕的缩放倍率
	CameraZoom = 5.3
)

// Spawn Configuration (生成配置)
const (
	// DefaultRockCount 开局生成的岩石数量
	DefaultRockCount = 10

	// DefaultTreeCount 开局生成的树木数量
	DefaultTreeCount = 10

	// DefaultSpawnRange 生成范围（以原点为中心的正方形半边长，世界像素）
	DefaultSpawnRange = 200.0
)

// Window Configuration (窗口配置)
const (
	WindowTitle      = "Ooga Goblin"
	WindowWidth      = 1280
	WindowHeight     = 720
	WindowClearColor = 0x12173DFF

	// FPSLimit 每秒最大 tick 数，仅用于限制 CPU 占用
	FPSLimit = 144
)

// SpawnConfig 开局生成参数
type SpawnConfig struct {
	Seed      int64   `yaml:"seed"`      // 随机种子，0 表示使用当前时间
	RockCount int     `yaml:"rockCount"` // 岩石数量
	TreeCount int     `yaml:"treeCount"` // 树木数量
	Range     float64 `yaml:"range"`     // 生成范围半边长
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ClearColor uint32 `yaml:"clearColor"` // 0xRRGGBBAA
	FPSLimit   int    `yaml:"fpsLimit"`
}

// WorldConfig 世界配置文件结构
type WorldConfig struct {
	TileWidth         float64      `yaml:"tileWidth"`
	SelectionRadius   float64      `yaml:"selectionRadius"`
	PickupRadius      float64      `yaml:"pickupRadius"`
	AbsorbRadius      float64      `yaml:"absorbRadius"`
	CameraRate        float64      `yaml:"cameraRate"`
	PickupRate        float64      `yaml:"pickupRate"`
	PlayerSpeed       float64      `yaml:"playerSpeed"`
	CameraZoom        float64      `yaml:"cameraZoom"`
	VisibleTileRadius int          `yaml:"visibleTileRadius"`
	Spawn             SpawnConfig  `yaml:"spawn"`
	Window            WindowConfig `yaml:"window"`
}

// DefaultWorldConfig 返回由常量组成的默认配置
func DefaultWorldConfig() *WorldConfig {
	return &WorldConfig{
		TileWidth:         TileWidth,
		SelectionRadius:   SelectionRadius,
		PickupRadius:      PickupRadius,
		AbsorbRadius:      AbsorbRadius,
		CameraRate:        CameraRate,
		PickupRate:        PickupRate,
		PlayerSpeed:       PlayerSpeed,
		CameraZoom:        CameraZoom,
		VisibleTileRadius: VisibleTileRadius,
		Spawn: SpawnConfig{
			RockCount: DefaultRockCount,
			TreeCount: DefaultTreeCount,
			Range:     DefaultSpawnRange,
		},
		Window: WindowConfig{
			Title:      WindowTitle,
			Width:      WindowWidth,
			Height:     WindowHeight,
			ClearColor: WindowClearColor,
			FPSLimit:   FPSLimit,
		},
	}
}

// LoadWorldConfig 从 YAML 文件加载世界配置
// 文件中缺省的字段保留默认值
func LoadWorldConfig(filepath string) (*WorldConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config file %s: %w", filepath, err)
	}

	cfg, err := ParseWorldConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid world config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseWorldConfig 解析并校验内存中的世界配置
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	cfg := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置的合法性
// 这些约束在启动时检查，tick 循环内不再做校验
func (c *WorldConfig) Validate() error {
	if c.TileWidth <= 0 {
		return fmt.Errorf("tileWidth must be positive, got %v", c.TileWidth)
	}
	if c.SelectionRadius <= 0 {
		return fmt.Errorf("selectionRadius must be positive, got %v", c.SelectionRadius)
	}
	if c.AbsorbRadius <= 0 || c.AbsorbRadius >= c.PickupRadius {
		return fmt.Errorf("absorbRadius must be in (0, pickupRadius=%v), got %v", c.PickupRadius, c.AbsorbRadius)
	}
	if c.CameraRate <= 0 || c.PickupRate <= 0 {
		return fmt.Errorf("damping rates must be positive, got camera=%v pickup=%v", c.CameraRate, c.PickupRate)
	}
	if c.PlayerSpeed < 0 {
		return fmt.Errorf("playerSpeed cannot be negative, got %v", c.PlayerSpeed)
	}
	if c.CameraZoom <= 0 {
		return fmt.Errorf("cameraZoom must be positive, got %v", c.CameraZoom)
	}
	if c.VisibleTileRadius < 0 {
		return fmt.Errorf("visibleTileRadius cannot be negative, got %d", c.VisibleTileRadius)
	}
	if c.Spawn.RockCount < 0 || c.Spawn.TreeCount < 0 {
		return fmt.Errorf("spawn counts cannot be negative, got rocks=%d trees=%d", c.Spawn.RockCount, c.Spawn.TreeCount)
	}
	if c.Spawn.Range < 0 {
		return fmt.Errorf("spawn range cannot be negative, got %v", c.Spawn.Range)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit <= 0 {
		return fmt.Errorf("fpsLimit must be positive, got %d", c.Window.FPSLimit)
	}
	return nil
}
