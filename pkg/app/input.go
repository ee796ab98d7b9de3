package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// binding 模拟按键到 Ebitengine 输入的映射
// mouse 为 true 时映射到主指针（鼠标左键或触摸）
type binding struct {
	key   ebiten.Key
	mouse bool
}

var bindings = [game.KeyCount]binding{
	game.KeyMouseLeft: {mouse: true},
	game.KeyW:         {key: ebiten.KeyW},
	game.KeyA:         {key: ebiten.KeyA},
	game.KeyS:         {key: ebiten.KeyS},
	game.KeyD:         {key: ebiten.KeyD},
	game.KeyEscape:    {key: ebiten.KeyEscape},
	game.KeyF11:       {key: ebiten.KeyF11},
	game.KeyF3:        {key: ebiten.KeyF3},
}

// EbitenInput 基于 Ebitengine 的输入适配器
// 每个 tick 开始时调用 BeginTick 采样设备状态，之后的消费只作用于本 tick 的快照
type EbitenInput struct {
	*game.InputState
	pointer *utils.PointerSampler
}

// NewEbitenInput 创建输入适配器
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		InputState: game.NewInputState(),
		pointer:    utils.NewPointerSampler(),
	}
}

// BeginTick 采样本 tick 的按键和光标状态，并清除上一 tick 的消费记录
func (in *EbitenInput) BeginTick() {
	in.BeginFrame()
	pointer := in.pointer.Sample()

	for k, b := range bindings {
		key := game.Key(k)
		if b.mouse {
			in.SetKeyDown(key, pointer.Pressed)
			if pointer.JustPressed {
				in.Press(key)
			}
			continue
		}
		in.SetKeyDown(key, ebiten.IsKeyPressed(b.key))
		if inpututil.IsKeyJustPressed(b.key) {
			in.Press(key)
		}
	}

	in.SetCursor(pointer.Pos)
}
