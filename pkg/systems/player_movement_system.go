package systems

import "github.com/gonewx/oogagoblin/pkg/game"

// PlayerMovementSystem 根据 WASD 输入移动玩家
type PlayerMovementSystem struct{}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

// Update 按归一化输入方向移动玩家，斜向移动速度与直线相同
func (s *PlayerMovementSystem) Update(w *game.World, in game.Input, dt float64) {
	player := w.Player()
	if player == nil {
		return
	}
	axis := game.InputAxis(in)
	player.Pos = player.Pos.Add(axis.Mul(w.Config.PlayerSpeed * dt))
}
