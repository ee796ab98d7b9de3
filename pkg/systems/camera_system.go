package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// CameraSystem 摄像机跟随系统
// 摄像机位置以指数衰减方式平滑跟随玩家，与帧率无关
type CameraSystem struct {
	log *logrus.Entry
}

// NewCameraSystem 创建摄像机跟随系统
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		log: logrus.WithField("system", "CameraSystem"),
	}
}

// Update 让摄像机向玩家位置逼近一帧
// 返回摄像机是否已精确停在玩家位置
func (cs *CameraSystem) Update(w *game.World, dt float64) bool {
	player := w.Player()
	if player == nil {
		return true
	}
	return utils.AnimateVec2ToTarget(&w.Camera.Pos, player.Pos, dt, w.Config.CameraRate)
}

// SnapToPlayer 立即将摄像机移动到玩家位置（开局时调用）
func (cs *CameraSystem) SnapToPlayer(w *game.World) {
	if player := w.Player(); player != nil {
		w.Camera.Pos = player.Pos
		cs.log.Debugf("摄像机对齐玩家 (%.1f, %.1f)", player.Pos[0], player.Pos[1])
	}
}
