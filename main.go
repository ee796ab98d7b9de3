package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/app"
	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/embedded"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	logJSON = flag.Bool("log-json", false, "以 JSON 格式输出日志")
	seed    = flag.Int64("seed", 0, "世界生成随机种子（0 表示使用配置或当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	// .env 不存在时忽略
	dotEnvErr := config.LoadDotEnv()

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		LogJSON: *logJSON,
		Seed:    *seed,
	})
	if err != nil {
		logrus.Fatalf("游戏初始化失败: %v", err)
	}
	if dotEnvErr != nil && !errors.Is(dotEnvErr, os.ErrNotExist) {
		logrus.Warnf("Failed to load .env: %v", dotEnvErr)
	}

	gameApp.ConfigureWindow()

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.Fatal(err)
	}
}
