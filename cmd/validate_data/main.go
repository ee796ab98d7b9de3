// validate_data 校验 data/ 下的世界配置和原型配置
//
// 用法（在项目根目录）：
//
//	go run ./cmd/validate_data
//	go run ./cmd/validate_data -root /path/to/project
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/embedded"
	"github.com/gonewx/oogagoblin/pkg/types"
)

var root = flag.String("root", ".", "项目根目录（包含 data/）")

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*root))

	worldCfg, err := config.LoadWorldConfig(config.WorldConfigPath)
	if err != nil {
		logrus.Fatalf("❌ %v", err)
	}
	fmt.Printf("✅ %s: tile=%.0f selection=%.0f pickup=%.0f absorb=%.0f\n",
		config.WorldConfigPath, worldCfg.TileWidth, worldCfg.SelectionRadius,
		worldCfg.PickupRadius, worldCfg.AbsorbRadius)

	reg, err := config.LoadArchetypeRegistry(config.ArchetypeConfigPath)
	if err != nil {
		logrus.Fatalf("❌ %v", err)
	}
	fmt.Printf("✅ %s\n", config.ArchetypeConfigPath)

	for _, a := range types.AllArchetypes() {
		row := reg.Get(a)
		drop := "-"
		if row.HasDrop() {
			drop = row.Drop.String()
		}
		fmt.Printf("   %-16s sprite=%-16s health=%d flags=%-18s drop=%s\n",
			a, row.Sprite, row.Health, row.Flags, drop)
	}

	spawned := 1 + worldCfg.Spawn.RockCount + worldCfg.Spawn.TreeCount
	fmt.Printf("✅ 开局实体数量: %d\n", spawned)
}
