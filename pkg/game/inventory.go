package game

import "github.com/gonewx/oogagoblin/pkg/types"

// Inventory 背包：原型到数量的稠密映射
// 数量永不为负；当前只有收集没有消耗，数量单调不减
type Inventory struct {
	counts [types.ArchetypeCount]int
}

// InventoryEntry 供 UI 层展示的背包条目
type InventoryEntry struct {
	Archetype types.Archetype
	Count     int
}

// NewInventory 创建空背包
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add 增加指定原型的数量，n <= 0 时忽略
func (inv *Inventory) Add(a types.Archetype, n int) {
	if n <= 0 || a >= types.ArchetypeCount {
		return
	}
	inv.counts[a] += n
}

// Count 返回指定原型的数量
func (inv *Inventory) Count(a types.Archetype) int {
	if a >= types.ArchetypeCount {
		return 0
	}
	return inv.counts[a]
}

// Entries 按原型顺序返回所有数量非零的条目
func (inv *Inventory) Entries() []InventoryEntry {
	var out []InventoryEntry
	for a, n := range inv.counts {
		if n > 0 {
			out = append(out, InventoryEntry{Archetype: types.Archetype(a), Count: n})
		}
	}
	return out
}
