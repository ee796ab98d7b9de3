package ecs

import (
	"errors"
	"iter"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/types"
)

// MaxEntities 实体池的固定容量
const MaxEntities = 1024

// ErrPoolExhausted 表示实体池已满，没有空闲槽位
// 池容量固定，不做扩容也不做淘汰，调用方应将其视为致命错误
var ErrPoolExhausted = errors.New("entity pool exhausted")

// Entity 实体池中的一个槽位
// 未设置 FlagValid 时槽位视为不存在，其余字段无意义
type Entity struct {
	Flags     types.EntityFlags
	Archetype types.Archetype
	Pos       mgl64.Vec2
	Sprite    types.SpriteID
	Health    int // 仅对可开采原型有意义
}

// IsValid 槽位是否被占用
func (e *Entity) IsValid() bool {
	return e.Flags.Has(types.FlagValid)
}

// Pool 定长实体池
//
// 槽位下标在实体生命周期内保持不变（不压缩、不搬移），
// 分配总是选择下标最小的空闲槽位（first-fit）。
// 没有代际计数：引用只在单帧内使用，不得跨帧缓存。
type Pool struct {
	entities []Entity
	count    int
}

// NewPool 创建容量为 MaxEntities 的实体池
func NewPool() *Pool {
	return NewPoolWithCapacity(MaxEntities)
}

// NewPoolWithCapacity 创建指定容量的实体池
func NewPoolWithCapacity(capacity int) *Pool {
	if capacity <= 0 {
		capacity = MaxEntities
	}
	return &Pool{
		entities: make([]Entity, capacity),
	}
}

// Allocate 从下标 0 开始查找第一个空闲槽位，清零后标记为有效并返回
// 所有槽位均被占用时返回 ErrPoolExhausted
func (p *Pool) Allocate() (*Entity, error) {
	for i := range p.entities {
		e := &p.entities[i]
		if e.IsValid() {
			continue
		}
		*e = Entity{Flags: types.FlagValid}
		p.count++
		return e, nil
	}
	return nil, ErrPoolExhausted
}

// Release 清零整个槽位，使其回到空闲集合
// 调用后不得再使用该引用
func (p *Pool) Release(e *Entity) {
	if e == nil || !e.IsValid() {
		return
	}
	*e = Entity{}
	p.count--
}

// All 按槽位顺序遍历所有有效实体
// 遍历过程中释放当前实体是安全的
func (p *Pool) All() iter.Seq2[int, *Entity] {
	return func(yield func(int, *Entity) bool) {
		for i := range p.entities {
			e := &p.entities[i]
			if !e.IsValid() {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// WithFlags 遍历拥有全部给定能力标志的有效实体
func (p *Pool) WithFlags(mask types.EntityFlags) iter.Seq2[int, *Entity] {
	return func(yield func(int, *Entity) bool) {
		for i, e := range p.All() {
			if !e.Flags.Has(mask) {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// Index 返回实体所在槽位下标，不属于本池时返回 -1
func (p *Pool) Index(e *Entity) int {
	for i := range p.entities {
		if &p.entities[i] == e {
			return i
		}
	}
	return -1
}

// At 返回指定下标的槽位（可能无效）
func (p *Pool) At(index int) *Entity {
	return &p.entities[index]
}

// Len 当前有效实体数量
func (p *Pool) Len() int {
	return p.count
}

// Cap 池容量
func (p *Pool) Cap() int {
	return len(p.entities)
}
