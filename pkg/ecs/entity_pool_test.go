package ecs

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/oogagoblin/pkg/types"
)

// countValid 通过遍历统计有效槽位数
func countValid(p *Pool) int {
	n := 0
	for range p.All() {
		n++
	}
	return n
}

func TestAllocateFirstFit(t *testing.T) {
	p := NewPoolWithCapacity(8)

	a, _ := p.Allocate()
	b, _ := p.Allocate()
	c, _ := p.Allocate()

	if p.Index(a) != 0 || p.Index(b) != 1 || p.Index(c) != 2 {
		t.Fatalf("Expected slots 0,1,2, got %d,%d,%d", p.Index(a), p.Index(b), p.Index(c))
	}

	// 释放中间槽位后，下一次分配应复用最小的空闲下标
	p.Release(b)
	d, err := p.Allocate()
	if err != nil {
		t.Fatalf("Allocate() error: %v", err)
	}
	if p.Index(d) != 1 {
		t.Errorf("Expected first-fit slot 1, got %d", p.Index(d))
	}
}

func TestAllocateExhausted(t *testing.T) {
	p := NewPool()

	for i := 0; i < MaxEntities; i++ {
		if _, err := p.Allocate(); err != nil {
			t.Fatalf("Allocate() #%d unexpected error: %v", i, err)
		}
		if p.Len() > p.Cap() {
			t.Fatalf("valid count %d exceeds capacity %d", p.Len(), p.Cap())
		}
	}

	e, err := p.Allocate()
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("Expected ErrPoolExhausted, got %v", err)
	}
	if e != nil {
		t.Error("Expected nil entity on exhaustion")
	}
	if countValid(p) != MaxEntities {
		t.Errorf("Expected %d valid slots, got %d", MaxEntities, countValid(p))
	}
}

func TestReleaseClearsSlot(t *testing.T) {
	p := NewPoolWithCapacity(4)

	e, _ := p.Allocate()
	e.Archetype = types.ArchetypeRock
	e.Sprite = types.SpriteRock0
	e.Health = 3
	e.Pos = mgl64.Vec2{12, -4}
	e.Flags |= types.FlagDestroyable | types.FlagRenderSprite

	p.Release(e)

	for _, other := range p.All() {
		if other == e {
			t.Fatal("Released entity still visible in iteration")
		}
	}
	if *e != (Entity{}) {
		t.Errorf("Expected zeroed slot after release, got %+v", *e)
	}

	// 复用同一槽位时应从干净状态开始
	reused, _ := p.Allocate()
	if reused != e {
		t.Fatal("Expected released slot to be reused")
	}
	if reused.Flags != types.FlagValid || reused.Health != 0 || reused.Archetype != types.ArchetypeNil {
		t.Errorf("Reallocated slot not clean: %+v", *reused)
	}
}

func TestAllocateReleaseSequence(t *testing.T) {
	p := NewPoolWithCapacity(16)
	var live []*Entity

	// 交替分配和释放，有效数量始终与遍历结果一致且不超过容量
	for step := 0; step < 200; step++ {
		if step%3 == 2 && len(live) > 0 {
			p.Release(live[0])
			live = live[1:]
		} else {
			e, err := p.Allocate()
			if errors.Is(err, ErrPoolExhausted) {
				if len(live) != p.Cap() {
					t.Fatalf("exhausted with only %d live entities", len(live))
				}
				continue
			}
			live = append(live, e)
		}

		if got := countValid(p); got != len(live) || got != p.Len() {
			t.Fatalf("step %d: iteration=%d tracked=%d Len=%d", step, got, len(live), p.Len())
		}
		if p.Len() > p.Cap() {
			t.Fatalf("step %d: Len %d > Cap %d", step, p.Len(), p.Cap())
		}
	}
}

func TestWithFlags(t *testing.T) {
	p := NewPoolWithCapacity(8)

	rock, _ := p.Allocate()
	rock.Flags |= types.FlagDestroyable
	item, _ := p.Allocate()
	item.Flags |= types.FlagItem
	_, _ = p.Allocate()

	var got []int
	for i := range p.WithFlags(types.FlagDestroyable) {
		got = append(got, i)
	}
	if len(got) != 1 || got[0] != p.Index(rock) {
		t.Errorf("Expected only rock slot, got %v", got)
	}
}

func TestReleaseDuringIteration(t *testing.T) {
	p := NewPoolWithCapacity(8)
	for i := 0; i < 5; i++ {
		e, _ := p.Allocate()
		e.Flags |= types.FlagItem
	}

	for _, e := range p.WithFlags(types.FlagItem) {
		p.Release(e)
	}

	if p.Len() != 0 || countValid(p) != 0 {
		t.Errorf("Expected empty pool, Len=%d iteration=%d", p.Len(), countValid(p))
	}
}
