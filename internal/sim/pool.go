package sim

// agentPool is a dense array of Agent slots plus an intrusive free list,
// ported from original_source/src/patika_pool.c's agent_pool_* family.
//
// allocate is O(1): pop the free head, bump that slot's generation, mark it
// active. free is O(1): clear active, push the slot back onto the free list.
// get validates both index range and generation equality so stale ids fail
// safely instead of aliasing a reused slot.
type agentPool struct {
	slots       []Agent
	freeHead    uint32
	activeCount uint32
}

func newAgentPool(capacity uint32) *agentPool {
	p := &agentPool{
		slots: make([]Agent, capacity),
	}
	for i := uint32(0); i+1 < capacity; i++ {
		p.slots[i].nextFreeIndex = i + 1
	}
	if capacity > 0 {
		p.slots[capacity-1].nextFreeIndex = invalidAgentIndex
	}
	p.freeHead = 0
	if capacity == 0 {
		p.freeHead = invalidAgentIndex
	}
	return p
}

func (p *agentPool) capacity() uint32 { return uint32(len(p.slots)) }

// allocate returns InvalidAgentID if the pool is exhausted.
func (p *agentPool) allocate() AgentID {
	if p.activeCount >= p.capacity() || p.freeHead == invalidAgentIndex {
		return InvalidAgentID
	}
	index := p.freeHead
	slot := &p.slots[index]
	p.freeHead = slot.nextFreeIndex
	slot.generation++
	slot.Active = true
	p.activeCount++
	id := makeAgentID(index, slot.generation)
	slot.ID = id
	return id
}

func (p *agentPool) free(id AgentID) {
	slot := p.getMutable(id)
	if slot == nil {
		return
	}
	index := id.Index()
	slot.Active = false
	slot.nextFreeIndex = p.freeHead
	p.freeHead = index
	p.activeCount--
}

// get validates id and returns the slot only if both index and generation
// match and the slot is currently active (invariant 1 of spec.md §3).
func (p *agentPool) get(id AgentID) *Agent {
	return p.getMutable(id)
}

func (p *agentPool) getMutable(id AgentID) *Agent {
	index := id.Index()
	if index >= p.capacity() {
		return nil
	}
	slot := &p.slots[index]
	if slot.generation != id.Generation() {
		return nil
	}
	if !slot.Active {
		return nil
	}
	return slot
}

// getByIndex returns the slot at index if it is currently active, or nil if
// the index is out of range or the slot has since been freed/reused. Used
// where only the bare index (not a full generational id) is available, e.g.
// a reservation word's occupant index.
func (p *agentPool) getByIndex(index uint32) *Agent {
	if index >= p.capacity() {
		return nil
	}
	slot := &p.slots[index]
	if !slot.Active {
		return nil
	}
	return slot
}

// forEachActive iterates slots in index order (spec.md §4.12's ordering
// requirement: "deterministic (slot order)").
func (p *agentPool) forEachActive(fn func(*Agent)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}

// barrackPool is a bump allocator over a dense array; there is no free list
// because barracks are growable-only (spec.md §3 Lifecycles), ported from
// patika_pool.c's barrack_pool_*.
type barrackPool struct {
	slots  []Barrack
	nextID uint16
}

func newBarrackPool(capacity uint16) *barrackPool {
	return &barrackPool{slots: make([]Barrack, capacity)}
}

func (p *barrackPool) capacity() uint16 { return uint16(len(p.slots)) }

func (p *barrackPool) allocate() BarrackID {
	if p.nextID >= p.capacity() {
		return InvalidBarrackID
	}
	id := BarrackID(p.nextID)
	p.slots[id].Active = true
	p.slots[id].ID = id
	p.nextID++
	return id
}

func (p *barrackPool) get(id BarrackID) *Barrack {
	if uint16(id) >= p.capacity() {
		return nil
	}
	slot := &p.slots[id]
	if !slot.Active {
		return nil
	}
	return slot
}

func (p *barrackPool) forEachActive(fn func(*Barrack)) {
	for i := uint16(0); i < p.nextID; i++ {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}
