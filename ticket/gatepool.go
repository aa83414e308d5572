package ticket

import "container/heap"

// GateBufferPool tracks, for every gated zone id, a dynamic min-heap of the
// zone-entry times of vehicles that have passed the gate but have not yet
// entered the zone.
type GateBufferPool struct {
	buffers map[string]int
	heaps   map[string]*zoneTimeHeap
}

// NewGateBufferPool builds an empty pool from the gate-buffer table.
func NewGateBufferPool(gates map[string]GateBuffer) *GateBufferPool {
	p := &GateBufferPool{
		buffers: make(map[string]int, len(gates)),
		heaps:   make(map[string]*zoneTimeHeap, len(gates)),
	}
	for zid, g := range gates {
		p.buffers[zid] = g.Buffer
		h := make(zoneTimeHeap, 0)
		p.heaps[zid] = &h
	}
	return p
}

// Buffer returns the effective gate buffer for zone zid.
func (p *GateBufferPool) Buffer(zid string) int {
	return p.buffers[zid]
}

// Len returns the number of vehicles currently in flight through zid's gate
// region (passed the gate, not yet entered the zone).
func (p *GateBufferPool) Len(zid string) int {
	h := p.heaps[zid]
	if h == nil {
		return 0
	}
	return h.Len()
}

// DrainBeforeOrAt pops every zone-entry time <= t from zid's heap: those
// vehicles have, by time t, already entered the zone and no longer occupy
// the gate buffer.
func (p *GateBufferPool) DrainBeforeOrAt(zid string, t float64) {
	h := p.heaps[zid]
	if h == nil {
		return
	}
	for h.Len() > 0 && (*h)[0] <= t {
		heap.Pop(h)
	}
}

// Peek returns the earliest zone-entry time currently occupying zid's
// buffer, and whether the heap is non-empty.
func (p *GateBufferPool) Peek(zid string) (float64, bool) {
	h := p.heaps[zid]
	if h == nil || h.Len() == 0 {
		return 0, false
	}
	return (*h)[0], true
}

// Admit records that a vehicle will enter zone zid at zoneEntryTime, i.e.
// it has passed the gate but not yet the zone entry.
func (p *GateBufferPool) Admit(zid string, zoneEntryTime float64) {
	h := p.heaps[zid]
	if h == nil {
		return
	}
	heap.Push(h, zoneEntryTime)
}
