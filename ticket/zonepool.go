package ticket

import "container/heap"

// zoneTimeHeap is a min-heap of float64 times, shared by ZoneSlotPool and
// GateBufferPool. Ties don't matter here because acquire/release happen
// at strictly monotonic times per vehicle.
type zoneTimeHeap []float64

func (h zoneTimeHeap) Len() int            { return len(h) }
func (h zoneTimeHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h zoneTimeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *zoneTimeHeap) Push(x interface{}) { *h = append(*h, x.(float64)) }
func (h *zoneTimeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ZoneSlotPool tracks, for every zone id, a fixed-length min-heap of the
// times at which each of the zone's capacity slots next becomes free.
// Every slot starts free at time zero.
type ZoneSlotPool struct {
	capacities map[string]int
	heaps      map[string]*zoneTimeHeap
}

// NewZoneSlotPool builds an empty pool sized from the zone table.
func NewZoneSlotPool(zones map[string]Zone) *ZoneSlotPool {
	p := &ZoneSlotPool{
		capacities: make(map[string]int, len(zones)),
		heaps:      make(map[string]*zoneTimeHeap, len(zones)),
	}
	for zid, z := range zones {
		cap := z.Capacity
		if cap < 1 {
			cap = 1
		}
		p.capacities[zid] = cap
		h := make(zoneTimeHeap, cap)
		heap.Init(&h)
		p.heaps[zid] = &h
	}
	return p
}

// EarliestFree returns the time at which the next slot in zone zid becomes
// free (the heap top, zero if the zone has never been occupied).
func (p *ZoneSlotPool) EarliestFree(zid string) float64 {
	h := p.heaps[zid]
	if h == nil || h.Len() == 0 {
		return 0
	}
	return (*h)[0]
}

// Acquire pops the earliest-free slot for zone zid. The caller is
// responsible for ensuring the acquisition time is >= the popped value;
// no element is pushed back by Acquire — Release is what returns a slot
// to the heap once the vehicle clears the zone's exit step.
func (p *ZoneSlotPool) Acquire(zid string) {
	h := p.heaps[zid]
	if h == nil || h.Len() == 0 {
		return
	}
	heap.Pop(h)
}

// Release pushes t, the departure time from the zone's exit step, back
// into zone zid's slot heap.
func (p *ZoneSlotPool) Release(zid string, t float64) {
	h := p.heaps[zid]
	if h == nil {
		return
	}
	heap.Push(h, t)
}
