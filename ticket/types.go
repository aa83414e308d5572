package ticket

import "github.com/google/uuid"

// StepDef is one raw, as-authored workstation step definition. Durations
// accepts a list for compatibility with configs that carry multiple
// candidate durations; only Durations[0] is ever consulted.
type StepDef struct {
	Seq          int       `yaml:"seq"`
	Display      string    `yaml:"display"`
	Group        string    `yaml:"group"`
	Durations    []float64 `yaml:"durations"`
	ZoneID       string    `yaml:"zone_id"`
	ZoneCapacity int       `yaml:"zone_capacity"`
	GateZoneID   string    `yaml:"gate_zone_id"`
	GateBuffer   int       `yaml:"gate_buffer"`
	Color        string    `yaml:"color"`
}

// zoneRole tags a normalized Step's position within its zone, derived once
// at normalisation time instead of being re-probed from nullable fields on
// every simulator iteration.
type zoneRole int

const (
	roleNone zoneRole = iota
	roleZoneEntry
	roleZoneMiddle
	roleZoneExit
	roleZoneEntryExit // single-step zone: entry and exit at once
)

// Step is a normalized, immutable step in the canonical per-vehicle route.
type Step struct {
	Seq        int
	Display    string
	Group      string
	Duration   float64
	ZoneID     string
	Role       zoneRole
	GateZoneID string
	Color      string
}

// IsZoneEntry reports whether a vehicle acquires a zone slot at this step.
func (s Step) IsZoneEntry() bool { return s.Role == roleZoneEntry || s.Role == roleZoneEntryExit }

// IsZoneExit reports whether a vehicle releases a zone slot at this step.
func (s Step) IsZoneExit() bool { return s.Role == roleZoneExit || s.Role == roleZoneEntryExit }

// IsGate reports whether this step throttles admission to a downstream zone.
func (s Step) IsGate() bool { return s.GateZoneID != "" }

// Zone is a contiguous range of steps sharing an occupancy cap.
type Zone struct {
	ID       string
	Capacity int
	FirstSeq int
	LastSeq  int
}

// GateBuffer is the maximum number of vehicles permitted between a gate
// step (inclusive) and its target zone's entry step (exclusive).
type GateBuffer struct {
	ZoneID string
	Buffer int
}

// TimelineRecord is one (vehicle, step) entry in the produced schedule.
type TimelineRecord struct {
	Vehicle   int     `msgpack:"vehicle"`
	Seq       int     `msgpack:"seq"`
	Display   string  `msgpack:"display"`
	Group     string  `msgpack:"group"`
	Duration  float64 `msgpack:"duration"`
	Start     float64 `msgpack:"start"`
	SvcFinish float64 `msgpack:"svc_finish"`
	Depart    float64 `msgpack:"depart"`
	BlockWait float64 `msgpack:"block_wait"`
	Color     string  `msgpack:"color,omitempty"`
}

// WaitPolicy controls whether a renderer draws a vehicle's entry-wait bar
// before or after its timeline. It is purely a layout choice and has no
// effect on scheduling.
type WaitPolicy string

const (
	WaitBefore WaitPolicy = "before"
	WaitAfter  WaitPolicy = "after"
)

// NormalizeWaitPolicy coerces any unrecognized value to WaitBefore.
func NormalizeWaitPolicy(p string) WaitPolicy {
	if WaitPolicy(p) == WaitAfter {
		return WaitAfter
	}
	return WaitBefore
}

// RunResult is the full output of one scheduler invocation: the ordered
// timeline, the global completion time, and a run identifier used to
// correlate this run's log lines with its rendered output.
type RunResult struct {
	RunID   uuid.UUID        `msgpack:"run_id"`
	Records []TimelineRecord `msgpack:"records"`
	MaxTime float64          `msgpack:"max_time"`
}

// EntryWait returns vehicle v's entry wait: the gap between its first
// step's start and the previous vehicle's first step's depart.
func (r RunResult) EntryWait(vehicle int) float64 {
	byVehicle := r.firstStepsByVehicle()
	steps, ok := byVehicle[vehicle]
	if !ok || len(steps) == 0 {
		return 0
	}
	prevDepart := 0.0
	if prior, ok := byVehicle[vehicle-1]; ok && len(prior) > 0 {
		prevDepart = prior[0].Depart
	}
	wait := steps[0].Start - prevDepart
	if wait < 0 {
		return 0
	}
	return wait
}

// TotalWait returns vehicle v's total wait: entry wait plus the sum of its
// per-step block waits.
func (r RunResult) TotalWait(vehicle int) float64 {
	total := r.EntryWait(vehicle)
	for _, rec := range r.Records {
		if rec.Vehicle == vehicle {
			total += rec.BlockWait
		}
	}
	return total
}

// firstStepsByVehicle groups records by vehicle, keeping only the first
// (lowest-seq) record per vehicle. Records are assumed sorted by
// (vehicle, seq) as guaranteed by Simulator.Run.
func (r RunResult) firstStepsByVehicle() map[int][]TimelineRecord {
	out := make(map[int][]TimelineRecord)
	for _, rec := range r.Records {
		if existing, ok := out[rec.Vehicle]; !ok || len(existing) == 0 {
			out[rec.Vehicle] = []TimelineRecord{rec}
		}
	}
	return out
}
