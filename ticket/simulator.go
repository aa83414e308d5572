package ticket

import "github.com/google/uuid"

// Simulator runs one deterministic discrete-event simulation of `cars`
// vehicles through `steps`. It owns all of its mutable state — the
// per-step server-free clock, the zone-slot pools, and the gate-buffer
// pools — on its own value, so it is safe to construct and run one
// Simulator per invocation from independent goroutines without any
// locking.
type Simulator struct {
	steps []Step
	zones map[string]Zone

	serverFree []float64
	zonePool   *ZoneSlotPool
	gatePool   *GateBufferPool
}

// NewSimulator constructs a Simulator over an already-normalized route.
// steps must be sorted by Seq (as returned by Normalize).
func NewSimulator(steps []Step, zones map[string]Zone, gates map[string]GateBuffer) *Simulator {
	return &Simulator{
		steps:      steps,
		zones:      zones,
		serverFree: make([]float64, len(steps)),
		zonePool:   NewZoneSlotPool(zones),
		gatePool:   NewGateBufferPool(gates),
	}
}

// Run schedules cars vehicles, one at a time in numerical order, through
// the canonical route. It returns InvalidCountError if cars < 1; once
// given a normalized route it never fails otherwise.
func (s *Simulator) Run(cars int) (RunResult, error) {
	if cars < 1 {
		return RunResult{}, &InvalidCountError{Cars: cars}
	}

	records := make([]TimelineRecord, 0, cars*len(s.steps))
	maxTime := 0.0

	for vehicle := 1; vehicle <= cars; vehicle++ {
		prevDepart := 0.0
		passedGates := make(map[string]bool)

		for j, step := range s.steps {
			start := maxFloat(s.serverFree[j], prevDepart)

			if step.IsGate() {
				gz := step.GateZoneID
				passedGates[gz] = true
				buf := s.gatePool.Buffer(gz)
				s.gatePool.DrainBeforeOrAt(gz, start)
				for s.gatePool.Len(gz) >= buf {
					if peek, ok := s.gatePool.Peek(gz); ok {
						start = maxFloat(start, peek)
					}
					s.gatePool.DrainBeforeOrAt(gz, start)
				}
			}

			svcFinish := start + step.Duration

			var depart float64
			if j < len(s.steps)-1 {
				next := s.steps[j+1]
				nextReady := s.serverFree[j+1]
				if next.IsZoneEntry() {
					nextReady = maxFloat(nextReady, s.zonePool.EarliestFree(next.ZoneID))
				}
				depart = maxFloat(svcFinish, nextReady)
			} else {
				depart = svcFinish
			}

			blockWait := depart - svcFinish
			if blockWait < 0 {
				blockWait = 0
			}

			records = append(records, TimelineRecord{
				Vehicle:   vehicle,
				Seq:       step.Seq,
				Display:   step.Display,
				Group:     step.Group,
				Duration:  step.Duration,
				Start:     start,
				SvcFinish: svcFinish,
				Depart:    depart,
				BlockWait: blockWait,
				Color:     step.Color,
			})

			if step.IsZoneEntry() {
				if passedGates[step.ZoneID] {
					s.gatePool.Admit(step.ZoneID, start)
				}
				s.zonePool.Acquire(step.ZoneID)
			}
			if step.IsZoneExit() {
				s.zonePool.Release(step.ZoneID, depart)
			}

			s.serverFree[j] = depart
			prevDepart = depart
			if depart > maxTime {
				maxTime = depart
			}
		}
	}

	return RunResult{RunID: uuid.New(), Records: records, MaxTime: maxTime}, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Schedule is a convenience wrapper that normalizes defs, runs the
// simulation once, and returns the result.
func Schedule(defs []StepDef, cars int) (RunResult, error) {
	steps, zones, gates, err := Normalize(defs)
	if err != nil {
		return RunResult{}, err
	}
	return NewSimulator(steps, zones, gates).Run(cars)
}

// ScheduleAndExport runs Schedule and hands the result to sink. gridStep
// and waitPolicy are threaded through to the renderer only — they have no
// bearing on scheduling, purely on how the result is laid out.
func ScheduleAndExport(defs []StepDef, cars int, gridStep float64, waitPolicy WaitPolicy, project string, sink Renderer) (RunResult, error) {
	if gridStep <= 0 {
		gridStep = 1.0
	}
	result, err := Schedule(defs, cars)
	if err != nil {
		return RunResult{}, err
	}
	if err := sink.Render(result, RenderOptions{GridStep: gridStep, WaitPolicy: waitPolicy, Project: project}); err != nil {
		return result, &RendererError{Backend: sink.Name(), Cause: err}
	}
	return result, nil
}
