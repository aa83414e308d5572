package ticket

import "sort"

// VehicleWaits holds the computed entry and total wait for one vehicle,
// precomputed once so renderer backends don't re-scan the full record
// list per vehicle.
type VehicleWaits struct {
	Vehicle   int
	EntryWait float64
	TotalWait float64
}

// PerVehicleWaits returns VehicleWaits for every vehicle present in the
// result, sorted by vehicle number.
func (r RunResult) PerVehicleWaits() []VehicleWaits {
	vehicles := make(map[int]bool)
	for _, rec := range r.Records {
		vehicles[rec.Vehicle] = true
	}
	ids := make([]int, 0, len(vehicles))
	for v := range vehicles {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	out := make([]VehicleWaits, 0, len(ids))
	for _, v := range ids {
		out = append(out, VehicleWaits{
			Vehicle:   v,
			EntryWait: r.EntryWait(v),
			TotalWait: r.TotalWait(v),
		})
	}
	return out
}

// StepsForVehicle returns vehicle v's records in seq order (guaranteed by
// Simulator.Run's append order, so this is a plain filter, not a sort).
func (r RunResult) StepsForVehicle(vehicle int) []TimelineRecord {
	out := make([]TimelineRecord, 0)
	for _, rec := range r.Records {
		if rec.Vehicle == vehicle {
			out = append(out, rec)
		}
	}
	return out
}
