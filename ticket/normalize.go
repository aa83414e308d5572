package ticket

import "sort"

const defaultGateBuffer = 2

// Normalize validates and canonicalises a list of raw step definitions,
// producing the ordered route, the derived zone table, and the derived
// gate-buffer table. Steps with an empty display name or no durations are
// dropped; survivors are sorted by seq; each zone's span and capacity are
// derived from the steps that reference it, and each gated zone's buffer
// from the largest gate_buffer any step assigns it (default 2).
func Normalize(defs []StepDef) ([]Step, map[string]Zone, map[string]GateBuffer, error) {
	type survivor struct {
		def StepDef
		dur float64
	}

	survivors := make([]survivor, 0, len(defs))
	for _, d := range defs {
		if d.Display == "" || len(d.Durations) == 0 {
			continue
		}
		survivors = append(survivors, survivor{def: d, dur: d.Durations[0]})
	}
	if len(survivors) == 0 {
		return nil, nil, nil, &EmptyScheduleError{}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].def.Seq < survivors[j].def.Seq
	})

	zones := make(map[string]Zone)
	for _, s := range survivors {
		zid := s.def.ZoneID
		if zid == "" {
			continue
		}
		z, ok := zones[zid]
		if !ok {
			zones[zid] = Zone{ID: zid, Capacity: 1, FirstSeq: s.def.Seq, LastSeq: s.def.Seq}
			continue
		}
		if s.def.Seq < z.FirstSeq {
			z.FirstSeq = s.def.Seq
		}
		if s.def.Seq > z.LastSeq {
			z.LastSeq = s.def.Seq
		}
		zones[zid] = z
	}
	for _, s := range survivors {
		zid := s.def.ZoneID
		if zid == "" {
			continue
		}
		if s.def.ZoneCapacity > zones[zid].Capacity {
			z := zones[zid]
			z.Capacity = s.def.ZoneCapacity
			zones[zid] = z
		}
	}

	gates := make(map[string]GateBuffer)
	for _, s := range survivors {
		gz := s.def.GateZoneID
		if gz == "" {
			continue
		}
		buf := s.def.GateBuffer
		if buf <= 0 {
			buf = defaultGateBuffer
		}
		existing, ok := gates[gz]
		if !ok || buf > existing.Buffer {
			gates[gz] = GateBuffer{ZoneID: gz, Buffer: buf}
		}
	}

	for gz := range gates {
		if _, ok := zones[gz]; !ok {
			return nil, nil, nil, &DanglingGateError{GateZoneID: gz}
		}
	}

	steps := make([]Step, 0, len(survivors))
	for _, s := range survivors {
		role := roleNone
		if zid := s.def.ZoneID; zid != "" {
			z := zones[zid]
			switch {
			case z.FirstSeq == z.LastSeq:
				role = roleZoneEntryExit // a single-step zone is both entry and exit
			case s.def.Seq == z.FirstSeq:
				role = roleZoneEntry
			case s.def.Seq == z.LastSeq:
				role = roleZoneExit
			default:
				role = roleZoneMiddle
			}
		}
		steps = append(steps, Step{
			Seq:        s.def.Seq,
			Display:    s.def.Display,
			Group:      groupOrDisplay(s.def),
			Duration:   s.dur,
			ZoneID:     s.def.ZoneID,
			Role:       role,
			GateZoneID: s.def.GateZoneID,
			Color:      s.def.Color,
		})
	}

	if err := checkContiguousZones(steps, zones); err != nil {
		return nil, nil, nil, err
	}

	return steps, zones, gates, nil
}

func groupOrDisplay(d StepDef) string {
	if d.Group != "" {
		return d.Group
	}
	return d.Display
}

// checkContiguousZones enforces that steps sharing a zone id form a
// contiguous seq range: any step strictly inside a zone's [FirstSeq,
// LastSeq] range must itself belong to that zone. A step from a different
// zone (or no zone) interleaved inside another zone's span is rejected
// rather than silently treated as that zone's interior.
func checkContiguousZones(steps []Step, zones map[string]Zone) error {
	for _, s := range steps {
		for zid, z := range zones {
			if s.ZoneID == zid {
				continue
			}
			if s.Seq > z.FirstSeq && s.Seq < z.LastSeq {
				return &NonContiguousZoneError{
					ZoneID:      zid,
					ForeignSeq:  s.Seq,
					ForeignZone: s.ZoneID,
					FirstSeq:    z.FirstSeq,
					LastSeq:     z.LastSeq,
				}
			}
		}
	}
	return nil
}
