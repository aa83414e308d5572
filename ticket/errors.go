package ticket

import "fmt"

// EmptyScheduleError is returned when no step definition survives
// normalisation (empty display or empty durations list on every input row).
type EmptyScheduleError struct{}

func (e *EmptyScheduleError) Error() string {
	return "ticket: no valid step definitions after normalisation"
}

// InvalidCountError is returned when the requested vehicle count is
// less than one.
type InvalidCountError struct {
	Cars int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("ticket: invalid car count %d, must be >= 1", e.Cars)
}

// DanglingGateError is returned when a step names a gate-zone id that does
// not correspond to any zone id present on any step. A gate that
// throttles admission to a zone that never exists is a configuration
// mistake, caught before any simulation state is allocated.
type DanglingGateError struct {
	GateZoneID string
}

func (e *DanglingGateError) Error() string {
	return fmt.Sprintf("ticket: gate_zone_id %q does not match any declared zone", e.GateZoneID)
}

// NonContiguousZoneError is returned when a zone's member steps do not form
// a contiguous range in seq order — some step strictly between the zone's
// first and last seq belongs to a different zone or to no zone at all.
type NonContiguousZoneError struct {
	ZoneID       string
	ForeignSeq   int
	ForeignZone  string
	FirstSeq     int
	LastSeq      int
}

func (e *NonContiguousZoneError) Error() string {
	return fmt.Sprintf(
		"ticket: zone %q spans seq %d..%d but seq %d belongs to zone %q, breaking contiguity",
		e.ZoneID, e.FirstSeq, e.LastSeq, e.ForeignSeq, e.ForeignZone,
	)
}

// DurationParseError is returned by LoadTicketConfig when a step's leading
// duration value is not a positive real (zero, negative or NaN). A value
// that is not a number at all is rejected earlier by the YAML decoder and
// surfaces as a config parsing error instead.
type DurationParseError struct {
	Display string
	Raw     string
	Cause   error
}

func (e *DurationParseError) Error() string {
	return fmt.Sprintf("ticket: step %q has unparsable duration %q: %v", e.Display, e.Raw, e.Cause)
}

func (e *DurationParseError) Unwrap() error { return e.Cause }

// RendererError wraps a failure raised by a Renderer backend, propagated
// to the caller unchanged in content but tagged with the renderer's name.
type RendererError struct {
	Backend string
	Cause   error
}

func (e *RendererError) Error() string {
	return fmt.Sprintf("ticket: renderer %q failed: %v", e.Backend, e.Cause)
}

func (e *RendererError) Unwrap() error { return e.Cause }
