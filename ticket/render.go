package ticket

// RenderOptions carries the parameters a renderer needs to lay out a
// RunResult: grid_step (seconds per grid cell) and wait_policy. Non-positive
// GridStep must be coerced to 1.0 by the caller (ScheduleAndExport does
// this); WaitPolicy has no effect on scheduling, only on whether a renderer
// draws entry-wait before or after a vehicle's timeline.
type RenderOptions struct {
	GridStep   float64
	WaitPolicy WaitPolicy
	Project    string
}

// Renderer is the capability set the scheduler core hands a finished
// RunResult to, without knowing which concrete backend is bound. The two
// real backends (a console table and a binary export) don't share a
// cell-by-cell drawing model, so the interface commits only to "turn a
// RunResult into output", not to any particular grid representation.
type Renderer interface {
	// Name identifies the backend for error wrapping and log correlation.
	Name() string
	// Render hands the full result and layout options to the backend.
	Render(result RunResult, opts RenderOptions) error
}
