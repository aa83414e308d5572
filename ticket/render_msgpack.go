package ticket

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// msgpackPayload is the on-disk shape for the MsgpackRenderer backend: the
// full RunResult (each record carrying its step's colour, if any) plus the
// layout parameters it was exported with, so a downstream consumer (e.g.
// an external spreadsheet renderer) can reconstruct the coloured grid
// without re-running the scheduler.
type msgpackPayload struct {
	RunResult
	GridStep   float64    `msgpack:"grid_step"`
	WaitPolicy WaitPolicy `msgpack:"wait_policy"`
	Project    string     `msgpack:"project"`
}

// MsgpackRenderer encodes a RunResult to a binary msgpack file. This is
// the scheduler's second renderer backend: a plain, engine-agnostic
// serialization that any downstream tool can read without a spreadsheet
// writer library.
type MsgpackRenderer struct {
	Path string
}

// NewMsgpackRenderer returns a MsgpackRenderer writing to path.
func NewMsgpackRenderer(path string) *MsgpackRenderer {
	return &MsgpackRenderer{Path: path}
}

func (r *MsgpackRenderer) Name() string { return "msgpack" }

func (r *MsgpackRenderer) Render(result RunResult, opts RenderOptions) error {
	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.Path, err)
	}
	defer f.Close()

	payload := msgpackPayload{
		RunResult:  result,
		GridStep:   opts.GridStep,
		WaitPolicy: opts.WaitPolicy,
		Project:    opts.Project,
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return fmt.Errorf("encode run %s: %w", result.RunID, err)
	}
	return nil
}
