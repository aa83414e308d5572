package ticket

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer prints one row per (vehicle, step) TimelineRecord plus a
// per-vehicle wait summary row to an io.Writer (typically stdout), in a
// borderless console style. This is the scheduler's console backend.
type TableRenderer struct {
	W io.Writer
}

// NewTableRenderer returns a TableRenderer writing to w.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w}
}

func (r *TableRenderer) Name() string { return "table" }

func (r *TableRenderer) Render(result RunResult, opts RenderOptions) error {
	table := tablewriter.NewWriter(r.W)
	table.SetHeader([]string{"vehicle", "seq", "display", "group", "start", "svc_finish", "depart", "block_wait"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, waits := range result.PerVehicleWaits() {
		steps := result.StepsForVehicle(waits.Vehicle)
		entryLabel := ""
		if opts.WaitPolicy == WaitBefore && waits.EntryWait > 0 {
			entryLabel = fmt.Sprintf("entry wait %.1fs", waits.EntryWait)
		}
		table.Append([]string{
			fmt.Sprintf("%d", waits.Vehicle), "", entryLabel,
			fmt.Sprintf("total wait %.1fs", waits.TotalWait), "", "", "", "",
		})
		for _, rec := range steps {
			table.Append([]string{
				fmt.Sprintf("%d", rec.Vehicle),
				fmt.Sprintf("%d", rec.Seq),
				rec.Display,
				rec.Group,
				fmt.Sprintf("%.1f", rec.Start),
				fmt.Sprintf("%.1f", rec.SvcFinish),
				fmt.Sprintf("%.1f", rec.Depart),
				fmt.Sprintf("%.1f", rec.BlockWait),
			})
		}
		if opts.WaitPolicy == WaitAfter && waits.EntryWait > 0 {
			table.Append([]string{
				fmt.Sprintf("%d", waits.Vehicle), "",
				fmt.Sprintf("entry wait %.1fs", waits.EntryWait), "", "", "", "", "",
			})
		}
	}

	table.Render()
	fmt.Fprintf(r.W, "run %s: %d vehicles, max_time=%.1fs\n", result.RunID, len(result.PerVehicleWaits()), result.MaxTime)
	return nil
}
