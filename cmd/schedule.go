// cmd/schedule.go
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zhongwenjie1/combo-ticket-scheduler/ticket"
)

var (
	configPath string
	outPath    string
	format     string
	carsFlag   int
	gridStep   float64
	waitPolicy string
	project    string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the combination-ticket scheduler and export its timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ticket.LoadTicketConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("cars") {
			cfg.Cars = carsFlag
		}
		if cmd.Flags().Changed("grid-step") {
			cfg.GridStep = gridStep
		}
		if cmd.Flags().Changed("wait-policy") {
			cfg.WaitPolicy = waitPolicy
		}
		if cmd.Flags().Changed("project") {
			cfg.Project = project
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logrus.Infof("scheduling %d vehicles over %d step definitions (project=%q)", cfg.Cars, len(cfg.Steps), cfg.Project)

		sink, err := newSink(format, outPath)
		if err != nil {
			return err
		}

		result, err := ticket.ScheduleAndExport(
			cfg.Steps, cfg.Cars, cfg.GridStep, ticket.NormalizeWaitPolicy(cfg.WaitPolicy), cfg.Project, sink,
		)
		if err != nil {
			return err
		}

		logrus.Infof("run %s complete: max_time=%.1fs", result.RunID, result.MaxTime)
		return nil
	},
}

func newSink(format, outPath string) (ticket.Renderer, error) {
	switch format {
	case "table", "":
		if outPath == "" {
			return ticket.NewTableRenderer(os.Stdout), nil
		}
		f, err := os.Create(outPath)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", outPath, err)
		}
		return ticket.NewTableRenderer(f), nil
	case "msgpack":
		if outPath == "" {
			return nil, fmt.Errorf("--out is required for --format msgpack")
		}
		return ticket.NewMsgpackRenderer(outPath), nil
	default:
		return nil, fmt.Errorf("unknown renderer format %q (want table or msgpack)", format)
	}
}

func init() {
	scheduleCmd.Flags().StringVar(&configPath, "config", "", "Path to the ticket YAML configuration file")
	scheduleCmd.Flags().StringVar(&outPath, "out", "", "Output path (stdout for table format if omitted)")
	scheduleCmd.Flags().StringVar(&format, "format", "table", "Renderer backend: table or msgpack")
	scheduleCmd.Flags().IntVar(&carsFlag, "cars", 0, "Override the vehicle count from the config file")
	scheduleCmd.Flags().Float64Var(&gridStep, "grid-step", 0, "Override the grid step (seconds per cell) from the config file")
	scheduleCmd.Flags().StringVar(&waitPolicy, "wait-policy", "", "Override the wait policy (before|after) from the config file")
	scheduleCmd.Flags().StringVar(&project, "project", "", "Override the project name from the config file")
	scheduleCmd.MarkFlagRequired("config")
}
