package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/neudestifanoes/ltpsim/plot"
	sim "github.com/neudestifanoes/ltpsim/sim"
	"github.com/neudestifanoes/ltpsim/sim/trace"
)

var (
	// CLI flags for the shared base parameters
	totalTime    float64 // Total simulated duration (seconds)
	dt           float64 // Time step (seconds)
	wInitial     float64 // Synaptic weight before stimulation
	tetanusStart float64 // Stimulation onset (seconds)
	tetanusEnd   float64 // Stimulation offset (seconds, exclusive)

	// CLI flags for inputs and outputs
	conditionsFile string // Optional YAML condition presets file
	outputPath     string // Chart output path (.png or .svg)
	csvPath        string // Optional CSV trace export path
	logLevel       string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ltpsim",
	Short: "Single-synapse LTP model comparing Healthy, AD, and treated conditions",
}

// runCmd executes all condition simulations and renders the comparison chart
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the LTP simulation for every condition",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		base := sim.BaseParams{
			TotalTime:    totalTime,
			Dt:           dt,
			WInitial:     wInitial,
			TetanusStart: tetanusStart,
			TetanusEnd:   tetanusEnd,
		}
		// The sim core performs no validation; a non-positive step would
		// produce an empty or unbounded grid, so reject it here.
		if base.Dt <= 0 {
			logrus.Fatalf("dt must be positive, got %v", base.Dt)
		}
		if base.TotalTime <= 0 {
			logrus.Fatalf("total-time must be positive, got %v", base.TotalTime)
		}

		conditions := sim.Conditions(base)
		if conditionsFile != "" {
			conditions, err = GetConditions(conditionsFile, base)
			if err != nil {
				logrus.Fatalf("unable to read conditions file: %v", err)
			}
		}
		if len(conditions) == 0 {
			logrus.Fatalf("no conditions to simulate")
		}

		// Log configuration
		logrus.Infof("Starting simulation with %d conditions, horizon=%gs, dt=%gs, window [%gs, %gs)",
			len(conditions), base.TotalTime, base.Dt, base.TetanusStart, base.TetanusEnd)

		startTime := time.Now() // Get current time (start)

		metrics := sim.NewMetrics()
		traces := make([]*trace.Trace, 0, len(conditions))
		yMax := 0.0
		for _, p := range conditions {
			tr := sim.NewSimulator(p).Run()
			traces = append(traces, tr)
			metrics.Add(trace.Summarize(tr, p.WMax, p.TetanusStart, p.TetanusEnd))
			if p.WMax > yMax {
				yMax = p.WMax
			}
		}

		graph := plot.Comparative(traces, base.TetanusStart, base.TetanusEnd, yMax+0.5)
		if err := plot.Render(graph, outputPath); err != nil {
			logrus.Fatalf("unable to render chart: %v", err)
		}
		logrus.Infof("Chart written to %s", outputPath)

		if csvPath != "" {
			if err := WriteTracesCSV(csvPath, traces); err != nil {
				logrus.Fatalf("unable to export traces: %v", err)
			}
			logrus.Infof("Traces written to %s", csvPath)
		}

		metrics.Print(time.Since(startTime))

		logrus.Info("Simulation complete.")
	},
}

func init() {
	runCmd.Flags().Float64Var(&totalTime, "total-time", 100, "Total simulated duration in seconds")
	runCmd.Flags().Float64Var(&dt, "dt", 0.1, "Time step in seconds")
	runCmd.Flags().Float64Var(&wInitial, "w-initial", 1.0, "Initial synaptic weight")
	runCmd.Flags().Float64Var(&tetanusStart, "tetanus-start", 40, "Stimulation onset in seconds")
	runCmd.Flags().Float64Var(&tetanusEnd, "tetanus-end", 45, "Stimulation offset in seconds")
	runCmd.Flags().StringVar(&conditionsFile, "conditions", "", "YAML condition presets file (built-in conditions when empty)")
	runCmd.Flags().StringVar(&outputPath, "output", "ltp.png", "Chart output path (.png or .svg)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Optional CSV trace export path")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log verbosity (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
