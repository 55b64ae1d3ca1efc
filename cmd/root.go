package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	// CLI flags shared by the subcommands
	workloadPath string // Path to the YAML workload file
	logLevel     string // Log verbosity level

	// CLI flags overriding the workload file (applied only when set)
	policyName     string // Scheduling policy
	preemptiveMode bool   // Preemption mode
	timeQuantum    int64  // Round-robin time quantum
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for classical CPU scheduling policies",
}

// setupLogging parses and applies the requested logrus level.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadSpec reads the workload file and applies any flag overrides.
func loadSpec(cmd *cobra.Command) *workload.Spec {
	if workloadPath == "" {
		logrus.Fatalf("Workload file not provided. Exiting simulation.")
	}
	spec, err := workload.Load(workloadPath)
	if err != nil {
		logrus.Fatalf("Unable to load workload: %v", err)
	}
	if cmd.Flags().Changed("policy") {
		spec.Policy = policyName
	}
	if cmd.Flags().Changed("preemptive") {
		spec.Preemptive = &preemptiveMode
	}
	if cmd.Flags().Changed("quantum") {
		spec.Quantum = &timeQuantum
	}
	if err := spec.Validate(); err != nil {
		logrus.Fatalf("Invalid workload: %v", err)
	}
	return spec
}

// printJobTable displays per-job results in completion order.
func printJobTable(jobs []sim.Job) {
	fmt.Printf("%-12s %8s %6s %6s %10s %11s %8s %9s\n",
		"JOB", "ARRIVAL", "BURST", "START", "COMPLETED", "TURNAROUND", "WAITING", "RESPONSE")
	for _, j := range jobs {
		fmt.Printf("%-12s %8d %6d %6d %10d %11d %8d %9d\n",
			j.ID, j.ArrivalTime, j.BurstTime, j.StartTime, j.CompletionTime,
			j.TurnaroundTime(), j.WaitingTime(), j.ResponseTime())
	}
}

// runCmd executes one policy over a workload file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		spec := loadSpec(cmd)

		engine, err := spec.BuildEngine()
		if err != nil {
			logrus.Fatalf("Unable to build engine: %v", err)
		}

		logrus.Infof("Starting %s simulation over %d jobs", engine.Policy(), len(spec.Jobs))
		startTime := time.Now()
		if err := engine.Execute(); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation finished in %s", time.Since(startTime))

		printJobTable(engine.CompletedJobs())
		fmt.Println()
		engine.Metrics().Print(engine.Policy())
	},
}

// compareCmd runs every applicable policy over the same workload and
// prints one summary row per policy.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all scheduling policies over one workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		spec := loadSpec(cmd)

		policies := []string{sim.PolicyFCFS, sim.PolicySJF, sim.PolicyPriority, sim.PolicyRoundRobin}
		fmt.Printf("%-12s %5s %9s %7s %11s %5s %10s %12s\n",
			"POLICY", "JOBS", "MAKESPAN", "UTIL%", "THROUGHPUT", "CTX", "AVG_WAIT", "AVG_TURNRND")
		for _, policy := range policies {
			if policy == sim.PolicyPriority && !spec.HasPriorities() {
				logrus.Warnf("Skipping %s: not every job carries a priority", policy)
				continue
			}
			engine, err := spec.BuildEngineFor(policy)
			if err != nil {
				logrus.Fatalf("Unable to build %s engine: %v", policy, err)
			}
			if err := engine.Execute(); err != nil {
				logrus.Fatalf("%s simulation failed: %v", policy, err)
			}
			m := engine.Metrics()
			fmt.Printf("%-12s %5d %9d %7.2f %11.4f %5d %10.2f %12.2f\n",
				policy, m.JobCount, m.Makespan, m.CPUUtilization, m.Throughput,
				m.ContextSwitches, m.Waiting.Mean, m.Turnaround.Mean)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVar(&workloadPath, "workload", "", "Path to the YAML workload file")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	}
	runCmd.Flags().StringVar(&policyName, "policy", "", "Override the workload's policy (fcfs, sjf, priority, round-robin)")
	runCmd.Flags().BoolVar(&preemptiveMode, "preemptive", false, "Override the workload's preemption mode")
	runCmd.Flags().Int64Var(&timeQuantum, "quantum", sim.DefaultQuantum, "Override the workload's round-robin time quantum")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
