package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// writeWorkloadFile writes a YAML fixture and returns its path.
func writeWorkloadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestPrintJobTable_RowsInCompletionOrder(t *testing.T) {
	// GIVEN two completed job snapshots
	jobs := []sim.Job{
		{
			ID: "web", ArrivalTime: 0, BurstTime: 4,
			StartTime: 0, CompletionTime: 4, State: sim.StateCompleted,
		},
		{
			ID: "batch", ArrivalTime: 2, BurstTime: 4,
			StartTime: 4, CompletionTime: 8, State: sim.StateCompleted,
		},
	}

	// WHEN the table is printed
	output := captureStdout(t, func() { printJobTable(jobs) })

	// THEN the header and one row per job appear, in order
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, col := range []string{"JOB", "ARRIVAL", "BURST", "START", "COMPLETED", "TURNAROUND", "WAITING", "RESPONSE"} {
		assert.Contains(t, lines[0], col)
	}
	assert.Contains(t, lines[1], "web")
	assert.Contains(t, lines[2], "batch")

	// THEN batch's row carries its derived metrics (turnaround 6, waiting 2)
	fields := strings.Fields(lines[2])
	require.Len(t, fields, 8)
	assert.Equal(t, []string{"batch", "2", "4", "4", "8", "6", "2", "2"}, fields)
}

func TestRunCommand_PrintsTableAndMetrics(t *testing.T) {
	path := writeWorkloadFile(t, `
policy: fcfs
jobs:
  - id: web
    arrival: 0
    burst: 3
  - id: batch
    arrival: 1
    burst: 2
`)

	rootCmd.SetArgs([]string{"run", "--workload", path})
	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, output, "JOB")
	assert.Contains(t, output, "web")
	assert.Contains(t, output, "batch")
	assert.Contains(t, output, "=== Schedule Metrics (fcfs) ===")
	assert.Contains(t, output, "Completed Jobs    : 2")
}

func TestRunCommand_PolicyOverrideFlag(t *testing.T) {
	// GIVEN a workload file declaring fcfs
	path := writeWorkloadFile(t, `
policy: fcfs
jobs:
  - id: long
    arrival: 0
    burst: 6
  - id: short
    arrival: 1
    burst: 1
`)

	// WHEN run with --policy sjf
	rootCmd.SetArgs([]string{"run", "--workload", path, "--policy", "sjf", "--preemptive"})
	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	// THEN the flag, not the file, picks the simulated policy
	assert.Contains(t, output, "=== Schedule Metrics (sjf) ===")
}

func TestCompareCommand_OneRowPerPolicy(t *testing.T) {
	path := writeWorkloadFile(t, `
policy: fcfs
jobs:
  - id: a
    arrival: 0
    burst: 3
    priority: 2
  - id: b
    arrival: 1
    burst: 2
    priority: 1
`)

	rootCmd.SetArgs([]string{"compare", "--workload", path})
	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, output, "POLICY")
	for _, policy := range []string{"fcfs", "sjf", "priority", "round-robin"} {
		assert.Contains(t, output, policy)
	}
}

func TestCompareCommand_SkipsPriorityWithoutPriorities(t *testing.T) {
	path := writeWorkloadFile(t, `
policy: fcfs
jobs:
  - id: a
    arrival: 0
    burst: 3
`)

	rootCmd.SetArgs([]string{"compare", "--workload", path})
	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, output, "fcfs")
	assert.NotContains(t, output, "\npriority")
}

func TestFlagDefaults(t *testing.T) {
	quantum := runCmd.Flags().Lookup("quantum")
	require.NotNil(t, quantum)
	assert.Equal(t, "2", quantum.DefValue)

	log := runCmd.Flags().Lookup("log")
	require.NotNil(t, log)
	assert.Equal(t, "error", log.DefValue)

	for _, name := range []string{"workload", "log"} {
		assert.NotNil(t, compareCmd.Flags().Lookup(name), "compare must carry --%s", name)
	}
}
