// Package workload loads job sets and policy configuration from YAML
// files and builds ready-to-run engines from them. It is a consumer of
// the sim package's public surface; scheduling semantics live there.
package workload

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// JobSpec describes one job in a workload file.
type JobSpec struct {
	ID      string `yaml:"id"`
	Arrival int64  `yaml:"arrival"`
	Burst   int64  `yaml:"burst"`
	// Priority is required when the workload's policy is "priority"
	// (lower = more urgent) and ignored otherwise.
	Priority *int `yaml:"priority,omitempty"`
}

// Spec is the top-level workload configuration, loadable from a YAML
// file. Nil pointer fields mean "not set in YAML"; the engine keeps its
// default mode and quantum.
type Spec struct {
	Policy     string    `yaml:"policy"`
	Preemptive *bool     `yaml:"preemptive,omitempty"`
	Quantum    *int64    `yaml:"quantum,omitempty"`
	Jobs       []JobSpec `yaml:"jobs"`
}

// Load reads and parses a YAML workload file. Jobs without an id are
// assigned a generated one, so every engine built from the returned Spec
// shares the same ids.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload file: %w", err)
	}
	for i := range spec.Jobs {
		if spec.Jobs[i].ID == "" {
			spec.Jobs[i].ID = uuid.New().String()
		}
	}
	return &spec, nil
}

// Validate checks the policy name and the parameter combinations in the
// spec. Job parameter ranges are the engines' concern; AddJob rejects
// bad ones at build time.
func (s *Spec) Validate() error {
	if !sim.IsValidPolicy(s.Policy) {
		return fmt.Errorf("unknown policy %q", s.Policy)
	}
	if len(s.Jobs) == 0 {
		return fmt.Errorf("workload has no jobs")
	}
	if s.Quantum != nil && *s.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", *s.Quantum)
	}
	if s.Policy == sim.PolicyPriority {
		for _, j := range s.Jobs {
			if j.Priority == nil {
				return fmt.Errorf("job %q: priority required for policy %q", j.ID, sim.PolicyPriority)
			}
		}
	}
	return nil
}

// BuildEngine constructs the engine for the spec's own policy.
func (s *Spec) BuildEngine() (sim.Engine, error) {
	return s.BuildEngineFor(s.Policy)
}

// BuildEngineFor constructs an engine running policy over the spec's
// jobs, for side-by-side policy comparisons. Each call creates fresh job
// records; engines never share state.
func (s *Spec) BuildEngineFor(policy string) (sim.Engine, error) {
	switch policy {
	case sim.PolicyFCFS:
		e := sim.NewFCFS()
		for _, j := range s.Jobs {
			if err := e.AddJob(j.ID, j.Arrival, j.Burst); err != nil {
				return nil, err
			}
		}
		return e, nil
	case sim.PolicySJF:
		e := sim.NewSJF()
		if s.Preemptive != nil {
			e.SetPreemptive(*s.Preemptive)
		}
		for _, j := range s.Jobs {
			if err := e.AddJob(j.ID, j.Arrival, j.Burst); err != nil {
				return nil, err
			}
		}
		return e, nil
	case sim.PolicyPriority:
		e := sim.NewPriority()
		if s.Preemptive != nil {
			e.SetPreemptive(*s.Preemptive)
		}
		for _, j := range s.Jobs {
			if j.Priority == nil {
				return nil, fmt.Errorf("job %q: priority required for policy %q", j.ID, sim.PolicyPriority)
			}
			if err := e.AddJob(j.ID, j.Arrival, j.Burst, *j.Priority); err != nil {
				return nil, err
			}
		}
		return e, nil
	case sim.PolicyRoundRobin:
		e := sim.NewRoundRobin()
		if s.Preemptive != nil {
			e.SetPreemptive(*s.Preemptive)
		}
		if s.Quantum != nil {
			if err := e.SetQuantum(*s.Quantum); err != nil {
				return nil, err
			}
		}
		for _, j := range s.Jobs {
			if err := e.AddJob(j.ID, j.Arrival, j.Burst); err != nil {
				return nil, err
			}
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", policy)
	}
}

// HasPriorities reports whether every job in the spec carries a priority,
// i.e. whether the priority policy is applicable to this workload.
func (s *Spec) HasPriorities() bool {
	if len(s.Jobs) == 0 {
		return false
	}
	for _, j := range s.Jobs {
		if j.Priority == nil {
			return false
		}
	}
	return true
}
