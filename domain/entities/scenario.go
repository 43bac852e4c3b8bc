package entities

import "time"

// Scenario is one ordered, named user journey to verify. It is authored
// statically and produces exactly one outcome per run.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Steps       []Step `json:"steps"`
}

// Artifact is a screenshot captured at a named checkpoint. Artifacts are
// write-once per path; re-running a scenario overwrites them.
type Artifact struct {
	Checkpoint string `json:"checkpoint"`
	Path       string `json:"path"`
}

// ScenarioResult represents the outcome of one scenario run
type ScenarioResult struct {
	Scenario  string
	Passed    bool
	Steps     []StepResult
	Artifacts []Artifact
	Duration  time.Duration
	Err       error // set only when the session could not be acquired
}

// FailedStep returns the first failing step result, or nil if the
// scenario passed.
func (r ScenarioResult) FailedStep() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == StepFailed {
			return &r.Steps[i]
		}
	}
	return nil
}
