// Package runner drives authored scenarios against a live page: one
// isolated browser session per scenario, steps executed in order, abort
// on first failure, teardown on every exit path.
package runner

import (
	"context"
	"fmt"
	"time"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// errorCheckpoint names the diagnostic screenshot taken when a step fails.
const errorCheckpoint = "error"

type Runner struct {
	sessions interfaces.SessionFactory
	executor *Executor
	recorder interfaces.Recorder
	logger   *logrus.Logger
}

// NewRunner - creates a scenario runner
func NewRunner(sessions interfaces.SessionFactory, executor *Executor, recorder interfaces.Recorder, logger *logrus.Logger) *Runner {
	return &Runner{
		sessions: sessions,
		executor: executor,
		recorder: recorder,
		logger:   logger,
	}
}

// Run executes one scenario in its own browser session. The session is
// closed exactly once whether the scenario passes, fails an assertion,
// or a step errors mid-flight. A failing step aborts the remaining
// steps; they are recorded as skipped.
func (r *Runner) Run(ctx context.Context, scenario entities.Scenario) entities.ScenarioResult {
	start := time.Now()
	result := entities.ScenarioResult{Scenario: scenario.Name}
	log := r.logger.WithField("scenario", scenario.Name)

	session, err := r.sessions.Acquire(ctx)
	if err != nil {
		log.WithError(err).Error("failed to acquire session")
		result.Err = fmt.Errorf("scenario %s: %w", scenario.Name, err)
		result.Duration = time.Since(start)
		return result
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.WithError(cerr).Warn("session teardown")
		}
	}()

	log.WithField("session", session.ID()).Info("scenario started")
	page := session.Page()
	failed := false

	for i, step := range scenario.Steps {
		if failed {
			result.Steps = append(result.Steps, entities.StepResult{Step: step, Status: entities.StepSkipped})
			continue
		}

		stepStart := time.Now()
		artifact, err := r.executor.Run(ctx, page, scenario.Name, step)
		stepResult := entities.StepResult{
			Step:     step,
			Status:   entities.StepPassed,
			Duration: time.Since(stepStart),
		}
		if artifact != nil {
			result.Artifacts = append(result.Artifacts, *artifact)
		}

		if err != nil {
			failed = true
			stepResult.Status = entities.StepFailed
			stepResult.Err = err
			log.WithError(err).WithFields(logrus.Fields{
				"step": i,
				"kind": step.Kind,
			}).Error("step failed")

			// Best-effort diagnostic screenshot before teardown.
			if diag, ok := r.recorder.Capture(ctx, page, scenario.Name, errorCheckpoint); ok {
				result.Artifacts = append(result.Artifacts, diag)
			}
		} else {
			log.WithFields(logrus.Fields{
				"step": i,
				"kind": step.Kind,
			}).Debug("step passed")
		}

		result.Steps = append(result.Steps, stepResult)
	}

	result.Passed = !failed
	result.Duration = time.Since(start)
	if result.Passed {
		log.WithField("duration", result.Duration.Round(time.Millisecond)).Info("scenario passed")
	}
	return result
}
