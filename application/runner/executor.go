package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Executor interprets one step at a time against the active page. Steps
// run strictly sequentially from the scenario's point of view.
type Executor struct {
	recorder interfaces.Recorder
	logger   *logrus.Logger
}

// NewExecutor - creates a step executor
func NewExecutor(recorder interfaces.Recorder, logger *logrus.Logger) *Executor {
	return &Executor{recorder: recorder, logger: logger}
}

// Run executes a single step. For screenshot steps the captured artifact
// is returned; all other kinds return a nil artifact.
func (e *Executor) Run(ctx context.Context, page interfaces.Page, scenario string, step entities.Step) (*entities.Artifact, error) {
	switch step.Kind {
	case entities.StepNavigate:
		return nil, page.Navigate(ctx, step.URL, step.Timeout)

	case entities.StepFill:
		return nil, page.Fill(ctx, step.Locator, step.Value)

	case entities.StepClick:
		return nil, page.Click(ctx, step.Locator)

	case entities.StepUpload:
		if _, err := os.Stat(step.FilePath); err != nil {
			return nil, fmt.Errorf("%w: %s", entities.ErrFileNotFound, step.FilePath)
		}
		return nil, page.Upload(ctx, step.Locator, step.FilePath)

	case entities.StepWaitForURL:
		return nil, e.waitForURL(ctx, page, step)

	case entities.StepWaitForSelector, entities.StepAssertVisible:
		return nil, e.waitForVisible(ctx, page, step)

	case entities.StepScreenshot:
		// Capture failure never fails the step.
		if artifact, ok := e.recorder.Capture(ctx, page, scenario, step.Checkpoint); ok {
			return &artifact, nil
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (e *Executor) waitForURL(ctx context.Context, page interfaces.Page, step entities.Step) error {
	timeout := step.Timeout
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	result := Expect(ctx, fmt.Sprintf("url equals %s", step.URL), timeout, func(ctx context.Context) (bool, string, error) {
		current, err := page.URL(ctx)
		if err != nil {
			return false, "", err
		}
		return current == step.URL, fmt.Sprintf("url is %s", current), nil
	})
	return timeoutError(result)
}

func (e *Executor) waitForVisible(ctx context.Context, page interfaces.Page, step entities.Step) error {
	timeout := step.Timeout
	if timeout <= 0 {
		timeout = defaultVisibleTimeout(step.Kind)
	}
	result := Expect(ctx, fmt.Sprintf("%s visible", step.Locator), timeout, func(ctx context.Context) (bool, string, error) {
		visible, err := page.IsVisible(ctx, step.Locator)
		if err != nil {
			return false, "", err
		}
		return visible, fmt.Sprintf("%s not visible", step.Locator), nil
	})
	return timeoutError(result)
}

func defaultVisibleTimeout(kind entities.StepKind) time.Duration {
	if kind == entities.StepWaitForSelector {
		return DefaultWaitTimeout
	}
	return DefaultAssertTimeout
}

// timeoutError - converts a failed assertion into a step error carrying
// the last-observed state
func timeoutError(result entities.AssertionResult) error {
	if result.OK {
		return nil
	}
	return fmt.Errorf("%w after %s waiting for %s: %s",
		entities.ErrTimeout, result.Elapsed.Round(time.Millisecond), result.Description, result.Observed)
}
