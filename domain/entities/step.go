package entities

import "time"

// StepKind represents the type of action a step performs
type StepKind string

const (
	StepNavigate        StepKind = "navigate"
	StepFill            StepKind = "fill"
	StepClick           StepKind = "click"
	StepUpload          StepKind = "upload"
	StepWaitForURL      StepKind = "wait_for_url"
	StepWaitForSelector StepKind = "wait_for_selector"
	StepAssertVisible   StepKind = "assert_visible"
	StepScreenshot      StepKind = "screenshot"
)

// Step is a single browser action or assertion within a scenario.
// Steps are immutable once authored and consumed strictly in order;
// step N assumes step N-1 succeeded.
type Step struct {
	Kind       StepKind      `json:"kind"`
	URL        string        `json:"url,omitempty"`        // navigate, wait_for_url
	Locator    Locator       `json:"locator,omitempty"`    // fill, click, upload, waits, asserts
	Value      string        `json:"value,omitempty"`      // fill
	FilePath   string        `json:"file_path,omitempty"`  // upload
	Checkpoint string        `json:"checkpoint,omitempty"` // screenshot
	Timeout    time.Duration `json:"-"`                    // zero means the kind's default
}

// StepStatus represents the execution outcome of a step
type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// StepResult represents the result of executing one step
type StepResult struct {
	Step     Step
	Status   StepStatus
	Err      error
	Duration time.Duration
}

// AssertionResult is the outcome of polling a predicate. It is not
// persisted; it only decides control flow.
type AssertionResult struct {
	OK          bool
	Description string
	Observed    string // last-seen negative state, empty on success
	Elapsed     time.Duration
}
