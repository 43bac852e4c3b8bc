package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ui_verification/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestExecutorDispatchesActions(t *testing.T) {
	page := newFakePage()
	exec := NewExecutor(&fakeRecorder{}, testLogger())
	ctx := context.Background()

	_, err := exec.Run(ctx, page, "s", entities.Step{Kind: entities.StepNavigate, URL: "http://localhost:3000"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", page.url)

	_, err = exec.Run(ctx, page, "s", entities.Step{
		Kind:    entities.StepFill,
		Locator: entities.LabelLocator("Email"),
		Value:   "user@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", page.filled[`label "Email"`])

	_, err = exec.Run(ctx, page, "s", entities.Step{
		Kind:    entities.StepClick,
		Locator: entities.RoleLocator("button", "Sign Up"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{`button "Sign Up"`}, page.clicked)
}

func TestExecutorUploadMissingFile(t *testing.T) {
	page := newFakePage()
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:     entities.StepUpload,
		Locator:  entities.CSSLocator(`input[type="file"]`),
		FilePath: filepath.Join(t.TempDir(), "missing.png"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrFileNotFound)
	assert.Empty(t, page.uploads)
}

func TestExecutorUploadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

	page := newFakePage()
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:     entities.StepUpload,
		Locator:  entities.CSSLocator(`input[type="file"]`),
		FilePath: path,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{path}, page.uploads)
}

func TestExecutorWaitForURLSuccess(t *testing.T) {
	page := newFakePage()
	page.url = "http://localhost:3000/onboarding"
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:    entities.StepWaitForURL,
		URL:     "http://localhost:3000/onboarding",
		Timeout: time.Second,
	})
	require.NoError(t, err)
}

func TestExecutorWaitForURLTimeout(t *testing.T) {
	page := newFakePage()
	page.url = "http://localhost:3000/auth/sign-up"
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:    entities.StepWaitForURL,
		URL:     "http://localhost:3000/onboarding",
		Timeout: 300 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	// The last observed state rides along for diagnostics.
	assert.Contains(t, err.Error(), "http://localhost:3000/auth/sign-up")
}

func TestExecutorAssertVisible(t *testing.T) {
	page := newFakePage()
	target := entities.TextLocator("Item added successfully")
	page.visible[target.String()] = true
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:    entities.StepAssertVisible,
		Locator: target,
		Timeout: time.Second,
	})
	require.NoError(t, err)
}

func TestExecutorAssertVisibleTimeout(t *testing.T) {
	page := newFakePage()
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:    entities.StepAssertVisible,
		Locator: entities.TextLocator("never shown"),
		Timeout: 300 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrTimeout)
}

func TestExecutorScreenshotReturnsArtifact(t *testing.T) {
	page := newFakePage()
	recorder := &fakeRecorder{}
	exec := NewExecutor(recorder, testLogger())

	artifact, err := exec.Run(context.Background(), page, "my-scenario", entities.Step{
		Kind:       entities.StepScreenshot,
		Checkpoint: "signup-page",
	})

	require.NoError(t, err)
	require.NotNil(t, artifact)
	assert.Equal(t, "signup-page", artifact.Checkpoint)
	assert.Equal(t, []capture{{scenario: "my-scenario", checkpoint: "signup-page"}}, recorder.captures)
}

func TestExecutorScreenshotFailureIsNotAStepFailure(t *testing.T) {
	page := newFakePage()
	exec := NewExecutor(&fakeRecorder{fail: true}, testLogger())

	artifact, err := exec.Run(context.Background(), page, "s", entities.Step{
		Kind:       entities.StepScreenshot,
		Checkpoint: "signup-page",
	})

	require.NoError(t, err)
	assert.Nil(t, artifact)
}

func TestExecutorUnknownKind(t *testing.T) {
	exec := NewExecutor(&fakeRecorder{}, testLogger())

	_, err := exec.Run(context.Background(), newFakePage(), "s", entities.Step{Kind: "teleport"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}
