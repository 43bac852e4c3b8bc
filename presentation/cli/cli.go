// Package cli wires the harness together: configuration from the
// environment, one runner, the authored scenarios, and an exit status
// that reflects the overall verdict.
package cli

import (
	"context"
	"fmt"
	"os"

	"ui_verification/application/runner"
	"ui_verification/application/scenarios"
	"ui_verification/domain/entities"
	"ui_verification/infrastructure/artifacts"
	"ui_verification/infrastructure/browser"
	"ui_verification/infrastructure/fixtures"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds harness-level settings read from the environment.
type Config struct {
	BaseURL     string
	ArtifactDir string
	FixtureDir  string
	Browser     browser.Config
}

// LoadConfig - reads configuration from the environment, after loading an
// optional .env file
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	browserCfg := browser.DefaultConfig()
	browserCfg.Headless = os.Getenv("VERIFY_HEADLESS") != "false"
	browserCfg.Engine = envOr("BROWSER_ENGINE", browser.EngineChromium)

	return Config{
		BaseURL:     envOr("VERIFY_BASE_URL", "http://localhost:3000"),
		ArtifactDir: envOr("VERIFY_ARTIFACT_DIR", "verification-output"),
		FixtureDir:  envOr("VERIFY_FIXTURE_DIR", "verification-fixtures"),
		Browser:     browserCfg,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type App struct {
	cfg       Config
	logger    *logrus.Logger
	factory   *browser.Factory
	runner    *runner.Runner
	scenarios []entities.Scenario
}

// New - builds the harness from configuration
func New(cfg Config) (*App, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	recorder, err := artifacts.NewRecorder(cfg.ArtifactDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize recorder: %w", err)
	}

	placeholder, err := fixtures.WritePlaceholder(cfg.FixtureDir)
	if err != nil {
		return nil, fmt.Errorf("failed to write placeholder fixture: %w", err)
	}
	nonClothing, err := fixtures.WriteNonClothing(cfg.FixtureDir)
	if err != nil {
		return nil, fmt.Errorf("failed to write non-clothing fixture: %w", err)
	}

	factory, err := browser.NewFactory(cfg.Browser, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	executor := runner.NewExecutor(recorder, logger)

	return &App{
		cfg:     cfg,
		logger:  logger,
		factory: factory,
		runner:  runner.NewRunner(factory, executor, recorder, logger),
		scenarios: scenarios.All(cfg.BaseURL, scenarios.Fixtures{
			Placeholder: placeholder,
			NonClothing: nonClothing,
		}),
	}, nil
}

// Run - executes the named scenarios sequentially, or all of them when
// none are named. Returns an error if any scenario failed.
func (a *App) Run(ctx context.Context, names []string) error {
	selected, err := a.pick(names)
	if err != nil {
		return err
	}

	failures := 0
	for _, scenario := range selected {
		result := a.runner.Run(ctx, scenario)
		if result.Passed {
			continue
		}
		failures++
		a.report(result)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failures, len(selected))
	}
	a.logger.WithField("scenarios", len(selected)).Info("all scenarios passed")
	return nil
}

// Close - releases the playwright driver
func (a *App) Close() {
	if err := a.factory.Close(); err != nil {
		a.logger.WithError(err).Warn("failed to stop browser driver")
	}
}

func (a *App) pick(names []string) ([]entities.Scenario, error) {
	if len(names) == 0 {
		return a.scenarios, nil
	}

	byName := make(map[string]entities.Scenario, len(a.scenarios))
	for _, s := range a.scenarios {
		byName[s.Name] = s
	}

	selected := make([]entities.Scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// report - logs the failing step and its diagnostic artifacts
func (a *App) report(result entities.ScenarioResult) {
	log := a.logger.WithField("scenario", result.Scenario)

	if result.Err != nil {
		log.WithError(result.Err).Error("scenario failed before any step ran")
		return
	}

	failed := result.FailedStep()
	if failed == nil {
		return
	}
	fields := logrus.Fields{
		"step": string(failed.Step.Kind),
	}
	for _, artifact := range result.Artifacts {
		if artifact.Checkpoint == "error" {
			fields["artifact"] = artifact.Path
		}
	}
	log.WithError(failed.Err).WithFields(fields).Error("scenario failed")
}
