package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Recorder writes checkpoint screenshots to a fixed output directory.
// Paths are deterministic per scenario and checkpoint name, so re-runs
// overwrite earlier artifacts.
type Recorder struct {
	dir    string
	logger *logrus.Logger
}

// NewRecorder - creates the output directory and the recorder
func NewRecorder(dir string, logger *logrus.Logger) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &Recorder{dir: dir, logger: logger}, nil
}

// Capture - takes a screenshot at the named checkpoint. A failed capture
// is logged as a warning and reported via ok=false; it must never mask
// the scenario outcome it was documenting.
func (r *Recorder) Capture(ctx context.Context, page interfaces.Page, scenario, checkpoint string) (entities.Artifact, bool) {
	path := filepath.Join(r.dir, fmt.Sprintf("%s_%s.png", slug(scenario), slug(checkpoint)))
	if err := page.Screenshot(ctx, path); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"scenario":   scenario,
			"checkpoint": checkpoint,
		}).Warn("failed to capture screenshot")
		return entities.Artifact{}, false
	}
	r.logger.WithFields(logrus.Fields{
		"scenario":   scenario,
		"checkpoint": checkpoint,
		"path":       path,
	}).Info("captured screenshot")
	return entities.Artifact{Checkpoint: checkpoint, Path: path}, true
}

// slug - normalizes a name into a filesystem-friendly token
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
