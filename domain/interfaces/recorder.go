package interfaces

import (
	"context"

	"ui_verification/domain/entities"
)

// Recorder captures diagnostic artifacts at named checkpoints. A failed
// capture is reported through ok=false and a logged warning; it never
// fails the scenario it was documenting.
type Recorder interface {
	Capture(ctx context.Context, page Page, scenario, checkpoint string) (artifact entities.Artifact, ok bool)
}
