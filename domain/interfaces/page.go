package interfaces

import (
	"context"
	"time"

	"ui_verification/domain/entities"
)

// Page is the capability surface a scenario step needs from a browser
// page. The production implementation is backed by playwright; tests use
// a fake satisfying the same contract.
type Page interface {
	// Navigate loads a URL and blocks until the page reaches its load state
	Navigate(ctx context.Context, url string, timeout time.Duration) error

	// Fill locates exactly one interactive element and sets its value
	Fill(ctx context.Context, target entities.Locator, value string) error

	// Click locates exactly one element and activates it
	Click(ctx context.Context, target entities.Locator) error

	// Upload binds a local file to a file-input element
	Upload(ctx context.Context, target entities.Locator, path string) error

	// URL returns the current page URL
	URL(ctx context.Context) (string, error)

	// IsVisible reports whether any element matching the locator is
	// currently visible; it never waits
	IsVisible(ctx context.Context, target entities.Locator) (bool, error)

	// Screenshot writes a full-page image to path
	Screenshot(ctx context.Context, path string) error
}
