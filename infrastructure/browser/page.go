package browser

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"ui_verification/domain/entities"

	"github.com/playwright-community/playwright-go"
)

const defaultNavigateTimeout = 30 * time.Second

// page adapts a playwright page to the interfaces.Page contract.
type page struct {
	pw playwright.Page
}

// Navigate - loads the URL and blocks until the load state is reached
func (p *page) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultNavigateTimeout
	}
	_, err := p.pw.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("%w: goto %s: %v", entities.ErrNavigation, url, err)
	}
	return nil
}

// Fill - sets the value of exactly one interactive element
func (p *page) Fill(ctx context.Context, target entities.Locator, value string) error {
	loc, err := p.single(target)
	if err != nil {
		return err
	}
	if err := p.interactable(loc, target); err != nil {
		return err
	}
	if err := loc.Fill(value); err != nil {
		return fmt.Errorf("%w: fill %s: %v", entities.ErrNotInteractable, target, err)
	}
	return nil
}

// Click - activates exactly one element
func (p *page) Click(ctx context.Context, target entities.Locator) error {
	loc, err := p.single(target)
	if err != nil {
		return err
	}
	if err := p.interactable(loc, target); err != nil {
		return err
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("%w: click %s: %v", entities.ErrNotInteractable, target, err)
	}
	return nil
}

// Upload - binds a local file to a file-input element
func (p *page) Upload(ctx context.Context, target entities.Locator, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
	}
	loc, err := p.single(target)
	if err != nil {
		return err
	}
	file := playwright.InputFile{
		Name:     filepath.Base(path),
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
		Buffer:   data,
	}
	if err := loc.SetInputFiles([]playwright.InputFile{file}); err != nil {
		return fmt.Errorf("%w: upload to %s: %v", entities.ErrNotInteractable, target, err)
	}
	return nil
}

func (p *page) URL(ctx context.Context) (string, error) {
	return p.pw.URL(), nil
}

// IsVisible - probes visibility without waiting
func (p *page) IsVisible(ctx context.Context, target entities.Locator) (bool, error) {
	visible, err := p.resolve(target).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("visibility probe %s: %w", target, err)
	}
	return visible, nil
}

// Screenshot - writes a full-page image to path
func (p *page) Screenshot(ctx context.Context, path string) error {
	_, err := p.pw.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

// resolve - maps a locator strategy onto the playwright locator API
func (p *page) resolve(target entities.Locator) playwright.Locator {
	switch target.Strategy {
	case entities.ByRole:
		return p.pw.GetByRole(playwright.AriaRole(target.Role), playwright.PageGetByRoleOptions{
			Name:  target.Name,
			Exact: playwright.Bool(true),
		})
	case entities.ByLabel:
		return p.pw.GetByLabel(target.Name)
	case entities.ByText:
		return p.pw.GetByText(target.Name, playwright.PageGetByTextOptions{
			Exact: playwright.Bool(true),
		})
	default:
		return p.pw.Locator(target.Name)
	}
}

// single - resolves a locator that must match exactly one element
func (p *page) single(target entities.Locator) (playwright.Locator, error) {
	loc := p.resolve(target)
	count, err := loc.Count()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrElementNotFound, target, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrElementNotFound, target)
	}
	if count > 1 {
		return nil, fmt.Errorf("%w: %s matched %d elements", entities.ErrElementNotFound, target, count)
	}
	return loc, nil
}

// interactable - rejects hidden or disabled elements before acting on them
func (p *page) interactable(loc playwright.Locator, target entities.Locator) error {
	visible, err := loc.IsVisible()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", entities.ErrNotInteractable, target, err)
	}
	if !visible {
		return fmt.Errorf("%w: %s is hidden", entities.ErrNotInteractable, target)
	}
	enabled, err := loc.IsEnabled()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", entities.ErrNotInteractable, target, err)
	}
	if !enabled {
		return fmt.Errorf("%w: %s is disabled", entities.ErrNotInteractable, target)
	}
	return nil
}
