package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Engine names accepted by Config.Engine.
const (
	EngineChromium = "chromium"
	EngineFirefox  = "firefox"
	EngineWebKit   = "webkit"
)

// Config controls how browser sessions are launched.
type Config struct {
	Headless       bool
	Engine         string
	ViewportWidth  int
	ViewportHeight int
}

// DefaultConfig - headless chromium at 1280x720
func DefaultConfig() Config {
	return Config{
		Headless:       true,
		Engine:         EngineChromium,
		ViewportWidth:  1280,
		ViewportHeight: 720,
	}
}

// Factory launches isolated browser sessions, one per scenario run.
type Factory struct {
	pw     *playwright.Playwright
	cfg    Config
	logger *logrus.Logger
}

// NewFactory - starts the playwright driver shared by all sessions
func NewFactory(cfg Config, logger *logrus.Logger) (*Factory, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to start playwright: %v", entities.ErrLaunch, err)
	}
	return &Factory{pw: pw, cfg: cfg, logger: logger}, nil
}

// Acquire - launches a browser with a fresh, empty browsing context and a
// single page. No cookies or storage carry over from previous sessions.
func (f *Factory) Acquire(ctx context.Context) (interfaces.Session, error) {
	browser, err := f.browserType().Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(f.cfg.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrLaunch, f.cfg.Engine, err)
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  f.cfg.ViewportWidth,
			Height: f.cfg.ViewportHeight,
		},
	})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("%w: failed to create context: %v", entities.ErrLaunch, err)
	}

	pg, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		return nil, fmt.Errorf("%w: failed to create page: %v", entities.ErrLaunch, err)
	}

	id := uuid.New().String()
	f.logger.WithFields(logrus.Fields{
		"session": id,
		"engine":  f.cfg.Engine,
	}).Debug("session acquired")

	return &session{
		id:      id,
		browser: browser,
		context: browserCtx,
		page:    &page{pw: pg},
		logger:  f.logger.WithField("session", id),
	}, nil
}

// Close - stops the playwright driver; call after all sessions are done
func (f *Factory) Close() error {
	if f.pw == nil {
		return nil
	}
	err := f.pw.Stop()
	f.pw = nil
	return err
}

func (f *Factory) browserType() playwright.BrowserType {
	switch f.cfg.Engine {
	case EngineFirefox:
		return f.pw.Firefox
	case EngineWebKit:
		return f.pw.WebKit
	default:
		return f.pw.Chromium
	}
}

type session struct {
	id      string
	browser playwright.Browser
	context playwright.BrowserContext
	page    *page
	logger  *logrus.Entry

	closeOnce sync.Once
	closeErr  error
}

func (s *session) ID() string {
	return s.id
}

func (s *session) Page() interfaces.Page {
	return s.page
}

// Close - closes the browsing context and the browser process. Idempotent;
// errors from already-closed targets are swallowed.
func (s *session) Close() error {
	s.closeOnce.Do(func() {
		var closeErr error

		if s.context != nil {
			if err := s.context.Close(); err != nil && !isAlreadyClosed(err) {
				closeErr = fmt.Errorf("failed to close context: %w", err)
			}
			s.context = nil
		}

		if s.browser != nil {
			if err := s.browser.Close(); err != nil && !isAlreadyClosed(err) {
				if closeErr != nil {
					closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
				} else {
					closeErr = fmt.Errorf("failed to close browser: %w", err)
				}
			}
			s.browser = nil
		}

		s.closeErr = closeErr
		s.logger.Debug("session closed")
	})
	return s.closeErr
}

// isAlreadyClosed - whether the error just means the target is gone
func isAlreadyClosed(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}
