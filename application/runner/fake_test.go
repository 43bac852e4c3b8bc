package runner

import (
	"context"
	"sync"
	"time"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"
)

// fakePage satisfies interfaces.Page without a browser. Visibility is
// keyed by the locator's string form.
type fakePage struct {
	mu      sync.Mutex
	url     string
	visible map[string]bool

	navErr    error
	fillErr   error
	clickErr  error
	uploadErr error
	shotErr   error

	filled  map[string]string
	clicked []string
	uploads []string
	shots   []string
}

func newFakePage() *fakePage {
	return &fakePage{
		visible: make(map[string]bool),
		filled:  make(map[string]string),
	}
}

func (p *fakePage) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.navErr != nil {
		return p.navErr
	}
	p.url = url
	return nil
}

func (p *fakePage) Fill(ctx context.Context, target entities.Locator, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fillErr != nil {
		return p.fillErr
	}
	p.filled[target.String()] = value
	return nil
}

func (p *fakePage) Click(ctx context.Context, target entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clickErr != nil {
		return p.clickErr
	}
	p.clicked = append(p.clicked, target.String())
	return nil
}

func (p *fakePage) Upload(ctx context.Context, target entities.Locator, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.uploadErr != nil {
		return p.uploadErr
	}
	p.uploads = append(p.uploads, path)
	return nil
}

func (p *fakePage) URL(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url, nil
}

func (p *fakePage) IsVisible(ctx context.Context, target entities.Locator) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible[target.String()], nil
}

func (p *fakePage) Screenshot(ctx context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shotErr != nil {
		return p.shotErr
	}
	p.shots = append(p.shots, path)
	return nil
}

type fakeSession struct {
	page   *fakePage
	closed int
}

func (s *fakeSession) ID() string            { return "fake" }
func (s *fakeSession) Page() interfaces.Page { return s.page }
func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeFactory struct {
	page     *fakePage
	err      error
	sessions []*fakeSession
}

func (f *fakeFactory) Acquire(ctx context.Context) (interfaces.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSession{page: f.page}
	f.sessions = append(f.sessions, s)
	return s, nil
}

type capture struct {
	scenario   string
	checkpoint string
}

type fakeRecorder struct {
	fail     bool
	captures []capture
}

func (r *fakeRecorder) Capture(ctx context.Context, page interfaces.Page, scenario, checkpoint string) (entities.Artifact, bool) {
	r.captures = append(r.captures, capture{scenario: scenario, checkpoint: checkpoint})
	if r.fail {
		return entities.Artifact{}, false
	}
	return entities.Artifact{Checkpoint: checkpoint, Path: scenario + "_" + checkpoint + ".png"}, true
}
