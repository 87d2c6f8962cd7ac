// Package services holds the admin state container: authentication state plus
// in-memory copies of the seven portfolio content collections, kept in step
// with the REST API one mutation at a time.
package services

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Snapshot is a point-in-time copy of the container. Its slices are not shared
// with the container.
type Snapshot struct {
	State       State
	User        *models.AuthUser
	Profile     *models.Profile
	Educations  []models.Education
	Skills      []models.Skill
	Projects    []models.Project
	Experiences []models.Experience
	SocialLinks []models.SocialLink
	Messages    []models.ContactMessage
}

// content is everything a refresh replaces wholesale.
type content struct {
	profile     *models.Profile
	educations  []models.Education
	skills      []models.Skill
	projects    []models.Project
	experiences []models.Experience
	socialLinks []models.SocialLink
	messages    []models.ContactMessage
}

// Admin is the admin state container. Create it with NewAdmin; it is safe
// for concurrent use.
//
// Every mutation is applied only after its own API call has succeeded, and
// only if no logout happened in the meantime.
type Admin struct {
	client client.Client
	store  session.Store
	log    logging.Logger
	hc     *http.Client

	mu    sync.RWMutex
	state State
	user  *models.AuthUser
	data  content
	// gen is bumped by every logout; responses that started in an older
	// generation are dropped.
	gen uint64

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int

	// notifyMu keeps notifications in mutation order.
	notifyMu sync.Mutex

	bg sync.WaitGroup
	// reconcileTimeout bounds each background server call.
	reconcileTimeout time.Duration
}

// DefaultReconcileTimeout is how long a background update may take before
// it is abandoned and rolled back.
const DefaultReconcileTimeout = 15 * time.Second

type Option func(*Admin)

// WithReconcileTimeout overrides DefaultReconcileTimeout.
func WithReconcileTimeout(d time.Duration) Option {
	return func(a *Admin) { a.reconcileTimeout = d }
}

// WithHTTPClient sets the client used for presigned image uploads.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Admin) { a.hc = hc }
}

func NewAdmin(c client.Client, store session.Store, log logging.Logger, opts ...Option) *Admin {
	a := &Admin{
		client: c,
		store:  store,
		log:    log.With("module", "admin"),
		subs:   make(map[int]func(Snapshot)),

		reconcileTimeout: DefaultReconcileTimeout,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Admin) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshotLocked()
}

func (a *Admin) snapshotLocked() Snapshot {
	s := Snapshot{
		State:       a.state,
		Educations:  slices.Clone(a.data.educations),
		Skills:      slices.Clone(a.data.skills),
		Projects:    cloneProjects(a.data.projects),
		Experiences: slices.Clone(a.data.experiences),
		SocialLinks: slices.Clone(a.data.socialLinks),
		Messages:    slices.Clone(a.data.messages),
	}
	if a.user != nil {
		u := *a.user
		s.User = &u
	}
	if a.data.profile != nil {
		p := *a.data.profile
		s.Profile = &p
	}
	return s
}

func (a *Admin) Authenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state == StateAuthenticated
}

// Subscribe registers fn to receive a Snapshot after every state change.
// fn runs on the goroutine that made the change and must not call mutating
// methods of the container. The returned function unsubscribes.
func (a *Admin) Subscribe(fn func(Snapshot)) (cancel func()) {
	a.subMu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.subMu.Lock()
			delete(a.subs, id)
			a.subMu.Unlock()
		})
	}
}

// Wait blocks until background read-flag reconciliations have finished.
func (a *Admin) Wait() {
	a.bg.Wait()
}

func (a *Admin) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// generation returns the current logout generation.
func (a *Admin) generation() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.gen
}

// apply runs fn under the write lock if no logout happened since gen, then
// notifies subscribers. It reports whether fn ran.
func (a *Admin) apply(gen uint64, fn func()) bool {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	if a.gen != gen {
		a.mu.Unlock()
		return false
	}
	fn()
	snap := a.snapshotLocked()
	a.mu.Unlock()

	a.publish(snap)
	return true
}

func (a *Admin) publish(snap Snapshot) {
	a.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func cloneProjects(s []models.Project) []models.Project {
	out := slices.Clone(s)
	for i := range out {
		out[i] = cloneProject(out[i])
	}
	return out
}

func cloneProject(p models.Project) models.Project {
	p.Technologies = slices.Clone(p.Technologies)
	if p.GithubURL != nil {
		v := *p.GithubURL
		p.GithubURL = &v
	}
	if p.DemoURL != nil {
		v := *p.DemoURL
		p.DemoURL = &v
	}
	return p
}
