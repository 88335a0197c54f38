// Package session is the single source of truth for "who is logged in". It
// owns the persisted credential's lifecycle and broadcasts state snapshots to
// every consumer; nothing else in the client may mutate authentication state.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/navbug/compintel-cli/internal/client/models"
	"github.com/navbug/compintel-cli/internal/client/repositories/credential"
	"github.com/navbug/compintel-cli/internal/logging"
)

// ErrSuperseded is returned when an operation resolved after a logout ended
// the session it started under. The network call may well have succeeded;
// its result is discarded so an explicitly ended session cannot come back.
var ErrSuperseded = errors.New("session ended before the operation resolved")

// api is the slice of the Gateway the session store needs.
type api interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// State is a read-only snapshot of the session. User is a copy; mutating it
// has no effect on the store.
type State struct {
	User          *models.UserProfile
	Authenticated bool
	// Loading is true only until the initial Bootstrap finishes. It flips to
	// false exactly once per process lifetime, success or not.
	Loading bool
}

// Store is the observable session container.
//
// Lifecycle: the store starts in its bootstrapping state (Loading=true) and
// leaves it exactly once, via Bootstrap. From then on it moves between
// anonymous and authenticated through Login/Register/Logout, plus the forced
// logout driven by the Gateway's 401 handling.
type Store struct {
	gw    api
	creds credential.Store
	log   logging.Logger

	bootstrapOnce sync.Once

	mu    sync.Mutex
	state State
	// epoch counts explicit session endings. Async operations capture it
	// before going to the network and discard their result if it moved on,
	// so a late login response cannot resurrect a session the user ended.
	epoch uint64

	subs    map[uint64]func(State)
	nextSub uint64
}

// New creates a Store in its bootstrapping state.
func New(gw api, creds credential.Store, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		gw:    gw,
		creds: creds,
		log:   log,
		state: State{Loading: true},
		subs:  make(map[uint64]func(State)),
	}
}

// Snapshot returns the current state. The contained user is a copy.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to be called synchronously with a fresh snapshot on
// every state change. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Bootstrap restores the session from the persisted credential. It runs at
// most once; later calls are no-ops.
//
// All failures are swallowed: a broken token, an unreachable backend and a
// missing credential all end the same way, anonymous with a clean store.
// Loading resolves to false unconditionally.
func (s *Store) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() { s.bootstrap(ctx) })
}

func (s *Store) bootstrap(ctx context.Context) {
	defer s.finishLoading()

	token, err := s.creds.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read persisted credential", "error", err)
		return
	}
	if token == "" {
		// Nothing persisted; land on the login screen without a network call.
		return
	}

	epoch := s.currentEpoch()

	var resp struct {
		Data models.UserProfile `json:"data"`
	}
	if err := s.gw.Get(ctx, "/auth/me", &resp); err != nil {
		// Deliberately silent: at startup a dead network and a revoked token
		// are treated alike. The credential goes away either way.
		s.log.Warn(ctx, "identity check failed during bootstrap", "error", err)
		if err := s.creds.Delete(ctx); err != nil {
			s.log.Error(ctx, "failed to clear credential after bootstrap failure", "error", err)
		}
		return
	}

	s.commit(epoch, func(st *State) {
		user := resp.Data
		st.User = &user
		st.Authenticated = true
	})
}

// finishLoading flips Loading to false. It runs exactly once, from bootstrap.
func (s *Store) finishLoading() {
	s.mu.Lock()
	s.state.Loading = false
	snap := s.state.clone()
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs, snap)
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. On success the returned token is
// persisted and the session becomes authenticated; the full payload is
// returned so the caller can chain UI work. On failure nothing changes and
// the error propagates untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return s.authenticate(ctx, "/auth/login", credentialsRequest{Email: email, Password: password})
}

// Register creates an account. Contract is identical to Login.
func (s *Store) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	return s.authenticate(ctx, "/auth/register", credentialsRequest{Name: name, Email: email, Password: password})
}

func (s *Store) authenticate(ctx context.Context, path string, req credentialsRequest) (*models.AuthResponse, error) {
	epoch := s.currentEpoch()

	var resp models.AuthResponse
	if err := s.gw.Post(ctx, path, req, &resp); err != nil {
		return nil, err
	}

	if err := s.creds.Set(ctx, resp.Token); err != nil {
		// The backend accepted us but the token cannot be kept; fail the
		// operation rather than claim an authentication that would not
		// survive a restart.
		return nil, err
	}

	ok := s.commit(epoch, func(st *State) {
		user := resp.User
		st.User = &user
		st.Authenticated = true
	})
	if !ok {
		// A logout won the race. Whichever order the credential writes
		// landed in, make sure the store ends empty.
		if err := s.creds.Delete(ctx); err != nil {
			s.log.Error(ctx, "failed to discard superseded credential", "error", err)
		}
		return nil, ErrSuperseded
	}

	return &resp, nil
}

// Logout ends the session locally: the persisted credential is removed and
// the state resets to anonymous. It never calls the network and is
// idempotent. Any in-flight Login/Bootstrap/UpdatePreferences started before
// this call will find its epoch stale and discard its result.
func (s *Store) Logout() {
	if err := s.creds.Delete(context.Background()); err != nil {
		s.log.Error(context.Background(), "failed to delete credential on logout", "error", err)
	}

	s.mu.Lock()
	s.epoch++
	changed := s.state.User != nil || s.state.Authenticated
	s.state.User = nil
	s.state.Authenticated = false
	snap := s.state.clone()
	subs := s.subscribers()
	s.mu.Unlock()

	if changed {
		notify(subs, snap)
	}
}

// UpdatePreferences sends the full preferences object to the backend and, on
// success, replaces the user snapshot with the server's authoritative
// response. On failure local state is unchanged and the error propagates.
func (s *Store) UpdatePreferences(ctx context.Context, prefs models.Preferences) (*models.UserProfile, error) {
	epoch := s.currentEpoch()

	var resp struct {
		Data models.UserProfile `json:"data"`
	}
	if err := s.gw.Put(ctx, "/auth/preferences", prefs, &resp); err != nil {
		return nil, err
	}

	if ok := s.commit(epoch, func(st *State) {
		// Never materialize a user on an anonymous session; preferences can
		// only refresh an identity that already exists.
		if !st.Authenticated {
			return
		}
		user := resp.Data
		st.User = &user
	}); !ok {
		return nil, ErrSuperseded
	}

	user := resp.Data
	return &user, nil
}

func (s *Store) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// commit applies mutate to the state if epoch is still current and reports
// whether it did. Subscribers are notified outside the lock.
func (s *Store) commit(epoch uint64, mutate func(*State)) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return false
	}
	mutate(&s.state)
	snap := s.state.clone()
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs, snap)
	return true
}

// subscribers returns the current callbacks; call with mu held.
func (s *Store) subscribers() []func(State) {
	out := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(State), snap State) {
	for _, fn := range subs {
		fn(snap)
	}
}

func (st State) clone() State {
	out := st
	if st.User != nil {
		user := *st.User
		out.User = &user
	}
	return out
}
