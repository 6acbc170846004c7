// Package session holds the process-wide authentication state: who is
// logged in, whether an auth operation is in flight, and the last failure
// message. The Store is the only writer of the persisted token; views read
// state through Snapshot or Subscribe and mutate it only through the
// Restore/Signup/Login/Logout operations.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/employee-tracker/gateway"
	"github.com/jrsteele09/employee-tracker/identity"
	"github.com/jrsteele09/employee-tracker/tokenstore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	signupFallbackMsg = "Signup failed"
	loginFallbackMsg  = "Login failed"
)

// Gateway is the subset of the API gateway client the store depends on.
type Gateway interface {
	Signup(ctx context.Context, registration identity.Registration) (*gateway.SignupResult, error)
	Login(ctx context.Context, credentials identity.Credentials) (*gateway.LoginResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*identity.User, error)
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	User    *identity.User
	Loading bool
	Err     string
}

// Authenticated reports whether a user is logged in.
func (s Snapshot) Authenticated() bool {
	return s.User != nil
}

// Store is the session store. One auth operation may be outstanding at a
// time; starting a second one fails with OperationInFlightErr.
type Store struct {
	gateway Gateway
	tokens  tokenstore.Repo
	log     zerolog.Logger
	nowTime func() time.Time

	lock    sync.RWMutex
	user    *identity.User
	loading bool
	lastErr string

	subLock     sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// Option defines a function type to modify the Store instance.
type Option func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// WithLogger sets the logger for silently handled failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a session store over the given gateway and token repo.
func NewStore(gw Gateway, tokens tokenstore.Repo, options ...Option) (*Store, error) {
	if gw == nil {
		return nil, errors.New("[NewStore] gateway is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewStore] token repo is required")
	}

	store := &Store{
		gateway:     gw,
		tokens:      tokens,
		log:         zerolog.Nop(),
		nowTime:     time.Now,
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range options {
		opt(store)
	}
	return store, nil
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Snapshot{User: s.user, Loading: s.loading, Err: s.lastErr}
}

// Authenticated reports whether a user is currently logged in.
func (s *Store) Authenticated() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.user != nil
}

// Subscribe registers fn to be called with a snapshot after every settled
// state change. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subLock.Lock()
	defer s.subLock.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subLock.Lock()
		defer s.subLock.Unlock()
		delete(s.subscribers, id)
	}
}

// Restore re-establishes a session from a previously persisted token. It is
// called once at startup. No persisted token means no network call. Any
// failure clears the token and lands in the anonymous state: this is a
// silent background check, so failures are logged, never surfaced.
func (s *Store) Restore(ctx context.Context) error {
	if err := s.begin(true); err != nil {
		return err
	}

	token, err := s.tokens.Get()
	if errors.Is(err, tokenstore.TokenNotFoundErr) {
		s.settle(func() { s.user = nil })
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("restore: token store read failed")
		s.deleteToken()
		s.settle(func() { s.user = nil })
		return nil
	}

	if expiry, expErr := TokenExpiry(token); expErr == nil && expiry.Before(s.nowTime()) {
		s.log.Warn().Time("expired_at", expiry).Msg("restore: persisted token already expired")
	}

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("restore: auth check failed")
		s.deleteToken()
		s.settle(func() { s.user = nil })
		return nil
	}

	s.settle(func() { s.user = user })
	return nil
}

// Signup registers a new account. When the backend returns a session token
// it is persisted and the user becomes authenticated; without one (email
// confirmation flows) the user stays anonymous. The raw result is returned
// for view-level messaging, and failures are both recorded in state and
// returned.
func (s *Store) Signup(ctx context.Context, registration identity.Registration) (*gateway.SignupResult, error) {
	if err := registration.Validate(); err != nil {
		s.recordErr(err.Error())
		return nil, err
	}

	if err := s.begin(true); err != nil {
		return nil, err
	}

	result, err := s.gateway.Signup(ctx, registration)
	if err != nil {
		msg := extractMessage(err, signupFallbackMsg)
		s.settle(func() { s.lastErr = msg })
		return nil, errors.Wrap(err, "[Store.Signup] gateway.Signup")
	}

	if result.SessionToken == "" {
		s.settle(func() {})
		return result, nil
	}

	if err := s.tokens.Set(result.SessionToken); err != nil {
		s.settle(func() { s.lastErr = signupFallbackMsg })
		return nil, errors.Wrap(err, "[Store.Signup] persist token")
	}

	s.settle(func() { s.user = result.User })
	return result, nil
}

// Login authenticates with the given credentials. The response must carry
// the nested access token before anything is persisted or the user is
// considered authenticated.
func (s *Store) Login(ctx context.Context, credentials identity.Credentials) (*gateway.LoginResult, error) {
	if err := credentials.Validate(); err != nil {
		s.recordErr(err.Error())
		return nil, err
	}

	if err := s.begin(true); err != nil {
		return nil, err
	}

	result, err := s.gateway.Login(ctx, credentials)
	if err != nil {
		msg := extractMessage(err, loginFallbackMsg)
		s.settle(func() { s.lastErr = msg })
		return nil, errors.Wrap(err, "[Store.Login] gateway.Login")
	}

	if result.Token == nil || result.Token.AccessToken == "" {
		s.settle(func() {})
		return result, nil
	}

	if err := s.tokens.Set(result.Token.AccessToken); err != nil {
		s.settle(func() { s.lastErr = loginFallbackMsg })
		return nil, errors.Wrap(err, "[Store.Login] persist token")
	}

	s.settle(func() { s.user = result.User })
	return result, nil
}

// Logout de-authenticates. The remote call is best effort: whether or not
// the backend can be reached, the persisted token is deleted and the local
// state becomes anonymous. Calling Logout when already anonymous is safe.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.begin(false); err != nil {
		return err
	}

	if err := s.gateway.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("logout: remote call failed, clearing local session anyway")
	}

	s.deleteToken()
	s.settle(func() { s.user = nil })
	return nil
}

// begin marks an operation as in flight. Exactly one may be outstanding.
func (s *Store) begin(clearErr bool) error {
	s.lock.Lock()
	if s.loading {
		s.lock.Unlock()
		return OperationInFlightErr
	}
	s.loading = true
	if clearErr {
		s.lastErr = ""
	}
	s.lock.Unlock()

	s.notify()
	return nil
}

// settle applies the final state mutation of an operation and clears the
// loading flag unconditionally.
func (s *Store) settle(mutate func()) {
	s.lock.Lock()
	mutate()
	s.loading = false
	s.lock.Unlock()

	s.notify()
}

func (s *Store) recordErr(msg string) {
	s.lock.Lock()
	s.lastErr = msg
	s.lock.Unlock()

	s.notify()
}

func (s *Store) deleteToken() {
	if err := s.tokens.Delete(); err != nil {
		s.log.Error().Err(err).Msg("failed to delete persisted token")
	}
}

func (s *Store) notify() {
	snapshot := s.Snapshot()

	s.subLock.Lock()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subLock.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// extractMessage pulls the human-readable message out of a backend error
// payload, falling back to the per-operation generic string for transport
// failures or unstructured responses.
func extractMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.MessageOr(fallback)
	}
	return fallback
}
