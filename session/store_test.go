package session_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/employee-tracker/gateway"
	"github.com/jrsteele09/employee-tracker/identity"
	"github.com/jrsteele09/employee-tracker/session"
	"github.com/jrsteele09/employee-tracker/tokenstore/repofakes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const (
	testEmail       = "a@b.com"
	testPassword    = "secret"
	testAccessToken = "T1"
)

type fakeGateway struct {
	signupResult *gateway.SignupResult
	signupErr    error

	loginResult *gateway.LoginResult
	loginErr    error

	logoutErr error

	currentUser      *identity.User
	currentUserErr   error
	currentUserCalls int
}

var _ session.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) Signup(ctx context.Context, registration identity.Registration) (*gateway.SignupResult, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.signupResult, nil
}

func (f *fakeGateway) Login(ctx context.Context, credentials identity.Credentials) (*gateway.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeGateway) Logout(ctx context.Context) error {
	return f.logoutErr
}

func (f *fakeGateway) CurrentUser(ctx context.Context) (*identity.User, error) {
	f.currentUserCalls++
	if f.currentUserErr != nil {
		return nil, f.currentUserErr
	}
	return f.currentUser, nil
}

type testFixture struct {
	gateway *fakeGateway
	tokens  *repofakes.FakeTokenRepo
	store   *session.Store
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	gw := &fakeGateway{}
	tokens := repofakes.NewFakeTokenRepo()

	store, err := session.NewStore(gw, tokens)
	require.NoError(t, err)

	return &testFixture{gateway: gw, tokens: tokens, store: store}
}

func loginPayload(accessToken string) *gateway.LoginResult {
	return &gateway.LoginResult{
		Message: "Login successful",
		Status:  "success",
		User:    &identity.User{ID: "user-1", Email: testEmail, FirstName: "Ann", LastName: "Lee"},
		Token:   &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"},
	}
}

func TestLoginPersistsNestedAccessToken(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginResult = loginPayload(testAccessToken)

	result, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	require.True(t, f.store.Authenticated())
	persisted, err := f.tokens.Get()
	require.NoError(t, err)
	require.Equal(t, testAccessToken, persisted)

	snapshot := f.store.Snapshot()
	require.Equal(t, "Ann", snapshot.User.FirstName)
	require.Equal(t, "Lee", snapshot.User.LastName)
	require.False(t, snapshot.Loading)
	require.Empty(t, snapshot.Err)
	require.Equal(t, "Login successful", result.Message)
}

func TestLoginWithoutNestedTokenDoesNotAuthenticate(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginResult = &gateway.LoginResult{
		Message: "Email not confirmed",
		Status:  "failed",
		Token:   nil,
	}

	result, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, result)

	require.False(t, f.store.Authenticated())
	require.False(t, f.tokens.HasToken())
	require.False(t, f.store.Snapshot().Loading)
}

func TestLoginFailureSetsBackendErrorMessage(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginErr = &gateway.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}

	_, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: "wrong"})
	require.Error(t, err)

	snapshot := f.store.Snapshot()
	require.False(t, snapshot.Authenticated())
	require.Equal(t, "Invalid credentials", snapshot.Err)
	require.False(t, snapshot.Loading)
}

func TestLoginTransportFailureFallsBackToGenericMessage(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginErr = errors.New("dial tcp: connection refused")

	_, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: testPassword})
	require.Error(t, err)

	snapshot := f.store.Snapshot()
	require.Equal(t, "Login failed", snapshot.Err)
	require.False(t, snapshot.Authenticated())
	require.False(t, snapshot.Loading)
}

func TestLoginValidationFailureSkipsNetwork(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginErr = errors.New("should never be called")

	_, err := f.store.Login(context.Background(), identity.Credentials{Email: "", Password: testPassword})
	require.ErrorIs(t, err, identity.EmailRequiredErr)
	require.False(t, f.store.Snapshot().Loading)
}

func TestSignupWithSessionTokenAuthenticates(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.signupResult = &gateway.SignupResult{
		Message:      "User created successfully",
		Status:       "success",
		User:         &identity.User{ID: "user-2", Email: testEmail, FirstName: "Ann"},
		SessionToken: testAccessToken,
	}

	result, err := f.store.Signup(context.Background(), validRegistration())
	require.NoError(t, err)
	require.Equal(t, "success", result.Status)

	require.True(t, f.store.Authenticated())
	persisted, err := f.tokens.Get()
	require.NoError(t, err)
	require.Equal(t, testAccessToken, persisted)
}

func TestSignupWithoutSessionTokenStaysAnonymous(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.signupResult = &gateway.SignupResult{
		Message: "User created successfully",
		Status:  "success",
		User:    &identity.User{ID: "user-2", Email: testEmail},
	}

	result, err := f.store.Signup(context.Background(), validRegistration())
	require.NoError(t, err)
	require.NotNil(t, result)

	require.False(t, f.store.Authenticated())
	require.False(t, f.tokens.HasToken())
}

func TestSignupFailureUsesFallbackMessage(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.signupErr = &gateway.APIError{StatusCode: http.StatusInternalServerError}

	_, err := f.store.Signup(context.Background(), validRegistration())
	require.Error(t, err)

	snapshot := f.store.Snapshot()
	require.Equal(t, "Signup failed", snapshot.Err)
	require.False(t, snapshot.Loading)
}

func TestSignupPasswordMismatchCaughtBeforeNetwork(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.signupErr = errors.New("should never be called")

	registration := validRegistration()
	registration.ConfirmPassword = "different"

	_, err := f.store.Signup(context.Background(), registration)
	require.ErrorIs(t, err, identity.PasswordMismatchErr)
	require.Equal(t, identity.PasswordMismatchErr.Error(), f.store.Snapshot().Err)
}

func TestRestoreWithoutTokenSkipsNetwork(t *testing.T) {
	f := setupTestFixture(t)

	err := f.store.Restore(context.Background())
	require.NoError(t, err)

	require.Zero(t, f.gateway.currentUserCalls)
	snapshot := f.store.Snapshot()
	require.Nil(t, snapshot.User)
	require.False(t, snapshot.Loading)
}

func TestRestoreWithValidTokenAuthenticates(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.tokens.Set(testAccessToken))
	f.gateway.currentUser = &identity.User{ID: "user-1", Email: testEmail, FirstName: "Ann", LastName: "Lee"}

	err := f.store.Restore(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, f.gateway.currentUserCalls)
	require.True(t, f.store.Authenticated())
	require.Equal(t, "Ann", f.store.Snapshot().User.FirstName)
}

func TestRestoreWithRejectedTokenClearsIt(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.tokens.Set("expired-token"))
	f.gateway.currentUserErr = &gateway.APIError{StatusCode: http.StatusUnauthorized, Message: "Authorization token required"}

	err := f.store.Restore(context.Background())
	require.NoError(t, err)

	require.False(t, f.tokens.HasToken())
	snapshot := f.store.Snapshot()
	require.Nil(t, snapshot.User)
	require.False(t, snapshot.Loading)
	require.Empty(t, snapshot.Err, "restore failures are silent")
}

func TestLogoutClearsStateEvenWhenRemoteFails(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginResult = loginPayload(testAccessToken)
	_, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.True(t, f.store.Authenticated())

	f.gateway.logoutErr = errors.New("backend unreachable")

	err = f.store.Logout(context.Background())
	require.NoError(t, err)

	require.False(t, f.store.Authenticated())
	require.False(t, f.tokens.HasToken())
	require.False(t, f.store.Snapshot().Loading)
}

func TestLogoutTwiceIsIdempotent(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.store.Logout(context.Background()))
	require.NoError(t, f.store.Logout(context.Background()))

	snapshot := f.store.Snapshot()
	require.Nil(t, snapshot.User)
	require.False(t, snapshot.Loading)
}

func TestSubscribeReceivesSettledState(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginResult = loginPayload(testAccessToken)

	var snapshots []session.Snapshot
	unsubscribe := f.store.Subscribe(func(s session.Snapshot) {
		snapshots = append(snapshots, s)
	})

	_, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	require.Len(t, snapshots, 2, "one notification on begin, one on settle")
	require.True(t, snapshots[0].Loading)
	require.False(t, snapshots[1].Loading)
	require.True(t, snapshots[1].Authenticated())

	unsubscribe()
	require.NoError(t, f.store.Logout(context.Background()))
	require.Len(t, snapshots, 2, "no notifications after unsubscribe")
}

func TestTokenStoreWriteFailureSurfacesAsLoginError(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.loginResult = loginPayload(testAccessToken)
	f.tokens.SetErr = errors.New("disk full")

	_, err := f.store.Login(context.Background(), identity.Credentials{Email: testEmail, Password: testPassword})
	require.Error(t, err)
	require.False(t, f.store.Authenticated())
	require.Equal(t, "Login failed", f.store.Snapshot().Err)
}

func TestRestoreTokenStoreReadFailureLandsAnonymous(t *testing.T) {
	f := setupTestFixture(t)
	f.tokens.GetErr = errors.New("corrupt token file")

	err := f.store.Restore(context.Background())
	require.NoError(t, err)

	require.Zero(t, f.gateway.currentUserCalls)
	require.Nil(t, f.store.Snapshot().User)
}

func validRegistration() identity.Registration {
	return identity.Registration{
		Forename:        "Ann",
		Lastname:        "Lee",
		Email:           testEmail,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	}
}

// Guards against regressions in the derived-state rule: authenticated iff a
// user is present.
func TestSnapshotAuthenticatedDerivation(t *testing.T) {
	require.False(t, session.Snapshot{}.Authenticated())
	require.True(t, session.Snapshot{User: &identity.User{ID: "u"}}.Authenticated())
}

func TestRestoreLogsButStillChecksExpiredToken(t *testing.T) {
	f := setupTestFixture(t)

	expired := expiredJWT(t)
	require.NoError(t, f.tokens.Set(expired))
	f.gateway.currentUserErr = &gateway.APIError{StatusCode: http.StatusUnauthorized, Message: "token expired"}

	require.NoError(t, f.store.Restore(context.Background()))
	require.Equal(t, 1, f.gateway.currentUserCalls, "expired token is still presented, the backend decides")
	require.False(t, f.tokens.HasToken())
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix(), "sub": "user-1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}
