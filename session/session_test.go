package session

import (
	"context"
	"testing"

	"github.com/bookly/bookly/config"
	"github.com/bookly/bookly/log"
	"github.com/pkg/errors"
)

func init() {
	config.Opts = config.GetDefaultOptions()
	log.Logger = log.NewLogger()
}

type fakeProvider struct {
	signInCalls  int
	signUpCalls  int
	signOutCalls int

	signInErr error
	signUpErr error
	profile   *Profile
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*Profile, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	if f.profile != nil {
		return f.profile, nil
	}
	return &Profile{Email: email}, nil
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string) error {
	f.signUpCalls++
	return f.signUpErr
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.signOutCalls++
	return nil
}

func newTestMachine(p Provider) *Machine {
	return NewMachine(p, "admin@bookly.com", "admin123")
}

func TestInitialStateIsLoading(t *testing.T) {
	m := newTestMachine(&fakeProvider{})
	if m.State().Kind != StateLoading {
		t.Fatalf("Expected loading state, got %v", m.State().Kind)
	}
}

func TestSessionReportResolvesLoading(t *testing.T) {
	ctx := context.Background()

	m := newTestMachine(&fakeProvider{})
	if _, err := m.Apply(ctx, EventSessionReport{}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != StateUnauthenticated {
		t.Fatalf("Expected unauthenticated after empty report, got %v", m.State().Kind)
	}

	profile := &Profile{Email: "reader@example.com"}
	if _, err := m.Apply(ctx, EventSessionReport{Profile: profile}); err != nil {
		t.Fatal(err)
	}
	state := m.State()
	if state.Kind != StateUser {
		t.Fatalf("Expected user state, got %v", state.Kind)
	}
	if state.Profile.Email != "reader@example.com" {
		t.Fatalf("Unexpected profile email %q", state.Profile.Email)
	}
}

func TestSessionReportDoesNotEndAdminMode(t *testing.T) {
	ctx := context.Background()

	m := newTestMachine(&fakeProvider{})
	if _, err := m.Apply(ctx, EventAdminLogin{Email: "admin@bookly.com", Password: "admin123"}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Apply(ctx, EventSessionReport{}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != StateAdmin {
		t.Fatalf("Empty session report should not end admin mode, got %v", m.State().Kind)
	}
}

func TestSignInEmptyFieldsMakesNoProviderCall(t *testing.T) {
	provider := &fakeProvider{}
	m := newTestMachine(provider)

	_, err := m.Apply(context.Background(), EventSignIn{Email: "", Password: "secret"})
	if !errors.Is(err, ErrFillAllFields) {
		t.Fatalf("Expected ErrFillAllFields, got %v", err)
	}
	if provider.signInCalls != 0 {
		t.Fatalf("Expected no provider call, got %d", provider.signInCalls)
	}
	if m.Err() != ErrFillAllFields.Error() {
		t.Fatalf("Unexpected error message %q", m.Err())
	}
}

func TestSignInSuccess(t *testing.T) {
	provider := &fakeProvider{profile: &Profile{Email: "reader@example.com", Nickname: "reader"}}
	m := newTestMachine(provider)

	cmd, err := m.Apply(context.Background(), EventSignIn{Email: "reader@example.com", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd != CommandNone {
		t.Fatalf("Unexpected command %v", cmd)
	}
	if m.State().Kind != StateUser {
		t.Fatalf("Expected user state, got %v", m.State().Kind)
	}
	if m.State().Profile.Nickname != "reader" {
		t.Fatalf("Unexpected nickname %q", m.State().Profile.Nickname)
	}
}

func TestSignInFailureKeepsState(t *testing.T) {
	provider := &fakeProvider{signInErr: errors.New("invalid credentials")}
	m := newTestMachine(provider)
	m.Apply(context.Background(), EventSessionReport{})

	_, err := m.Apply(context.Background(), EventSignIn{Email: "reader@example.com", Password: "wrong"})
	if err == nil {
		t.Fatal("Expected sign in error")
	}
	if m.State().Kind != StateUnauthenticated {
		t.Fatalf("Failed sign in must not change state, got %v", m.State().Kind)
	}
	if m.Err() != "invalid credentials" {
		t.Fatalf("Expected provider message to surface, got %q", m.Err())
	}
}

func TestSignUpSuccessStaysUnauthenticated(t *testing.T) {
	provider := &fakeProvider{}
	m := newTestMachine(provider)
	m.Apply(context.Background(), EventSessionReport{})

	if _, err := m.Apply(context.Background(), EventSignUp{Email: "new@example.com", Password: "secret"}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != StateUnauthenticated {
		t.Fatalf("Sign up must not create a session, got %v", m.State().Kind)
	}
	if m.Notice() != SignedUpNotice {
		t.Fatalf("Expected signed up notice, got %q", m.Notice())
	}
	if provider.signUpCalls != 1 {
		t.Fatalf("Expected one sign up call, got %d", provider.signUpCalls)
	}
}

func TestAdminLoginExactMatchOnly(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong email", "admin@example.com", "admin123"},
		{"wrong password", "admin@bookly.com", "Admin123"},
		{"case differs", "Admin@bookly.com", "admin123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{}
			m := newTestMachine(provider)
			m.Apply(context.Background(), EventSessionReport{})

			_, err := m.Apply(context.Background(), EventAdminLogin{Email: tc.email, Password: tc.password})
			if !errors.Is(err, ErrInvalidAdminCredentials) {
				t.Fatalf("Expected ErrInvalidAdminCredentials, got %v", err)
			}
			if m.State().Kind != StateUnauthenticated {
				t.Fatalf("Failed admin login must not change state, got %v", m.State().Kind)
			}
			if provider.signInCalls != 0 {
				t.Fatal("Admin login must never reach the provider")
			}
		})
	}
}

func TestAdminLoginIssuesOneCatalogFetch(t *testing.T) {
	provider := &fakeProvider{}
	m := newTestMachine(provider)
	m.Apply(context.Background(), EventSessionReport{})

	cmd, err := m.Apply(context.Background(), EventAdminLogin{Email: "admin@bookly.com", Password: "admin123"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd != CommandFetchCatalog {
		t.Fatalf("Expected catalog fetch command, got %v", cmd)
	}
	if m.State().Kind != StateAdmin {
		t.Fatalf("Expected admin state, got %v", m.State().Kind)
	}
	if provider.signInCalls != 0 {
		t.Fatal("Admin login must never reach the provider")
	}
}

func TestLogoutFromUserCallsProvider(t *testing.T) {
	provider := &fakeProvider{}
	m := newTestMachine(provider)
	m.Apply(context.Background(), EventSessionReport{Profile: &Profile{Email: "reader@example.com"}})

	if _, err := m.Apply(context.Background(), EventLogout{}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != StateUnauthenticated {
		t.Fatalf("Expected unauthenticated after logout, got %v", m.State().Kind)
	}
	if provider.signOutCalls != 1 {
		t.Fatalf("Expected one provider sign out, got %d", provider.signOutCalls)
	}
}

func TestLogoutFromAdminIsLocal(t *testing.T) {
	provider := &fakeProvider{}
	m := newTestMachine(provider)
	m.Apply(context.Background(), EventAdminLogin{Email: "admin@bookly.com", Password: "admin123"})

	if _, err := m.Apply(context.Background(), EventLogout{}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != StateUnauthenticated {
		t.Fatalf("Expected unauthenticated after admin logout, got %v", m.State().Kind)
	}
	if provider.signOutCalls != 0 {
		t.Fatal("Admin logout must not reach the provider")
	}
}
