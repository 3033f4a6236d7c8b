package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookly/bookly/api/auth"
	"github.com/bookly/bookly/config"
	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/bookly/bookly/session"
)

func init() {
	config.Opts = config.GetDefaultOptions()
	log.Logger = log.NewLogger()
}

var _ session.Provider = (*AuthProvider)(nil)

func TestMachineSignInThroughClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/signin":
			var req model.UserSigninRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatal(err)
			}
			if req.Password != "secret1" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error_message": "Invalid password"})
				return
			}
			http.SetCookie(w, &http.Cookie{Name: auth.AccessTokenCookieName, Value: "test-token"})
			json.NewEncoder(w).Encode(&model.User{Email: req.Email, Nickname: "reader"})
		case "/api/signout":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("Unexpected request %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	provider := NewAuthProvider(New(WithBaseURL(srv.URL)))
	m := session.NewMachine(provider, "admin@bookly.com", "admin123")
	m.Apply(context.Background(), session.EventSessionReport{})

	// A rejected password surfaces the service message and keeps the state.
	_, err := m.Apply(context.Background(), session.EventSignIn{Email: "reader@example.com", Password: "wrong"})
	if err == nil {
		t.Fatal("Expected sign in error")
	}
	if m.State().Kind != session.StateUnauthenticated {
		t.Fatalf("Failed sign in must not change state, got %v", m.State().Kind)
	}
	if m.Err() != "Invalid password" {
		t.Fatalf("Expected service message to surface, got %q", m.Err())
	}

	if _, err := m.Apply(context.Background(), session.EventSignIn{Email: "reader@example.com", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	state := m.State()
	if state.Kind != session.StateUser {
		t.Fatalf("Expected user state, got %v", state.Kind)
	}
	if state.Profile.Email != "reader@example.com" || state.Profile.Nickname != "reader" {
		t.Fatalf("Unexpected profile %+v", state.Profile)
	}

	if _, err := m.Apply(context.Background(), session.EventLogout{}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != session.StateUnauthenticated {
		t.Fatalf("Expected unauthenticated after logout, got %v", m.State().Kind)
	}
}

func TestMachineSignUpThroughClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/signup" {
			t.Fatalf("Unexpected request %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&model.User{Email: "new@example.com"})
	}))
	defer srv.Close()

	provider := NewAuthProvider(New(WithBaseURL(srv.URL)))
	m := session.NewMachine(provider, "admin@bookly.com", "admin123")
	m.Apply(context.Background(), session.EventSessionReport{})

	if _, err := m.Apply(context.Background(), session.EventSignUp{Email: "new@example.com", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	if m.State().Kind != session.StateUnauthenticated {
		t.Fatalf("Sign up must not create a session, got %v", m.State().Kind)
	}
	if m.Notice() != session.SignedUpNotice {
		t.Fatalf("Expected signed up notice, got %q", m.Notice())
	}
}
