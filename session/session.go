package session // import "github.com/bookly/bookly/session"

import (
	"context"

	"github.com/bookly/bookly/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StateKind is the set of mutually exclusive UI modes. Exactly one is
// active at any time.
type StateKind int

const (
	// StateLoading is the initial mode, held until the authentication
	// provider delivers its first session report.
	StateLoading StateKind = iota
	StateUnauthenticated
	StateUser
	StateAdmin
)

func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	}
	return "unknown"
}

// Profile is the minimal identity of a signed-in user. Admin sessions
// carry no profile, admin identity is binary.
type Profile struct {
	Email    string
	Nickname string
}

type State struct {
	Kind    StateKind
	Profile *Profile
}

// Provider is the authentication provider the machine delegates user
// sessions to. Admin mode never touches it.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Profile, error)
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
}

// Command tells the caller which side effect entering a state demands.
type Command int

const (
	CommandNone Command = iota
	// CommandFetchCatalog is issued when the admin dashboard is entered,
	// which immediately lists the catalog.
	CommandFetchCatalog
)

// Event is a typed input to the reducer.
type Event interface {
	isEvent()
}

// EventSessionReport is the provider's session-status report. The first
// one moves the machine out of Loading; later ones track external
// session changes.
type EventSessionReport struct {
	Profile *Profile
}

type EventSignIn struct {
	Email    string
	Password string
}

type EventSignUp struct {
	Email    string
	Password string
}

// EventAdminLogin is checked locally against the two fixed reference
// values, never against the provider.
type EventAdminLogin struct {
	Email    string
	Password string
}

type EventLogout struct{}

func (EventSessionReport) isEvent() {}
func (EventSignIn) isEvent()        {}
func (EventSignUp) isEvent()        {}
func (EventAdminLogin) isEvent()    {}
func (EventLogout) isEvent()        {}

var (
	// ErrFillAllFields blocks submission before any network call.
	ErrFillAllFields = errors.New("session: please fill in all fields")
	// ErrInvalidAdminCredentials deliberately does not say which field
	// was wrong.
	ErrInvalidAdminCredentials = errors.New("session: invalid admin credentials")
)

// SignedUpNotice is recorded after successful account creation; the
// machine stays unauthenticated until the user signs in explicitly.
const SignedUpNotice = "Account created. Please sign in."

// Machine drives the screen modes. It is single-threaded by design:
// every call runs on the one event loop, reentrancy is handled by the
// busy flag which makes triggers inert while a call is in flight.
type Machine struct {
	provider Provider

	adminEmail    string
	adminPassword string

	state  State
	notice string
	errMsg string
	busy   bool
}

func NewMachine(provider Provider, adminEmail, adminPassword string) *Machine {
	return &Machine{
		provider:      provider,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		state:         State{Kind: StateLoading},
	}
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Notice() string { return m.notice }
func (m *Machine) Err() string    { return m.errMsg }
func (m *Machine) Busy() bool     { return m.busy }

// Apply is the single reducer. It consumes one typed event, performs the
// provider call the event demands, and returns the follow-up command for
// the caller. While a call is in flight further triggers are inert.
func (m *Machine) Apply(ctx context.Context, event Event) (Command, error) {
	switch e := event.(type) {
	case EventSessionReport:
		return m.applySessionReport(e)
	case EventSignIn:
		return m.applySignIn(ctx, e)
	case EventSignUp:
		return m.applySignUp(ctx, e)
	case EventAdminLogin:
		return m.applyAdminLogin(e)
	case EventLogout:
		return m.applyLogout(ctx)
	}
	return CommandNone, nil
}

func (m *Machine) applySessionReport(e EventSessionReport) (Command, error) {
	if e.Profile != nil {
		m.state = State{Kind: StateUser, Profile: e.Profile}
	} else if m.state.Kind != StateAdmin {
		// Admin mode is not provider-backed, a nil report must not end it.
		m.state = State{Kind: StateUnauthenticated}
	}
	log.Debug("Session report applied", zap.String("state", m.state.Kind.String()))
	return CommandNone, nil
}

func (m *Machine) applySignIn(ctx context.Context, e EventSignIn) (Command, error) {
	if m.busy {
		return CommandNone, nil
	}
	if e.Email == "" || e.Password == "" {
		m.errMsg = ErrFillAllFields.Error()
		return CommandNone, ErrFillAllFields
	}

	m.busy = true
	defer func() { m.busy = false }()

	profile, err := m.provider.SignIn(ctx, e.Email, e.Password)
	if err != nil {
		// The provider's message is surfaced verbatim, the state stays.
		m.errMsg = err.Error()
		return CommandNone, err
	}

	m.state = State{Kind: StateUser, Profile: profile}
	m.notice = ""
	m.errMsg = ""
	return CommandNone, nil
}

func (m *Machine) applySignUp(ctx context.Context, e EventSignUp) (Command, error) {
	if m.busy {
		return CommandNone, nil
	}
	if e.Email == "" || e.Password == "" {
		m.errMsg = ErrFillAllFields.Error()
		return CommandNone, ErrFillAllFields
	}

	m.busy = true
	defer func() { m.busy = false }()

	if err := m.provider.SignUp(ctx, e.Email, e.Password); err != nil {
		m.errMsg = err.Error()
		return CommandNone, err
	}

	// Account creation succeeded but no session exists yet: stay on the
	// login form with an informational message.
	m.state = State{Kind: StateUnauthenticated}
	m.notice = SignedUpNotice
	m.errMsg = ""
	return CommandNone, nil
}

func (m *Machine) applyAdminLogin(e EventAdminLogin) (Command, error) {
	if e.Email == "" || e.Password == "" {
		m.errMsg = ErrFillAllFields.Error()
		return CommandNone, ErrFillAllFields
	}
	if e.Email != m.adminEmail || e.Password != m.adminPassword {
		m.errMsg = ErrInvalidAdminCredentials.Error()
		return CommandNone, ErrInvalidAdminCredentials
	}

	m.state = State{Kind: StateAdmin}
	m.notice = ""
	m.errMsg = ""
	// Entering the dashboard lists the catalog right away.
	return CommandFetchCatalog, nil
}

func (m *Machine) applyLogout(ctx context.Context) (Command, error) {
	switch m.state.Kind {
	case StateUser:
		if m.busy {
			return CommandNone, nil
		}
		m.busy = true
		defer func() { m.busy = false }()
		if err := m.provider.SignOut(ctx); err != nil {
			log.Warn("Provider sign out failed", zap.Error(err))
		}
		m.state = State{Kind: StateUnauthenticated}
	case StateAdmin:
		// Admin logout is purely local, the provider never knew about it.
		m.state = State{Kind: StateUnauthenticated}
	}
	m.notice = ""
	m.errMsg = ""
	return CommandNone, nil
}
