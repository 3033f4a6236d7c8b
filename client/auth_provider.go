package client

import (
	"context"
	"net/http"

	"github.com/bookly/bookly/model"
	"github.com/bookly/bookly/session"
	"github.com/pkg/errors"
)

// SignIn creates a session for the given credentials. The access token
// the service sets is captured and carried on later requests.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	req := &model.UserSigninRequest{Email: email, Password: password}
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/api/signin", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignUp creates an account. No session is created, the caller signs in
// explicitly afterwards.
func (c *Client) SignUp(ctx context.Context, email, password, nickname string) (*model.User, error) {
	req := &model.UserSignupRequest{Email: email, Password: password, Nickname: nickname}
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/api/signup", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/signout", nil, nil); err != nil {
		return err
	}
	c.accessToken = ""
	return nil
}

// Session reports who the current token belongs to. A nil user with a
// nil error means there is no active session.
func (c *Client) Session(ctx context.Context) (*model.User, error) {
	if c.accessToken == "" {
		return nil, nil
	}
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/session", nil, &user); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AuthProvider narrows the client to the authentication capability the
// session machine consumes, translating users into session profiles.
type AuthProvider struct {
	client *Client
}

func NewAuthProvider(client *Client) *AuthProvider {
	return &AuthProvider{client: client}
}

func (p *AuthProvider) SignIn(ctx context.Context, email, password string) (*session.Profile, error) {
	user, err := p.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &session.Profile{Email: user.Email, Nickname: user.Nickname}, nil
}

func (p *AuthProvider) SignUp(ctx context.Context, email, password string) error {
	_, err := p.client.SignUp(ctx, email, password, "")
	return err
}

func (p *AuthProvider) SignOut(ctx context.Context) error {
	return p.client.SignOut(ctx)
}

// SessionReport fetches the current session as the profile event the
// machine's initial report consumes, nil when unauthenticated.
func (p *AuthProvider) SessionReport(ctx context.Context) (*session.Profile, error) {
	user, err := p.client.Session(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &session.Profile{Email: user.Email, Nickname: user.Nickname}, nil
}
