package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/bookly/bookly/api/auth"
	"github.com/bookly/bookly/http/request"
	"github.com/bookly/bookly/http/response"
	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/bookly/bookly/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type AuthInterceptor struct {
	store  *store.Store
	secret string
}

func NewAuthInterceptor(store *store.Store, secret string) *AuthInterceptor {
	return &AuthInterceptor{store: store, secret: secret}
}

// isPublicRoute lists the API surface reachable without a session.
// Reads of the catalog and the recommendation query are open, all
// catalog writes are admin-only.
func isPublicRoute(method, path string) bool {
	switch {
	case path == "/api/signup" || path == "/api/signin" || path == "/api/signout":
		return true
	case path == "/api/recommend" || path == "/api/status":
		return true
	case path == "/api/books" && method == http.MethodGet:
		return true
	}
	return false
}

func isAdminOnlyRoute(method, path string) bool {
	if path == "/api/books" && method == http.MethodPost {
		return true
	}
	if path == "/api/books/populate" {
		return true
	}
	if strings.HasPrefix(path, "/api/books/") && (method == http.MethodPut || method == http.MethodDelete) {
		return true
	}
	return false
}

func (m *AuthInterceptor) AuthenticationInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicRoute(r.Method, r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		clientIP := request.FindClientIP(r)
		accessToken := getAccessToken(r)

		userID, err := m.authenticate(accessToken)
		if err != nil {
			log.Debug("Failed to authenticate user",
				zap.String("client_ip", clientIP),
				zap.String("user_agent", r.UserAgent()),
				zap.Error(err),
			)
			response.Unauthorized(w, r)
			return
		}
		user, err := m.store.GetUser(&model.FindUser{ID: &userID})
		if err != nil {
			log.Error("Failed to get user",
				zap.String("client_ip", clientIP),
				zap.String("user_agent", r.UserAgent()),
				zap.Error(err),
			)
			response.ServerError(w, r, err)
			return
		}
		if user == nil {
			log.Debug("User not found",
				zap.String("client_ip", clientIP),
				zap.String("user_agent", r.UserAgent()),
				zap.Int32("user_id", userID),
			)
			response.Unauthorized(w, r)
			return
		}
		if isAdminOnlyRoute(r.Method, r.URL.Path) && user.Role != model.RoleAdmin {
			response.Unauthorized(w, r)
			return
		}

		m.store.SetLastLogin(user.ID)

		ctx := r.Context()
		ctx = context.WithValue(ctx, request.UserIDContextKey, user.ID)
		ctx = context.WithValue(ctx, request.UserEmailContextKey, user.Email)
		ctx = context.WithValue(ctx, request.UserRoleContextKey, user.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthInterceptor) authenticate(accessToken string) (int32, error) {
	if accessToken == "" {
		return 0, errors.New("no access token provided")
	}
	claims, err := auth.ParseAccessToken(accessToken, []byte(m.secret))
	if err != nil {
		return 0, err
	}

	userID, err := convertStringToInt32(claims.Subject)
	if err != nil {
		return 0, errors.New("malformed token subject")
	}
	return userID, nil
}

func getAccessToken(r *http.Request) string {
	// Check the HTTP Authorization header first
	authorizationHeaders := r.Header.Get("Authorization")
	// Check bearer token
	if authorizationHeaders != "" {
		splitToken := strings.Split(authorizationHeaders, "Bearer ")
		if len(splitToken) == 2 {
			return splitToken[1]
		}
	}

	// Check the cookie header
	var accessToken string
	for _, cookie := range r.Cookies() {
		if cookie.Name == auth.AccessTokenCookieName {
			accessToken = cookie.Value
		}
	}
	return accessToken
}
