package validator // import "github.com/bookly/bookly/validator"

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/bookly/bookly/model"
	"github.com/bookly/bookly/store"
)

var emailMatcher = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateSignupRequest(s *store.Store, user *model.UserSignupRequest) error {
	if user == nil {
		return errors.New("user is nil")
	}
	if user.Email == "" {
		return errors.New("email is empty")
	}
	if !emailMatcher.MatchString(user.Email) {
		return errors.New("email is invalid")
	}
	if user.Password == "" {
		return errors.New("password is empty")
	}
	if err := validatePassword(user.Password); err != nil {
		return err
	}
	if existing, _ := s.GetUser(&model.FindUser{Email: &user.Email}); existing != nil {
		return errors.New("Email already registered")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password is too short")
	}
	return nil
}
