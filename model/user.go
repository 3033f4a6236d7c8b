package model

// Role is the type of a role.
type Role string

const (
	// RoleAdmin is the ADMIN role.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the USER role.
	RoleUser Role = "USER"
)

func (e Role) String() string {
	switch e {
	case RoleAdmin:
		return "ADMIN"
	case RoleUser:
		return "USER"
	}
	return "USER"
}

type User struct {
	ID int32 `json:"id"`

	CreatedTs int64 `json:"created_ts"`
	UpdatedTs int64 `json:"updated_ts"`

	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Nickname     string `json:"nickname"`
	PasswordHash string `json:"password_hash"`
	LastLoginTs  int64  `json:"last_login_ts"`
}

type FindUser struct {
	ID    *int32  `json:"id"`
	Email *string `json:"email"`
	Role  *Role   `json:"role"`

	// The maximum number of users to return.
	Limit *int
}

type UserSignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type UserSigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// NeverExpire requests a token without expiry time.
	NeverExpire bool `json:"never_expire"`
}
