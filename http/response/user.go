package response

import (
	"github.com/bookly/bookly/model"
)

// UserResponse strips the password hash before a user leaves the server.
func UserResponse(user *model.User) *model.User {
	return &model.User{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Nickname:    user.Nickname,
		CreatedTs:   user.CreatedTs,
		UpdatedTs:   user.UpdatedTs,
		LastLoginTs: user.LastLoginTs,
	}
}

func UserListResponse(users []*model.User) []*model.User {
	var response []*model.User
	for _, user := range users {
		response = append(response, UserResponse(user))
	}
	return response
}
