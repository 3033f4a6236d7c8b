package store

import (
	"fmt"
	"strings"

	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Store) GetUser(find *model.FindUser) (*model.User, error) {
	if find.ID != nil {
		if cache, ok := s.UserCache.Load(*find.ID); ok {
			return cache.(*model.User), nil
		}
	}

	list, err := s.ListUsers(find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	user := list[0]
	s.UserCache.Store(user.ID, user)
	return user, nil
}

func (s *Store) ListUsers(find *model.FindUser) ([]*model.User, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = ?"), append(args, *v)
	}
	if v := find.Email; v != nil {
		where, args = append(where, "email = ?"), append(args, *v)
	}
	if v := find.Role; v != nil {
		where, args = append(where, "role = ?"), append(args, *v)
	}

	// Here will return password_hash, so need to be careful
	// If need to response to client, need to remove password_hash
	// Use response.UserResponse to remove password_hash
	query := `
		SELECT
			id,
			email,
			role,
			nickname,
			password_hash,
			created_ts,
			updated_ts,
			last_login_ts
		FROM user
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_ts DESC`
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Debug("Error querying users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.User, 0)
	for rows.Next() {
		var user model.User
		// The ordering of query results should be consistent with query var
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Role,
			&user.Nickname,
			&user.PasswordHash,
			&user.CreatedTs,
			&user.UpdatedTs,
			&user.LastLoginTs,
		); err != nil {
			return nil, err
		}
		list = append(list, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *Store) SetLastLogin(userID int32) error {
	query := `UPDATE user SET last_login_ts = strftime('%s', 'now') WHERE id = ?`
	if _, err := s.db.Exec(query, userID); err != nil {
		return errors.Wrap(err, "store: unable to update last login date")
	}
	return nil
}

func (s *Store) CreateUser(create *model.User) (*model.User, error) {
	stmt := `
		INSERT INTO user (email, nickname, password_hash, role)
		VALUES (?, ?, ?, ?)
		RETURNING id, email, role, nickname, created_ts, updated_ts, last_login_ts`
	args := []any{create.Email, create.Nickname, create.PasswordHash, create.Role}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var user model.User
	if err := tx.QueryRow(stmt, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.Nickname,
		&user.CreatedTs,
		&user.UpdatedTs,
		&user.LastLoginTs,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	user.PasswordHash = create.PasswordHash
	return &user, nil
}
