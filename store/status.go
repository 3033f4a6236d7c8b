package store

import (
	"github.com/bookly/bookly/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (s *Store) CreateStatusCheck(create *model.StatusCheckCreateRequest) (*model.StatusCheck, error) {
	stmt := `
		INSERT INTO status_check (id, client_name)
		VALUES (?, ?)
		RETURNING id, client_name, timestamp`

	var status model.StatusCheck
	if err := s.db.QueryRow(stmt, uuid.NewString(), create.ClientName).Scan(
		&status.ID,
		&status.ClientName,
		&status.Timestamp,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create status check")
	}

	return &status, nil
}

func (s *Store) ListStatusChecks() ([]*model.StatusCheck, error) {
	rows, err := s.db.Query("SELECT id, client_name, timestamp FROM status_check ORDER BY timestamp DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.StatusCheck, 0)
	for rows.Next() {
		var status model.StatusCheck
		if err := rows.Scan(&status.ID, &status.ClientName, &status.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, &status)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
