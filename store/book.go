package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrBookNotFound is returned by update/delete when the target id is
// absent from the catalog.
var ErrBookNotFound = errors.New("store: book not found")

const bookColumns = `
		id,
		title,
		author,
		genre,
		mood_tags,
		description,
		cover_image_url,
		created_ts,
		updated_ts
`

func (s *Store) GetBook(find *model.FindBook) (*model.Book, error) {
	list, err := s.ListBooks(find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) ListBooks(find *model.FindBook) ([]*model.Book, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = ?"), append(args, *v)
	}
	if v := find.Genre; v != nil {
		where, args = append(where, "genre = ? COLLATE NOCASE"), append(args, *v)
	}

	query := `SELECT ` + bookColumns + ` FROM book WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_ts ASC, id ASC`
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Debug("Error querying books", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Genre,
			&book.MoodTags,
			&book.Description,
			&book.CoverImageURL,
			&book.CreatedTs,
			&book.UpdatedTs,
		); err != nil {
			return nil, err
		}
		list = append(list, &book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// CreateBook inserts a new catalog entry. The id is assigned here and
// never reassigned afterwards.
func (s *Store) CreateBook(create *model.BookUpsertRequest) (*model.Book, error) {
	stmt := `
		INSERT INTO book (id, title, author, genre, mood_tags, description, cover_image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + bookColumns
	args := []any{uuid.NewString(), create.Title, create.Author, create.Genre, create.MoodTags, create.Description, create.CoverImageURL}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var book model.Book
	if err := tx.QueryRow(stmt, args...).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Genre,
		&book.MoodTags,
		&book.Description,
		&book.CoverImageURL,
		&book.CreatedTs,
		&book.UpdatedTs,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &book, nil
}

// UpdateBook replaces all editable fields of the book with the given id.
func (s *Store) UpdateBook(id string, update *model.BookUpsertRequest) (*model.Book, error) {
	stmt := `
		UPDATE book
		SET title = ?, author = ?, genre = ?, mood_tags = ?, description = ?, cover_image_url = ?, updated_ts = strftime('%s', 'now')
		WHERE id = ?
		RETURNING ` + bookColumns
	args := []any{update.Title, update.Author, update.Genre, update.MoodTags, update.Description, update.CoverImageURL, id}

	var book model.Book
	if err := s.db.QueryRow(stmt, args...).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Genre,
		&book.MoodTags,
		&book.Description,
		&book.CoverImageURL,
		&book.CreatedTs,
		&book.UpdatedTs,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, errors.Wrap(err, "failed to update book")
	}

	return &book, nil
}

func (s *Store) DeleteBook(id string) error {
	result, err := s.db.Exec("DELETE FROM book WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "failed to delete book")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// DeleteAllBooks clears the catalog. Only used by the populate endpoint
// before re-seeding.
func (s *Store) DeleteAllBooks() error {
	_, err := s.db.Exec("DELETE FROM book")
	if err != nil {
		return errors.Wrap(err, "failed to clear books")
	}
	return nil
}
