package catalog // import "github.com/bookly/bookly/catalog"

import (
	"context"

	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"go.uber.org/zap"
)

// Service is the slice of the catalog client the manager needs.
type Service interface {
	ListBooks(ctx context.Context) ([]*model.Book, error)
	CreateBook(ctx context.Context, create *model.BookUpsertRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, id string, update *model.BookUpsertRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// Confirmer approves a pending delete. Returning false aborts it before
// any request goes out.
type Confirmer func(book *model.Book) bool

// Manager holds the admin view of the catalog. Every successful write is
// followed by a full re-fetch, so the displayed set always reflects the
// service's state rather than an optimistic local patch.
type Manager struct {
	service Service
	confirm Confirmer

	books []*model.Book
}

func NewManager(service Service, confirm Confirmer) *Manager {
	return &Manager{
		service: service,
		confirm: confirm,
	}
}

func (m *Manager) Books() []*model.Book { return m.books }

// Refresh replaces the held list with the service's current state. This
// is also the side effect of entering the admin dashboard.
func (m *Manager) Refresh(ctx context.Context) error {
	books, err := m.service.ListBooks(ctx)
	if err != nil {
		return err
	}
	m.books = books
	return nil
}

func (m *Manager) Create(ctx context.Context, create *model.BookUpsertRequest) error {
	if _, err := m.service.CreateBook(ctx, create); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *Manager) Update(ctx context.Context, id string, update *model.BookUpsertRequest) error {
	if _, err := m.service.UpdateBook(ctx, id, update); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Delete asks the confirmer first; an unconfirmed delete is a no-op with
// no request issued.
func (m *Manager) Delete(ctx context.Context, id string) error {
	var target *model.Book
	for _, book := range m.books {
		if book.ID == id {
			target = book
			break
		}
	}
	if m.confirm != nil && !m.confirm(target) {
		log.Debug("Delete not confirmed", zap.String("id", id))
		return nil
	}

	if err := m.service.DeleteBook(ctx, id); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
