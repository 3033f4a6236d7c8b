package store

import (
	"testing"

	"github.com/bookly/bookly/model"
	"github.com/pkg/errors"
)

func testBookRequest(title, genre string) *model.BookUpsertRequest {
	return &model.BookUpsertRequest{
		Title:       title,
		Author:      "Test Author",
		Genre:       genre,
		MoodTags:    "cozy, adventurous",
		Description: "A book for testing",
	}
}

func TestCreateAndListBooks(t *testing.T) {
	s := NewStore(createTestDb(t, "test_for_book_create"))

	created, err := s.CreateBook(testBookRequest("The Hobbit", "Fantasy"))
	if err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("Created book has no id")
	}
	if created.CreatedTs == 0 {
		t.Fatalf("Created book has no created timestamp")
	}

	if _, err := s.CreateBook(testBookRequest("Gone Girl", "Thriller")); err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}

	list, err := s.ListBooks(&model.FindBook{})
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 books, got %d", len(list))
	}
}

func TestListBooksFiltersGenreCaseInsensitive(t *testing.T) {
	s := NewStore(createTestDb(t, "test_for_book_genre"))

	if _, err := s.CreateBook(testBookRequest("The Hobbit", "Fantasy")); err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}
	if _, err := s.CreateBook(testBookRequest("Gone Girl", "Thriller")); err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}

	genre := "fantasy"
	list, err := s.ListBooks(&model.FindBook{Genre: &genre})
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 book, got %d", len(list))
	}
	if list[0].Title != "The Hobbit" {
		t.Fatalf("Unexpected book %q", list[0].Title)
	}
}

func TestUpdateBook(t *testing.T) {
	s := NewStore(createTestDb(t, "test_for_book_update"))

	created, err := s.CreateBook(testBookRequest("The Hobbit", "Fantasy"))
	if err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}

	update := testBookRequest("The Hobbit, or There and Back Again", "Fantasy")
	updated, err := s.UpdateBook(created.ID, update)
	if err != nil {
		t.Fatalf("Failed to update book: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("Update must not change the id")
	}
	if updated.Title != update.Title {
		t.Fatalf("Expected updated title, got %q", updated.Title)
	}

	if _, err := s.UpdateBook("no-such-id", update); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("Expected ErrBookNotFound, got %v", err)
	}
}

func TestDeleteBook(t *testing.T) {
	s := NewStore(createTestDb(t, "test_for_book_delete"))

	created, err := s.CreateBook(testBookRequest("The Hobbit", "Fantasy"))
	if err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}

	if err := s.DeleteBook(created.ID); err != nil {
		t.Fatalf("Failed to delete book: %v", err)
	}
	if err := s.DeleteBook(created.ID); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("Expected ErrBookNotFound, got %v", err)
	}

	list, err := s.ListBooks(&model.FindBook{})
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("Expected empty catalog, got %d books", len(list))
	}
}

func TestDeleteAllBooks(t *testing.T) {
	s := NewStore(createTestDb(t, "test_for_book_delete_all"))

	if _, err := s.CreateBook(testBookRequest("The Hobbit", "Fantasy")); err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}
	if _, err := s.CreateBook(testBookRequest("Gone Girl", "Thriller")); err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}

	if err := s.DeleteAllBooks(); err != nil {
		t.Fatalf("Failed to clear books: %v", err)
	}

	list, err := s.ListBooks(&model.FindBook{})
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("Expected empty catalog, got %d books", len(list))
	}
}
