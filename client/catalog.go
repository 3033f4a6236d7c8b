package client

import (
	"context"
	"net/http"

	"github.com/bookly/bookly/model"
)

// ListBooks fetches all catalog entries. An empty catalog returns an
// empty slice, not an error.
func (c *Client) ListBooks(ctx context.Context) ([]*model.Book, error) {
	var books []*model.Book
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) CreateBook(ctx context.Context, create *model.BookUpsertRequest) (*model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodPost, "/api/books", create, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) UpdateBook(ctx context.Context, id string, update *model.BookUpsertRequest) (*model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodPut, "/api/books/"+id, update, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/books/"+id, nil, nil)
}

// Recommend asks the service for books matching the given mood and
// genre. The result order is the service's ranking and must be kept.
func (c *Client) Recommend(ctx context.Context, mood, genre string) (*model.RecommendationResponse, error) {
	req := &model.RecommendationRequest{Mood: mood, Genre: genre}
	var result model.RecommendationResponse
	if err := c.do(ctx, http.MethodPost, "/api/recommend", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
