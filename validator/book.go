package validator

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bookly/bookly/model"
)

func ValidateBookUpsertRequest(book *model.BookUpsertRequest) error {
	if book == nil {
		return errors.New("book is nil")
	}
	if strings.TrimSpace(book.Title) == "" {
		return errors.New("title is empty")
	}
	if strings.TrimSpace(book.Author) == "" {
		return errors.New("author is empty")
	}
	if strings.TrimSpace(book.Genre) == "" {
		return errors.New("genre is empty")
	}
	if strings.TrimSpace(book.Description) == "" {
		return errors.New("description is empty")
	}
	if strings.TrimSpace(book.MoodTags) == "" {
		return errors.New("mood tags are empty")
	}
	// CoverImageURL is optional, clients fall back to a placeholder.
	return nil
}

// ValidateRecommendationRequest trims both fields in place and rejects
// blank ones, so no query hits the store with empty input.
func ValidateRecommendationRequest(req *model.RecommendationRequest) error {
	if req == nil {
		return errors.New("request is nil")
	}
	req.Mood = strings.TrimSpace(req.Mood)
	req.Genre = strings.TrimSpace(req.Genre)
	if req.Mood == "" {
		return errors.New("mood is empty")
	}
	if req.Genre == "" {
		return errors.New("genre is empty")
	}
	return nil
}
