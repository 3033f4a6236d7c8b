package model //import "github.com/bookly/bookly/model"

// Book is one catalog entry. MoodTags holds a comma-separated list of
// free-text mood labels, e.g. "adventurous,uplifting,calm"; single tags
// may carry surrounding whitespace.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	MoodTags      string `json:"mood_tags"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
	CreatedTs     int64  `json:"created_ts"`
	UpdatedTs     int64  `json:"updated_ts"`
}

type FindBook struct {
	ID *string `json:"id"`
	// Genre matches case-insensitively when set.
	Genre *string `json:"genre"`

	// The maximum number of books to return.
	Limit *int `json:"limit"`
}

// BookUpsertRequest carries the five editable fields plus the optional
// cover URL. Update replaces all of them.
type BookUpsertRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	MoodTags      string `json:"mood_tags"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
}

type RecommendationRequest struct {
	Mood  string `json:"mood"`
	Genre string `json:"genre"`
}

// RecommendationResponse returns the ranked books plus the number of
// matches before capping, so TotalMatches can exceed len(Books).
type RecommendationResponse struct {
	Books        []*Book `json:"books"`
	TotalMatches int     `json:"total_matches"`
}

type PopulateResponse struct {
	Message       string `json:"message"`
	InsertedCount int    `json:"inserted_count"`
}
