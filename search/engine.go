package search // import "github.com/bookly/bookly/search"

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bookly/bookly/client"
	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RecentHistorySize is how many past queries the history panel shows.
// The full history is kept, only the display is truncated.
const RecentHistorySize = 8

const (
	// NoMatchesNotice is informational, a zero-result query is a valid
	// outcome and not an error.
	NoMatchesNotice = "No books matched your mood and genre. Try something else!"
	retryMessage    = "Could not fetch recommendations. Please try again."
)

// ErrEmptyQuery rejects a query before any request goes out.
var ErrEmptyQuery = errors.New("search: mood and genre are both required")

// Catalog is the slice of the service the engine needs.
type Catalog interface {
	Recommend(ctx context.Context, mood, genre string) (*model.RecommendationResponse, error)
}

// HistoryEntry is a completed query with the results it produced, kept
// so it can be replayed without another network call.
type HistoryEntry struct {
	ID           string
	Mood         string
	Genre        string
	Timestamp    time.Time
	Results      []*model.Book
	TotalMatches int
}

// Engine runs recommendation queries and remembers every one of them.
// It is not safe for concurrent use, callers drive it from one loop.
type Engine struct {
	catalog Catalog
	now     func() time.Time

	mood    string
	genre   string
	results []*model.Book
	total   int
	notice  string
	history []*HistoryEntry
	seq     int
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		now:     time.Now,
	}
}

func (e *Engine) Mood() string             { return e.mood }
func (e *Engine) Genre() string            { return e.genre }
func (e *Engine) Results() []*model.Book   { return e.results }
func (e *Engine) TotalMatches() int        { return e.total }
func (e *Engine) Notice() string           { return e.notice }
func (e *Engine) History() []*HistoryEntry { return e.history }

// Recommend runs one query. Blank inputs fail locally with no request
// sent. A service failure leaves the previous results, inputs and
// history exactly as they were.
func (e *Engine) Recommend(ctx context.Context, mood, genre string) error {
	mood = strings.TrimSpace(mood)
	genre = strings.TrimSpace(genre)
	if mood == "" || genre == "" {
		return ErrEmptyQuery
	}

	result, err := e.catalog.Recommend(ctx, mood, genre)
	if err != nil {
		// Transport failures and service error responses read the same to
		// the user, only the log tells them apart.
		if errors.Is(err, client.ErrNoResponse) {
			log.Warn("Recommendation request got no response", zap.Error(err))
		} else {
			log.Warn("Recommendation request rejected by service", zap.Error(err))
		}
		return errors.New(retryMessage)
	}

	e.mood = mood
	e.genre = genre
	e.results = result.Books
	e.total = result.TotalMatches
	if len(result.Books) == 0 {
		e.notice = NoMatchesNotice
	} else {
		e.notice = ""
	}

	// Every completed query is recorded, zero-result ones included.
	e.seq++
	entry := &HistoryEntry{
		ID:           fmt.Sprintf("%d-%d", e.now().UnixMilli(), e.seq),
		Mood:         mood,
		Genre:        genre,
		Timestamp:    e.now(),
		Results:      result.Books,
		TotalMatches: result.TotalMatches,
	}
	e.history = append([]*HistoryEntry{entry}, e.history...)
	return nil
}

// Replay restores a past query's results and inputs from memory. No
// request is made and the history is left untouched.
func (e *Engine) Replay(id string) bool {
	for _, entry := range e.history {
		if entry.ID != id {
			continue
		}
		e.mood = entry.Mood
		e.genre = entry.Genre
		e.results = entry.Results
		e.total = entry.TotalMatches
		if len(entry.Results) == 0 {
			e.notice = NoMatchesNotice
		} else {
			e.notice = ""
		}
		return true
	}
	return false
}

// Recent returns the newest queries for display, most recent first.
func (e *Engine) Recent() []*HistoryEntry {
	if len(e.history) <= RecentHistorySize {
		return e.history
	}
	return e.history[:RecentHistorySize]
}
