package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/bookly/bookly/client"
	"github.com/bookly/bookly/config"
	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/pkg/errors"
)

func init() {
	config.Opts = config.GetDefaultOptions()
	log.Logger = log.NewLogger()
}

type fakeCatalog struct {
	calls     int
	responses map[string]*model.RecommendationResponse
	err       error
}

func (f *fakeCatalog) Recommend(ctx context.Context, mood, genre string) (*model.RecommendationResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if resp, ok := f.responses[mood+"/"+genre]; ok {
		return resp, nil
	}
	return &model.RecommendationResponse{Books: []*model.Book{}}, nil
}

func bookList(titles ...string) []*model.Book {
	books := make([]*model.Book, 0, len(titles))
	for _, title := range titles {
		books = append(books, &model.Book{ID: title, Title: title, Genre: "Fantasy"})
	}
	return books
}

func TestRecommendBlankInputsMakeNoRequest(t *testing.T) {
	catalog := &fakeCatalog{}
	engine := NewEngine(catalog)

	for _, tc := range []struct{ mood, genre string }{
		{"", "Fantasy"},
		{"cozy", ""},
		{"   ", "Fantasy"},
		{"cozy", "  "},
	} {
		if err := engine.Recommend(context.Background(), tc.mood, tc.genre); !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("Expected ErrEmptyQuery for %q/%q, got %v", tc.mood, tc.genre, err)
		}
	}
	if catalog.calls != 0 {
		t.Fatalf("Blank inputs must not reach the service, got %d calls", catalog.calls)
	}
	if len(engine.History()) != 0 {
		t.Fatal("Rejected queries must not enter the history")
	}
}

func TestRecommendRecordsResults(t *testing.T) {
	catalog := &fakeCatalog{responses: map[string]*model.RecommendationResponse{
		"adventurous/Fantasy": {Books: bookList("The Hobbit", "Mistborn"), TotalMatches: 7},
	}}
	engine := NewEngine(catalog)

	if err := engine.Recommend(context.Background(), "  adventurous ", " Fantasy "); err != nil {
		t.Fatal(err)
	}
	if engine.Mood() != "adventurous" || engine.Genre() != "Fantasy" {
		t.Fatalf("Inputs should be trimmed, got %q/%q", engine.Mood(), engine.Genre())
	}
	if len(engine.Results()) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(engine.Results()))
	}
	if engine.Results()[0].Title != "The Hobbit" {
		t.Fatal("Result order must be preserved")
	}
	if engine.TotalMatches() != 7 {
		t.Fatalf("Expected 7 total matches, got %d", engine.TotalMatches())
	}
	if engine.Notice() != "" {
		t.Fatalf("Unexpected notice %q", engine.Notice())
	}
}

func TestRecommendZeroResultsIsInformational(t *testing.T) {
	catalog := &fakeCatalog{}
	engine := NewEngine(catalog)

	if err := engine.Recommend(context.Background(), "cozy", "Mystery"); err != nil {
		t.Fatal(err)
	}
	if engine.Notice() != NoMatchesNotice {
		t.Fatalf("Expected no-matches notice, got %q", engine.Notice())
	}
	if len(engine.History()) != 1 {
		t.Fatalf("Zero-result queries still enter the history, got %d entries", len(engine.History()))
	}
	entry := engine.History()[0]
	if entry.Mood != "cozy" || entry.Genre != "Mystery" || entry.TotalMatches != 0 {
		t.Fatalf("Unexpected history entry %+v", entry)
	}
}

func TestRecommendFailureKeepsPreviousState(t *testing.T) {
	catalog := &fakeCatalog{responses: map[string]*model.RecommendationResponse{
		"cozy/Fantasy": {Books: bookList("The Hobbit"), TotalMatches: 1},
	}}
	engine := NewEngine(catalog)
	if err := engine.Recommend(context.Background(), "cozy", "Fantasy"); err != nil {
		t.Fatal(err)
	}

	catalog.err = &client.StatusError{StatusCode: 500, Message: "boom"}
	err := engine.Recommend(context.Background(), "tense", "Thriller")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if err.Error() != "Could not fetch recommendations. Please try again." {
		t.Fatalf("Failures surface a generic retry message, got %q", err)
	}
	if engine.Mood() != "cozy" || engine.Genre() != "Fantasy" {
		t.Fatalf("Failure must keep previous inputs, got %q/%q", engine.Mood(), engine.Genre())
	}
	if len(engine.Results()) != 1 {
		t.Fatal("Failure must keep previous results")
	}
	if len(engine.History()) != 1 {
		t.Fatal("Failed queries must not enter the history")
	}

	// Transport failures get the same treatment.
	catalog.err = errors.Wrap(client.ErrNoResponse, "connection refused")
	if err := engine.Recommend(context.Background(), "tense", "Thriller"); err == nil {
		t.Fatal("Expected an error")
	}
	if len(engine.History()) != 1 {
		t.Fatal("Failed queries must not enter the history")
	}
}

func TestHistoryIsUnboundedAndMostRecentFirst(t *testing.T) {
	catalog := &fakeCatalog{}
	engine := NewEngine(catalog)

	const queries = 12
	for i := 0; i < queries; i++ {
		mood := fmt.Sprintf("mood-%d", i)
		if err := engine.Recommend(context.Background(), mood, "Fantasy"); err != nil {
			t.Fatal(err)
		}
	}

	if len(engine.History()) != queries {
		t.Fatalf("Expected %d history entries, got %d", queries, len(engine.History()))
	}
	if engine.History()[0].Mood != "mood-11" {
		t.Fatalf("History must be most recent first, got %q", engine.History()[0].Mood)
	}
	if engine.History()[queries-1].Mood != "mood-0" {
		t.Fatalf("Oldest entry must be last, got %q", engine.History()[queries-1].Mood)
	}

	recent := engine.Recent()
	if len(recent) != RecentHistorySize {
		t.Fatalf("Recent view is capped at %d, got %d", RecentHistorySize, len(recent))
	}
	if recent[0].Mood != "mood-11" {
		t.Fatalf("Recent view must start with the newest entry, got %q", recent[0].Mood)
	}

	ids := make(map[string]bool)
	for _, entry := range engine.History() {
		if ids[entry.ID] {
			t.Fatalf("Duplicate history ID %q", entry.ID)
		}
		ids[entry.ID] = true
	}
}

func TestReplayDoesNotRefetchOrGrowHistory(t *testing.T) {
	catalog := &fakeCatalog{responses: map[string]*model.RecommendationResponse{
		"cozy/Fantasy":   {Books: bookList("The Hobbit"), TotalMatches: 1},
		"tense/Thriller": {Books: bookList("Gone Girl"), TotalMatches: 3},
	}}
	engine := NewEngine(catalog)

	if err := engine.Recommend(context.Background(), "cozy", "Fantasy"); err != nil {
		t.Fatal(err)
	}
	if err := engine.Recommend(context.Background(), "tense", "Thriller"); err != nil {
		t.Fatal(err)
	}
	callsBefore := catalog.calls
	oldest := engine.History()[1]

	if !engine.Replay(oldest.ID) {
		t.Fatal("Expected replay to find the entry")
	}
	if catalog.calls != callsBefore {
		t.Fatal("Replay must not hit the service")
	}
	if len(engine.History()) != 2 {
		t.Fatal("Replay must not grow the history")
	}
	if engine.Mood() != "cozy" || engine.Genre() != "Fantasy" {
		t.Fatalf("Replay must restore the inputs, got %q/%q", engine.Mood(), engine.Genre())
	}
	if engine.Results()[0].Title != "The Hobbit" || engine.TotalMatches() != 1 {
		t.Fatal("Replay must restore results and total")
	}

	if engine.Replay("no-such-id") {
		t.Fatal("Unknown IDs must not replay")
	}
}
