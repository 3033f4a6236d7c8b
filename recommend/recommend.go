package recommend // import "github.com/bookly/bookly/recommend"

import (
	"sort"
	"strings"

	"github.com/bookly/bookly/model"
)

// SplitMoodTags splits a comma-separated mood tag string into trimmed,
// lowercased tags. Empty entries are dropped.
func SplitMoodTags(moodTags string) []string {
	parts := strings.Split(moodTags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// MatchesMood reports whether a book's mood tags match the requested
// mood. The containment test runs both ways: "adventure" matches the tag
// "adventurous" and vice versa.
func MatchesMood(book *model.Book, mood string) bool {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if mood == "" {
		return false
	}
	for _, tag := range SplitMoodTags(book.MoodTags) {
		if strings.Contains(tag, mood) || strings.Contains(mood, tag) {
			return true
		}
	}
	return false
}

// moodScore ranks how well a book's tags fit the requested mood: an
// exact tag wins, then a tag containing the mood; books matched only
// because a tag is a substring of the mood sort last.
func moodScore(book *model.Book, mood string) int {
	tags := SplitMoodTags(book.MoodTags)
	for _, tag := range tags {
		if tag == mood {
			return 2
		}
	}
	for _, tag := range tags {
		if strings.Contains(tag, mood) {
			return 1
		}
	}
	return 0
}

// Rank filters books down to those matching the requested mood and
// orders them exact-match-first. The sort is stable, so the catalog
// order is preserved inside each rank.
func Rank(books []*model.Book, mood string) []*model.Book {
	mood = strings.ToLower(strings.TrimSpace(mood))

	matches := make([]*model.Book, 0, len(books))
	for _, book := range books {
		if MatchesMood(book, mood) {
			matches = append(matches, book)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return moodScore(matches[i], mood) > moodScore(matches[j], mood)
	})

	return matches
}

// Cap truncates a ranked result to at most limit books. The caller keeps
// the full match count for total_matches.
func Cap(books []*model.Book, limit int) []*model.Book {
	if limit <= 0 || len(books) <= limit {
		return books
	}
	return books[:limit]
}
