package moderation

import (
	"strings"

	"gorm.io/gorm"

	"competition-portal-server/models"
)

// Filter checks free text against a banned-word list with case-insensitive
// substring matching.
type Filter struct {
	words []string
}

func NewFilter(words []string) *Filter {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			lowered = append(lowered, w)
		}
	}
	return &Filter{words: lowered}
}

// LoadFilter builds a Filter from the banned words stored in the database.
func LoadFilter(db *gorm.DB) (*Filter, error) {
	var rows []models.BannedWord
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	words := make([]string, 0, len(rows))
	for _, row := range rows {
		words = append(words, row.Word)
	}
	return NewFilter(words), nil
}

// Check returns every banned word the text contains. An empty result means
// the text is clean.
func (f *Filter) Check(text string) []string {
	lowered := strings.ToLower(text)
	var matched []string
	for _, w := range f.words {
		if strings.Contains(lowered, w) {
			matched = append(matched, w)
		}
	}
	return matched
}
