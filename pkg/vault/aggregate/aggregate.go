// Package aggregate computes the read-only cross-kind summary: record
// counts per kind, top tags across all kinds and top platforms among
// passwords.
//
// The summary is recomputed in full from the three complete lists on every
// load; it is independent of any filter or pagination state.
package aggregate

import (
	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/vault/index"
)

// TopN is how many tags and platforms the summary reports.
const TopN = 5

// Summary is the aggregation view.
type Summary struct {
	APIKeyCount   int           `json:"apiKeyCount"`
	PasswordCount int           `json:"passwordCount"`
	NoteCount     int           `json:"noteCount"`
	TopTags       []index.Count `json:"topTags"`
	TopPlatforms  []index.Count `json:"topPlatforms"`
}

// Compute builds the summary from the three full record lists. Frequency
// ties are broken by first-encountered order, so the result is
// deterministic for a given list order.
func Compute(keys []model.APIKey, passwords []model.Password, notes []model.Note) Summary {
	tags := index.NewFrequency()
	index.AddTags(tags, keys)
	index.AddTags(tags, passwords)
	index.AddTags(tags, notes)

	platforms := index.NewFrequency()
	index.AddCategories(platforms, passwords)

	return Summary{
		APIKeyCount:   len(keys),
		PasswordCount: len(passwords),
		NoteCount:     len(notes),
		TopTags:       tags.Top(TopN),
		TopPlatforms:  platforms.Top(TopN),
	}
}
