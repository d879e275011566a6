package domain

import "time"

// Post is a single submission on the board. CreatedAt doubles as the keyset
// pagination key for the public listing.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatorID int64     `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TextSnippet returns the first 50 characters of the body, the projection
// the feed listing sends instead of full post bodies. Truncation counts
// runes so multi-byte text is never cut mid-character.
func (p Post) TextSnippet() string {
	const n = 50
	runes := []rune(p.Text)
	if len(runes) <= n {
		return p.Text
	}
	return string(runes[:n])
}
