package entities

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

type Note struct {
	ID            string    `json:"id"`
	BookID        string    `json:"book_id"`
	ChapterNumber *int      `json:"chapter_number"` // nil = book-wide
	Content       string    `json:"content"`
	Source        string    `json:"source"` // ai_generated|user_upload|past_test
	TopicTags     []string  `json:"topic_tags"`
	CreatedAt     time.Time `json:"created_at"`
}

// HashID derives a deterministic identifier from provenance inputs, so
// re-processing the same input yields the same id.
func HashID(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
