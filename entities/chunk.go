package entities

import "time"

// BookChunk is the unit of similarity search. Chunks reference their source
// chapter by number and carry its page range so answers can cite location.
type BookChunk struct {
	ChunkID       uint   `gorm:"primaryKey" json:"chunk_id"`
	BookID        string `gorm:"index" json:"book_id"`
	ChapterNumber int    `gorm:"index" json:"chapter_number"`
	ChapterTitle  string `json:"chapter_title"`
	PageStart     int    `json:"page_start"`
	PageEnd       int    `json:"page_end"`
	Ord           int    `json:"ord"`
	Text          string `json:"text"`
	Embedding     []byte `json:"-"`
	CreatedAt     time.Time
}
