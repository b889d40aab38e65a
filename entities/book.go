package entities

import "time"

type Book struct {
	BookID    string `gorm:"primaryKey" json:"book_id"`
	Filename  string `json:"filename"`
	Title     string `json:"title"`
	NumPages  int    `json:"num_pages"`
	CreatedAt time.Time
}

type Chapter struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	BookID        string `gorm:"index" json:"book_id"`
	ChapterNumber int    `json:"chapter_number"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	PageStart     int    `json:"page_start"`
	PageEnd       int    `json:"page_end"`
	CreatedAt     time.Time
}
