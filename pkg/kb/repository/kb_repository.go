package repository

import "bookstudy/entities"

// ChunkRepository stores indexed chunks per book namespace.
type ChunkRepository interface {
	// ReplaceBook rebuilds the book's index: existing chunks are dropped
	// before the new set is inserted, so re-indexing never duplicates hits.
	ReplaceBook(bookID string, cs []entities.BookChunk) error
	ByBook(bookID string) ([]entities.BookChunk, error)
	ByBookChapter(bookID string, chapterNumber int) ([]entities.BookChunk, error)
}
