package service

import "bookstudy/entities"

type KBService interface {
	// IndexChapters rebuilds the book's namespace from the given chapters
	// and returns the number of chunks stored.
	IndexChapters(bookID string, chapters []entities.Chapter) (int, error)
	// Search returns the top n chunks most similar to the query, optionally
	// restricted to one chapter. Unknown books yield an empty result.
	Search(bookID, query string, n int, chapterFilter *int) ([]entities.BookChunk, error)
}
