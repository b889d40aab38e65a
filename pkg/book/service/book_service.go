package service

import "bookstudy/entities"

type BookService interface {
	// ProcessUpload extracts page text from the saved PDF, segments it into
	// chapters and persists book + chapters. The returned book id is derived
	// from the original filename, so re-uploading the same file maps to the
	// same book.
	ProcessUpload(path, filename string) (*entities.Book, []entities.Chapter, error)
	ChapterByNumber(bookID string, chapterNumber int) (*entities.Chapter, error)
	ChaptersByBook(bookID string) ([]entities.Chapter, error)
}
