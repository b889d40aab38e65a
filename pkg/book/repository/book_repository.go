package repository

import "bookstudy/entities"

type BookRepository interface {
	SaveBook(*entities.Book) error
	// ReplaceChapters drops any chapters previously stored for the book and
	// inserts the new set in one transaction.
	ReplaceChapters(bookID string, chs []entities.Chapter) error
	ChapterByNumber(bookID string, chapterNumber int) (*entities.Chapter, error)
	ChaptersByBook(bookID string) ([]entities.Chapter, error)
}
