package repository

import "bookstudy/entities"

// NoteRepository hides the note backing store. The default implementation is
// process-memory only; a persistent store can be swapped in behind this
// interface without touching the merge logic.
type NoteRepository interface {
	Add(n *entities.Note) error
	ByBook(bookID string) ([]entities.Note, error)
	ByBookChapter(bookID string, chapterNumber int) ([]entities.Note, error)
}
