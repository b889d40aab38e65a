package service

import (
	"github.com/xuri/excelize/v2"

	"bookstudy/entities"
)

type NoteService interface {
	AddNote(n *entities.Note) error
	// MergeNotes groups the book's notes (optionally one chapter) by topic
	// tag; a note carrying several tags appears under each of them.
	MergeNotes(bookID string, chapterNumber *int) (map[string][]entities.Note, error)
	// ProcessPastTest mines numbered questions from the test text, grounds
	// an explanation for each and stores the results as past_test notes.
	ProcessPastTest(bookID, testContent string) ([]entities.Note, error)
	// ExportWorkbook renders merged notes as an xlsx workbook, one sheet
	// per topic.
	ExportWorkbook(bookID string, chapterNumber *int) (*excelize.File, error)
}
