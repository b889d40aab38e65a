package repositoryImp

import (
	"errors"
	"sync"
	"time"

	"bookstudy/entities"
	"bookstudy/pkg/notes/repository"
)

// repo keeps per-book insertion-ordered note lists. The RWMutex serializes
// concurrent appends and reads for the same book; notes live for the process
// lifetime only.
type repo struct {
	mu    sync.RWMutex
	notes map[string][]entities.Note
}

func New() repository.NoteRepository {
	return &repo{notes: make(map[string][]entities.Note)}
}

func (r *repo) Add(n *entities.Note) error {
	if n == nil || n.BookID == "" {
		return errors.New("note requires a book id")
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[n.BookID] = append(r.notes[n.BookID], *n)
	return nil
}

func (r *repo) ByBook(bookID string) ([]entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.notes[bookID]
	out := make([]entities.Note, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *repo) ByBookChapter(bookID string, chapterNumber int) ([]entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Note
	for _, n := range r.notes[bookID] {
		if n.ChapterNumber != nil && *n.ChapterNumber == chapterNumber {
			out = append(out, n)
		}
	}
	return out, nil
}
