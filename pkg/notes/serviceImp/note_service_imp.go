package serviceImp

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"bookstudy/entities"
	"bookstudy/pkg/notes/repository"
)

type assistant interface {
	AnswerQuestion(bookID, question string) (string, error)
	ExtractTopics(text string) ([]string, error)
}

type searcher interface {
	Search(bookID, query string, n int, chapterFilter *int) ([]entities.BookChunk, error)
}

type Svc struct {
	r  repository.NoteRepository
	ai assistant
	kb searcher
}

func New(r repository.NoteRepository, ai assistant, kb searcher) *Svc {
	return &Svc{r: r, ai: ai, kb: kb}
}

func (s *Svc) AddNote(n *entities.Note) error { return s.r.Add(n) }

func (s *Svc) MergeNotes(bookID string, chapterNumber *int) (map[string][]entities.Note, error) {
	var notes []entities.Note
	var err error
	if chapterNumber != nil {
		notes, err = s.r.ByBookChapter(bookID, *chapterNumber)
	} else {
		notes, err = s.r.ByBook(bookID)
	}
	if err != nil {
		return nil, err
	}

	byTopic := make(map[string][]entities.Note)
	for _, n := range notes {
		for _, topic := range n.TopicTags {
			byTopic[topic] = append(byTopic[topic], n)
		}
	}
	return byTopic, nil
}

var questionRX = regexp.MustCompile(`(?s)\d+\.\s*(.+?\?)`)

func (s *Svc) ProcessPastTest(bookID, testContent string) ([]entities.Note, error) {
	matches := questionRX.FindAllStringSubmatch(testContent, -1)

	var notes []entities.Note
	for _, m := range matches {
		question := strings.TrimSpace(m[1])

		// locate the most relevant chapter for the question
		var chapterNumber *int
		if hits, err := s.kb.Search(bookID, question, 1, nil); err == nil && len(hits) > 0 {
			n := hits[0].ChapterNumber
			chapterNumber = &n
		}

		explanation, err := s.ai.AnswerQuestion(bookID, question)
		if err != nil {
			return nil, fmt.Errorf("past test question %q: %w", question, err)
		}
		content := fmt.Sprintf("Past Test Question: %s\n\nKey Concept: %s", question, explanation)

		topics, err := s.ai.ExtractTopics(content)
		if err != nil {
			log.Printf("[notes] topic extraction failed for past test note: %v", err)
			topics = nil
		}

		seed := question
		if len(seed) > 20 {
			seed = seed[:20]
		}
		note := entities.Note{
			ID:            entities.HashID(fmt.Sprintf("%s_test_%s", bookID, seed)),
			BookID:        bookID,
			ChapterNumber: chapterNumber,
			Content:       content,
			Source:        "past_test",
			TopicTags:     topics,
		}
		if err := s.r.Add(&note); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}
