package service

import "bookstudy/entities"

type AssistantService interface {
	// GenerateChapterNotes produces structured study notes for the chapter
	// and tags them via topic extraction.
	GenerateChapterNotes(ch *entities.Chapter) (*entities.Note, error)
	// ExtractTopics returns trimmed topic labels for the text. An empty list
	// is a degraded result, not an error.
	ExtractTopics(text string) ([]string, error)
	// GenerateQuiz returns exactly n validated questions or a generation
	// failure; malformed model output is distinguishable via
	// errors.Is(err, ErrMalformedModelOutput) on the serviceImp sentinel.
	GenerateQuiz(ch *entities.Chapter, difficulty string, n int) ([]entities.QuizQuestion, error)
	// AnswerQuestion retrieves context and composes a grounded answer. With
	// nothing retrieved it returns the canned no-information response
	// without calling the model.
	AnswerQuestion(bookID, question string) (string, error)
	StudyPlan(bookID, examDate string, hoursPerDay int) (string, error)
}
