package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bookstudy/entities"
	"bookstudy/pkg/ai"
)

// ErrMalformedModelOutput marks quiz responses the model returned in the
// wrong shape. Transport failures are wrapped without this sentinel, so the
// two are distinguishable at the request boundary.
var ErrMalformedModelOutput = errors.New("malformed model output")

// NoRelevantInfo is returned when retrieval produced nothing to ground an
// answer on. The model is deliberately not called in that case.
const NoRelevantInfo = "I couldn't find relevant information to answer your question."

// Per-operation temperatures. Extraction runs cold, creative tasks warm.
const (
	tempTopics = 0.3
	tempAnswer = 0.5
	tempNotes  = 0.7
	tempPlan   = 0.7
	tempQuiz   = 0.8
)

// Prompt-size bounds, in runes of source content.
const (
	notesPrefixLimit  = 3000
	topicsPrefixLimit = 1000
	quizPrefixLimit   = 4000
)

const answerContextChunks = 5

type searcher interface {
	Search(bookID, query string, n int, chapterFilter *int) ([]entities.BookChunk, error)
}

type Svc struct {
	llm ai.Client
	kb  searcher
}

func New(llm ai.Client, kb searcher) *Svc { return &Svc{llm: llm, kb: kb} }

func (s *Svc) GenerateChapterNotes(ch *entities.Chapter) (*entities.Note, error) {
	prompt := fmt.Sprintf(`Create comprehensive study notes for the following chapter:

Chapter %d: %s

Content: %s

Please create notes that include:
1. Key concepts and definitions
2. Important formulas or processes
3. Main arguments or themes
4. Critical examples
5. Summary of main points

Format the notes in a clear, structured manner suitable for studying.`,
		ch.ChapterNumber, ch.Title, prefix(ch.Content, notesPrefixLimit))

	content, err := s.llm.Complete("You are an expert study assistant creating comprehensive notes.", prompt, tempNotes)
	if err != nil {
		return nil, fmt.Errorf("chapter %d notes: %w", ch.ChapterNumber, err)
	}

	topics, err := s.ExtractTopics(content)
	if err != nil {
		// tagging is non-fatal; keep the note with no tags
		topics = nil
	}

	n := ch.ChapterNumber
	return &entities.Note{
		ID:            entities.HashID(fmt.Sprintf("%s_%d_ai", ch.BookID, ch.ChapterNumber)),
		BookID:        ch.BookID,
		ChapterNumber: &n,
		Content:       content,
		Source:        "ai_generated",
		TopicTags:     topics,
	}, nil
}

func (s *Svc) ExtractTopics(text string) ([]string, error) {
	prompt := fmt.Sprintf(`Extract 3-5 main topic tags from the following text.
Return only the topics as a comma-separated list.

Text: %s`, prefix(text, topicsPrefixLimit))

	out, err := s.llm.Complete("Extract main topics from text. Return only comma-separated topics.", prompt, tempTopics)
	if err != nil {
		return nil, fmt.Errorf("extract topics: %w", err)
	}

	var topics []string
	for _, t := range strings.Split(out, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

type quizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
}

func (s *Svc) GenerateQuiz(ch *entities.Chapter, difficulty string, n int) ([]entities.QuizQuestion, error) {
	prompt := fmt.Sprintf(`Create %d %s multiple-choice questions based on this chapter:

Chapter %d: %s
Content: %s

For each question, provide:
1. The question
2. 4 answer options (A, B, C, D)
3. The correct answer (A, B, C, or D)
4. A brief explanation
5. The main topic being tested

Format as JSON array with structure:
[{"question": "...", "options": ["A) ...", "B) ...", "C) ...", "D) ..."], "correct_answer": "A", "explanation": "...", "topic": "..."}]`,
		n, difficulty, ch.ChapterNumber, ch.Title, prefix(ch.Content, quizPrefixLimit))

	out, err := s.llm.Complete("You are an expert quiz creator.", prompt, tempQuiz)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var items []quizItem
	if err := json.Unmarshal([]byte(stripCodeFence(out)), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	if len(items) != n {
		return nil, fmt.Errorf("%w: asked for %d questions, got %d", ErrMalformedModelOutput, n, len(items))
	}

	questions := make([]entities.QuizQuestion, 0, n)
	for i, q := range items {
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options", ErrMalformedModelOutput, i+1, len(q.Options))
		}
		answer := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		if answer != "A" && answer != "B" && answer != "C" && answer != "D" {
			return nil, fmt.Errorf("%w: question %d has correct answer %q", ErrMalformedModelOutput, i+1, q.CorrectAnswer)
		}
		questions = append(questions, entities.QuizQuestion{
			ID:            entities.HashID(fmt.Sprintf("%s_%d_q%d", ch.BookID, ch.ChapterNumber, i)),
			BookID:        ch.BookID,
			ChapterNumber: ch.ChapterNumber,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: answer,
			Explanation:   q.Explanation,
			Difficulty:    difficulty,
			Topic:         q.Topic,
		})
	}
	return questions, nil
}

func (s *Svc) AnswerQuestion(bookID, question string) (string, error) {
	chunks, err := s.kb.Search(bookID, question, answerContextChunks, nil)
	if err != nil {
		return "", fmt.Errorf("answer question: search: %w", err)
	}
	if len(chunks) == 0 {
		return NoRelevantInfo, nil
	}

	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}
	prompt := fmt.Sprintf(`Based on the following context from the book, answer the question:

Context:
%s

Question: %s

Provide a comprehensive answer based only on the given context.`,
		strings.Join(texts, "\n\n"), question)

	answer, err := s.llm.Complete("You are a helpful study assistant.", prompt, tempAnswer)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return answer, nil
}

func (s *Svc) StudyPlan(bookID, examDate string, hoursPerDay int) (string, error) {
	prompt := fmt.Sprintf(`Create a study plan for a book with the following parameters:
- Exam date: %s
- Study hours per day: %d

The plan should include:
1. Daily chapter assignments
2. Review sessions
3. Quiz practice times
4. Focus areas based on past test patterns

Format as a structured daily plan.`, examDate, hoursPerDay)

	plan, err := s.llm.Complete("You are an expert study planner.", prompt, tempPlan)
	if err != nil {
		return "", fmt.Errorf("study plan for %s: %w", bookID, err)
	}
	return plan, nil
}

func prefix(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// stripCodeFence removes a surrounding markdown fence the model sometimes
// wraps JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
