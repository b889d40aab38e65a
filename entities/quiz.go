package entities

type QuizQuestion struct {
	ID            string   `json:"id"`
	BookID        string   `json:"book_id"`
	ChapterNumber int      `json:"chapter_number"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`        // exactly 4, labelled A) .. D)
	CorrectAnswer string   `json:"correct_answer"` // A|B|C|D
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"` // easy|medium|hard
	Topic         string   `json:"topic"`
}
