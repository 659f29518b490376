package dto

// QuestionCreateDTO is used by admins to create or replace a question.
type QuestionCreateDTO struct {
	Question      string   `json:"question" binding:"required,min=5"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Subject       string   `json:"subject" binding:"required"`
	Faculty       string   `json:"faculty" binding:"required"`
	Explanation   string   `json:"explanation"`
}

// ImportQuestionDTO is a question inside a grouped or flat import.
type ImportQuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject,omitempty"`
	Faculty       string   `json:"faculty,omitempty"`
}

// GroupedImportDTO shares subject and faculty across all questions.
type GroupedImportDTO struct {
	Subject   string              `json:"subject"`
	Faculty   string              `json:"faculty"`
	Questions []ImportQuestionDTO `json:"questions"`
}

// QuizImportDTO is the short quiz export format: title becomes the subject, desc the faculty.
type QuizImportDTO struct {
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Questions []struct {
		Q           string   `json:"q"`
		Options     []string `json:"options"`
		Answer      string   `json:"answer"`
		Explanation string   `json:"explanation"`
	} `json:"questions"`
}

type ImportResultDTO struct {
	Inserted int    `json:"inserted"`
	Format   string `json:"format"` // "grouped", "flat" or "quiz"
}
