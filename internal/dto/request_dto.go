package dto

// AnswerSubmitDTO is one answer inside a submission. SelectedOption may be empty for unanswered questions.
type AnswerSubmitDTO struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option"`
}

// TestAttemptSubmitDTO is the request body for submitting a finished test.
type TestAttemptSubmitDTO struct {
	Answers   []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
	TimeTaken int               `json:"time_taken"` // seconds as measured by the client
	Subject   string            `json:"subject"`
	// SetSize is the number of questions the test was served with (10 or 100 for daily tests).
	SetSize int `json:"set_size,omitempty" binding:"omitempty,min=1,max=100"`
}

type BookmarkCreateDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
}
