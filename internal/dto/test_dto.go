package dto

import "time"

// DailyTestResponseDTO is today's shared set for a faculty.
type DailyTestResponseDTO struct {
	Date            string                `json:"date"`
	Faculty         string                `json:"faculty"`
	SetSize         int                   `json:"set_size"`
	DurationSeconds int                   `json:"duration_seconds"`
	Questions       []QuestionResponseDTO `json:"questions"`
}

// PracticeTestResponseDTO is an ad-hoc random sample.
type PracticeTestResponseDTO struct {
	Subject         string                `json:"subject,omitempty"`
	DurationSeconds int                   `json:"duration_seconds"`
	Questions       []QuestionResponseDTO `json:"questions"`
}

type SubmitResultDTO struct {
	AttemptID string             `json:"attempt_id"`
	Score     int                `json:"score"`
	Total     int                `json:"total"`
	TimeTaken int                `json:"time_taken"`
	Streak    *StreakResponseDTO `json:"streak,omitempty"`
}

// TestAttemptSummaryDTO is one row of a user's history.
type TestAttemptSummaryDTO struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	TimeTaken int       `json:"time_taken"`
	Subject   string    `json:"subject,omitempty"`
	Faculty   string    `json:"faculty,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AnswerBreakdownDTO explains one answer of an attempt.
type AnswerBreakdownDTO struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	Correct       bool   `json:"correct"`
}

type TestAttemptDetailDTO struct {
	ID         string               `json:"id"`
	Score      int                  `json:"score"`
	Total      int                  `json:"total"`
	Percentage int                  `json:"percentage"`
	TimeTaken  int                  `json:"time_taken"`
	Subject    string               `json:"subject,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	Breakdown  []AnswerBreakdownDTO `json:"breakdown"`
}

type StatsTotalDTO struct {
	Questions      int `json:"questions"`
	Correct        int `json:"correct"`
	Incorrect      int `json:"incorrect"`
	Percentage     int `json:"percentage"`
	TestsCompleted int `json:"tests_completed"`
}

type SubjectStatsDTO struct {
	Subject    string `json:"subject"`
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Incorrect  int    `json:"incorrect"`
	Percentage int    `json:"percentage"`
}

type StatsResponseDTO struct {
	Total     StatsTotalDTO     `json:"total"`
	BySubject []SubjectStatsDTO `json:"by_subject"`
}
