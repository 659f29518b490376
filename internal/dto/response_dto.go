package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// QuestionResponseDTO is a question as shown while taking a test.
type QuestionResponseDTO struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Subject       string    `json:"subject"`
	Faculty       string    `json:"faculty"`
	Explanation   string    `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CountResponseDTO struct {
	Count int `json:"count"`
}

type StreakResponseDTO struct {
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	LastActivityDate string `json:"last_activity_date,omitempty"`
}

type BookmarkResponseDTO struct {
	QuestionID   string              `json:"question_id"`
	Question     QuestionResponseDTO `json:"question"`
	BookmarkedAt time.Time           `json:"bookmarked_at"`
}

type LeaderboardEntryDTO struct {
	Rank             int    `json:"rank"`
	UserID           string `json:"user_id"`
	TestsCompleted   int    `json:"tests_completed"`
	TotalQuestions   int    `json:"total_questions"`
	CorrectAnswers   int    `json:"correct_answers"`
	IncorrectAnswers int    `json:"incorrect_answers"`
	Accuracy         int    `json:"accuracy"` // percent, rounded
}
