package quiz

// Allotted time per test, by question count.
const (
	ShortTestSeconds  = 9 * 60
	MediumTestSeconds = 18 * 60
	LongTestSeconds   = 90 * 60
)

// Submission is one answer as sent by the client. SelectedOption is empty when unanswered.
type Submission struct {
	QuestionID     string
	SelectedOption string
}

// GradedAnswer is a Submission with its verdict.
type GradedAnswer struct {
	QuestionID     string
	SelectedOption string
	Correct        bool
}

// AnswerKey maps question id to its correct option.
type AnswerKey map[string]string

type Result struct {
	Answers []GradedAnswer
	Score   int
}

// Grade marks every submission. Unknown questions and empty selections are wrong, never errors.
func Grade(answers []Submission, key AnswerKey) Result {
	res := Result{Answers: make([]GradedAnswer, 0, len(answers))}
	for _, a := range answers {
		correctOption, known := key[a.QuestionID]
		correct := known && a.SelectedOption != "" && a.SelectedOption == correctOption
		if correct {
			res.Score++
		}
		res.Answers = append(res.Answers, GradedAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			Correct:        correct,
		})
	}
	return res
}

// DurationForCount returns the allotted seconds for a test with n questions.
func DurationForCount(n int) int {
	switch {
	case n >= 100:
		return LongTestSeconds
	case n >= 20:
		return MediumTestSeconds
	default:
		return ShortTestSeconds
	}
}

// ClampElapsed bounds a client reported duration to [0, ceiling].
func ClampElapsed(taken, ceiling int) int {
	if taken < 0 {
		return 0
	}
	if taken > ceiling {
		return ceiling
	}
	return taken
}
