package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	ImportFormatGrouped = "grouped"
	ImportFormatFlat    = "flat"
	ImportFormatQuiz    = "quiz"
)

// QuestionService is the admin side of the question catalog.
type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponseDTO, error)
	ListQuestions(ctx context.Context, subject string) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(ctx context.Context, id string, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(ctx context.Context, id string) error
	// ImportQuestions accepts a grouped, flat or quiz-format JSON document and inserts all questions or none.
	ImportQuestions(ctx context.Context, raw []byte) (*dto.ImportResultDTO, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.Question{}
	copier.Copy(&question, &req)
	question.Options = append([]string(nil), req.Options...)

	if err := question.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Str("subject", question.Subject).Msg("Failed to create question in service")
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	resp := toQuestionDTO(&question)
	return &resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toQuestionDTO(question)
	return &resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context, subject string) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.repo.FindAll(ctx, subject)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to list questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	return toQuestionDTOs(questions), nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	question.Question = req.Question
	question.Options = append([]string(nil), req.Options...)
	question.CorrectAnswer = req.CorrectAnswer
	question.Subject = req.Subject
	question.Faculty = req.Faculty
	question.Explanation = req.Explanation

	if err := question.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Str("questionID", id).Msg("Failed to update question")
		return nil, fmt.Errorf("error updating question: %w", err)
	}
	resp := toQuestionDTO(question)
	return &resp, nil
}

// DeleteQuestion soft-deletes; answers already stored keep referring to it.
func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("questionID", id).Msg("Failed to delete question")
		}
		return err
	}
	log.Info().Str("questionID", id).Msg("Question deleted")
	return nil
}

func (s *questionService) ImportQuestions(ctx context.Context, raw []byte) (*dto.ImportResultDTO, error) {
	questions, format, err := ParseImport(raw)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateBatch(ctx, questions); err != nil {
		log.Error().Err(err).Str("format", format).Int("count", len(questions)).Msg("Failed to import questions")
		return nil, fmt.Errorf("error importing questions: %w", err)
	}
	log.Info().Str("format", format).Int("count", len(questions)).Msg("Questions imported")
	return &dto.ImportResultDTO{Inserted: len(questions), Format: format}, nil
}

// ParseImport detects the document shape and validates every question in it.
// A top-level array is the flat format, an object with a title is the quiz format,
// any other object is grouped.
func ParseImport(raw []byte) ([]model.Question, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, "", fmt.Errorf("%w: empty body", ErrInvalidImport)
	}

	var (
		questions []model.Question
		format    string
	)
	if trimmed[0] == '[' {
		var flat []dto.ImportQuestionDTO
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidImport, err)
		}
		format = ImportFormatFlat
		for _, q := range flat {
			questions = append(questions, fromImport(q, q.Subject, q.Faculty))
		}
	} else {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidImport, err)
		}
		if _, ok := probe["title"]; ok {
			var doc dto.QuizImportDTO
			if err := json.Unmarshal(trimmed, &doc); err != nil {
				return nil, "", fmt.Errorf("%w: %v", ErrInvalidImport, err)
			}
			format = ImportFormatQuiz
			faculty := doc.Desc
			if faculty == "" {
				faculty = DefaultSubject
			}
			for _, q := range doc.Questions {
				questions = append(questions, model.Question{
					Question:      q.Q,
					Options:       append([]string(nil), q.Options...),
					CorrectAnswer: q.Answer,
					Explanation:   q.Explanation,
					Subject:       doc.Title,
					Faculty:       faculty,
				})
			}
		} else {
			var doc dto.GroupedImportDTO
			if err := json.Unmarshal(trimmed, &doc); err != nil {
				return nil, "", fmt.Errorf("%w: %v", ErrInvalidImport, err)
			}
			format = ImportFormatGrouped
			for _, q := range doc.Questions {
				subject, faculty := doc.Subject, doc.Faculty
				if q.Subject != "" {
					subject = q.Subject
				}
				if q.Faculty != "" {
					faculty = q.Faculty
				}
				questions = append(questions, fromImport(q, subject, faculty))
			}
		}
	}

	if len(questions) == 0 {
		return nil, "", fmt.Errorf("%w: no questions", ErrInvalidImport)
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, "", fmt.Errorf("%w: question %d: %v", ErrInvalidImport, i+1, err)
		}
	}
	return questions, format, nil
}

func fromImport(q dto.ImportQuestionDTO, subject, faculty string) model.Question {
	return model.Question{
		Question:      q.Question,
		Options:       append([]string(nil), q.Options...),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Subject:       subject,
		Faculty:       faculty,
	}
}
