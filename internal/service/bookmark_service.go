package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type BookmarkService interface {
	AddBookmark(ctx context.Context, userID, questionID string) (*dto.BookmarkResponseDTO, error)
	RemoveBookmark(ctx context.Context, userID, questionID string) error
	ListBookmarks(ctx context.Context, userID string) ([]dto.BookmarkResponseDTO, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	questionRepo repository.QuestionRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, questionRepo repository.QuestionRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo, questionRepo: questionRepo}
}

func (s *bookmarkService) AddBookmark(ctx context.Context, userID, questionID string) (*dto.BookmarkResponseDTO, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	bookmark := model.Bookmark{UserID: userID, QuestionID: question.ID}
	if err := s.bookmarkRepo.Create(ctx, &bookmark); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrAlreadyBookmarked
		}
		log.Error().Err(err).Str("userID", userID).Str("questionID", questionID).Msg("Failed to create bookmark")
		return nil, fmt.Errorf("error creating bookmark: %w", err)
	}

	return &dto.BookmarkResponseDTO{
		QuestionID:   question.ID,
		Question:     toQuestionDTO(question),
		BookmarkedAt: bookmark.CreatedAt,
	}, nil
}

func (s *bookmarkService) RemoveBookmark(ctx context.Context, userID, questionID string) error {
	if userID == "" {
		return ErrMissingUser
	}
	return s.bookmarkRepo.Delete(ctx, userID, questionID)
}

// ListBookmarks skips bookmarks whose question has since been deleted.
func (s *bookmarkService) ListBookmarks(ctx context.Context, userID string) ([]dto.BookmarkResponseDTO, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	bookmarks, err := s.bookmarkRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to list bookmarks")
		return nil, fmt.Errorf("error fetching bookmarks: %w", err)
	}

	out := make([]dto.BookmarkResponseDTO, 0, len(bookmarks))
	for i := range bookmarks {
		b := &bookmarks[i]
		if b.Question.ID == "" {
			continue
		}
		out = append(out, dto.BookmarkResponseDTO{
			QuestionID:   b.QuestionID,
			Question:     toQuestionDTO(&b.Question),
			BookmarkedAt: b.CreatedAt,
		})
	}
	return out, nil
}
