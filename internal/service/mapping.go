package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
)

func toQuestionDTO(q *model.Question) dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, q)
	// JSONSlice is a named type; set it explicitly rather than rely on copier conversion
	resp.Options = append([]string(nil), q.Options...)
	return resp
}

func toQuestionDTOs(questions []model.Question) []dto.QuestionResponseDTO {
	out := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		out = append(out, toQuestionDTO(&questions[i]))
	}
	return out
}

// orderedByIDs returns questions in the order of ids, skipping ids with no question.
func orderedByIDs(ids []string, questions []model.Question) []model.Question {
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}
