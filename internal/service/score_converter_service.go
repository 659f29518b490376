package service

import "math"

type ScoreConverterService interface {
	// ToPercentage converts correct/total into a rounded percentage. Zero total gives 0.
	ToPercentage(correct, total int) int
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) ToPercentage(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct >= total {
		return 100
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
