package service

import (
	"context"
	"errors"

	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

var ErrSurveyNotFound = errors.New("survey not found")

// SurveyService manages the survey and theme catalog.
type SurveyService struct {
	surveyRepo repository.SurveyRepo
}

func NewSurveyService(surveyRepo repository.SurveyRepo) *SurveyService {
	return &SurveyService{surveyRepo: surveyRepo}
}

func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) error {
	return s.surveyRepo.Create(ctx, survey)
}

func (s *SurveyService) Get(ctx context.Context, id string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

func (s *SurveyService) List(ctx context.Context) ([]model.Survey, error) {
	return s.surveyRepo.List(ctx)
}
