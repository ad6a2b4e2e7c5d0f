package content

import (
	"context"
	"fmt"

	"github.com/studyhub/backend/internal/adapter/postgres/studyplan"
	"github.com/studyhub/backend/internal/domain"
)

// CreateStudyPlan creates a study plan for the caller.
func (s *Service) CreateStudyPlan(ctx context.Context, input CreateStudyPlanInput) (domain.StudyPlan, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.StudyPlan{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.StudyPlan{}, err
	}

	plan, err := s.plans.Create(ctx, accountID, studyplan.CreateParams{
		Title:        input.Title,
		Description:  input.Description,
		Subjects:     input.Subjects,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		DailyMinutes: input.DailyMinutes,
		Plan:         input.Plan,
		Status:       input.Status,
	})
	if err != nil {
		return domain.StudyPlan{}, fmt.Errorf("create study plan: %w", err)
	}
	return plan, nil
}

// GetStudyPlan returns one of the caller's study plans.
func (s *Service) GetStudyPlan(ctx context.Context, planID string) (domain.StudyPlan, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.StudyPlan{}, err
	}

	id, err := parseID(planID)
	if err != nil {
		return domain.StudyPlan{}, err
	}

	plan, err := s.plans.GetByID(ctx, accountID, id)
	if err != nil {
		return domain.StudyPlan{}, fmt.Errorf("get study plan: %w", err)
	}
	return plan, nil
}

// ListStudyPlans returns the caller's plans matching the filter, newest first.
func (s *Service) ListStudyPlans(ctx context.Context, filter domain.ListFilter) ([]domain.StudyPlan, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.plans.List(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("list study plans: %w", err)
	}
	return plans, nil
}

// UpdateStudyPlan applies a merge patch to one of the caller's study plans.
func (s *Service) UpdateStudyPlan(ctx context.Context, planID string, input UpdateStudyPlanInput) (domain.StudyPlan, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.StudyPlan{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.StudyPlan{}, err
	}

	id, err := parseID(planID)
	if err != nil {
		return domain.StudyPlan{}, err
	}

	plan, err := s.plans.Update(ctx, accountID, id, studyplan.Patch{
		Title:        input.Title,
		Description:  input.Description,
		Subjects:     input.Subjects,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		DailyMinutes: input.DailyMinutes,
		Plan:         input.Plan,
		Status:       input.Status,
	})
	if err != nil {
		return domain.StudyPlan{}, fmt.Errorf("update study plan: %w", err)
	}
	return plan, nil
}

// DeleteStudyPlan removes one of the caller's study plans.
func (s *Service) DeleteStudyPlan(ctx context.Context, planID string) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(planID)
	if err != nil {
		return err
	}

	deleted, err := s.plans.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("delete study plan: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
