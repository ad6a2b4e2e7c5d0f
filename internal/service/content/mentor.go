package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/studyhub/backend/internal/adapter/postgres/mentor"
	"github.com/studyhub/backend/internal/domain"
	"github.com/studyhub/backend/pkg/ctxutil"
)

// CreateMentorProfile creates the caller's mentor profile in PENDING review.
// An account has at most one profile; a second create is a conflict.
func (s *Service) CreateMentorProfile(ctx context.Context, input CreateMentorProfileInput) (domain.MentorProfile, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.MentorProfile{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.MentorProfile{}, err
	}

	profile, err := s.mentors.Create(ctx, accountID, mentor.CreateParams{
		Specialization:  input.Specialization,
		ExperienceYears: input.ExperienceYears,
	})
	if err != nil {
		return domain.MentorProfile{}, fmt.Errorf("create mentor profile: %w", err)
	}

	s.log.InfoContext(ctx, "mentor profile created",
		slog.String("account_id", accountID.String()),
		slog.String("profile_id", profile.ID.String()),
	)

	return profile, nil
}

// GetMentorProfile returns the caller's own mentor profile.
func (s *Service) GetMentorProfile(ctx context.Context) (domain.MentorProfile, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.MentorProfile{}, err
	}

	profile, err := s.mentors.GetByAccountID(ctx, accountID)
	if err != nil {
		return domain.MentorProfile{}, fmt.Errorf("get mentor profile: %w", err)
	}
	return profile, nil
}

// UpdateMentorProfile applies a merge patch to the caller's profile. The
// review status is untouched: edits do not reset an approval on their own.
func (s *Service) UpdateMentorProfile(ctx context.Context, profileID string, input UpdateMentorProfileInput) (domain.MentorProfile, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.MentorProfile{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.MentorProfile{}, err
	}

	id, err := parseID(profileID)
	if err != nil {
		return domain.MentorProfile{}, err
	}

	profile, err := s.mentors.Update(ctx, accountID, id, mentor.Patch{
		Specialization:  input.Specialization,
		ExperienceYears: input.ExperienceYears,
		Rating:          input.Rating,
	})
	if err != nil {
		return domain.MentorProfile{}, fmt.Errorf("update mentor profile: %w", err)
	}
	return profile, nil
}

// ListPendingMentorProfiles returns the review queue, newest first.
// Restricted to administrators.
func (s *Service) ListPendingMentorProfiles(ctx context.Context, limit int) ([]domain.MentorProfile, error) {
	role, _ := ctxutil.RoleFromCtx(ctx)
	if !role.CanApproveMentors() {
		return nil, domain.ErrForbidden
	}

	profiles, err := s.mentors.ListByReviewStatus(ctx, domain.ReviewStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending mentor profiles: %w", err)
	}
	return profiles, nil
}

// ApproveMentorProfile moves a profile to APPROVED. Restricted to
// administrators; idempotent for an already approved profile.
func (s *Service) ApproveMentorProfile(ctx context.Context, profileID string) (domain.MentorProfile, error) {
	role, _ := ctxutil.RoleFromCtx(ctx)
	if !role.CanApproveMentors() {
		return domain.MentorProfile{}, domain.ErrForbidden
	}

	id, err := parseID(profileID)
	if err != nil {
		return domain.MentorProfile{}, err
	}

	profile, err := s.mentors.Approve(ctx, id)
	if err != nil {
		return domain.MentorProfile{}, fmt.Errorf("approve mentor profile: %w", err)
	}

	s.log.InfoContext(ctx, "mentor profile approved",
		slog.String("profile_id", profile.ID.String()),
	)

	return profile, nil
}

// RequestMentorRereview puts the caller's profile back into PENDING review.
// This is the only transition out of APPROVED.
func (s *Service) RequestMentorRereview(ctx context.Context) (domain.MentorProfile, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.MentorProfile{}, err
	}

	profile, err := s.mentors.RequestRereview(ctx, accountID)
	if err != nil {
		return domain.MentorProfile{}, fmt.Errorf("request mentor rereview: %w", err)
	}

	s.log.InfoContext(ctx, "mentor rereview requested",
		slog.String("profile_id", profile.ID.String()),
	)

	return profile, nil
}

// DeleteMentorProfile removes the caller's profile.
func (s *Service) DeleteMentorProfile(ctx context.Context, profileID string) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(profileID)
	if err != nil {
		return err
	}

	deleted, err := s.mentors.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("delete mentor profile: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
