package content

import (
	"context"
	"fmt"

	"github.com/studyhub/backend/internal/adapter/postgres/flashcard"
	"github.com/studyhub/backend/internal/domain"
)

// CreateFlashcard creates a flashcard for the caller.
func (s *Service) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (domain.Flashcard, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Flashcard{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	card, err := s.flashcards.Create(ctx, accountID, flashcard.CreateParams{
		Question:   input.Question,
		Answer:     input.Answer,
		Subject:    input.Subject,
		Category:   input.Category,
		Difficulty: input.Difficulty,
		SourceKey:  input.SourceKey,
	})
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("create flashcard: %w", err)
	}
	return card, nil
}

// GetFlashcard returns one of the caller's flashcards.
func (s *Service) GetFlashcard(ctx context.Context, cardID string) (domain.Flashcard, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Flashcard{}, err
	}

	id, err := parseID(cardID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	card, err := s.flashcards.GetByID(ctx, accountID, id)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("get flashcard: %w", err)
	}
	return card, nil
}

// ListFlashcards returns the caller's flashcards matching the filter, newest
// first. The filter's status predicate matches on difficulty.
func (s *Service) ListFlashcards(ctx context.Context, filter domain.ListFilter) ([]domain.Flashcard, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.flashcards.List(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

// UpdateFlashcard applies a merge patch to one of the caller's flashcards.
func (s *Service) UpdateFlashcard(ctx context.Context, cardID string, input UpdateFlashcardInput) (domain.Flashcard, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Flashcard{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	id, err := parseID(cardID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	card, err := s.flashcards.Update(ctx, accountID, id, flashcard.Patch{
		Question:   input.Question,
		Answer:     input.Answer,
		Subject:    input.Subject,
		Category:   input.Category,
		Difficulty: input.Difficulty,
		SourceKey:  input.SourceKey,
	})
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("update flashcard: %w", err)
	}
	return card, nil
}

// DeleteFlashcard removes one of the caller's flashcards.
func (s *Service) DeleteFlashcard(ctx context.Context, cardID string) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(cardID)
	if err != nil {
		return err
	}

	deleted, err := s.flashcards.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
