package content

import (
	"context"
	"fmt"

	"github.com/studyhub/backend/internal/adapter/postgres/note"
	"github.com/studyhub/backend/internal/domain"
)

// CreateNote creates a note for the caller.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (domain.Note, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Note{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Note{}, err
	}

	n, err := s.notes.Create(ctx, accountID, note.CreateParams{
		Title:    input.Title,
		Body:     input.Body,
		Subject:  input.Subject,
		Tags:     input.Tags,
		Favorite: input.Favorite,
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// GetNote returns one of the caller's notes.
func (s *Service) GetNote(ctx context.Context, noteID string) (domain.Note, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Note{}, err
	}

	id, err := parseID(noteID)
	if err != nil {
		return domain.Note{}, err
	}

	n, err := s.notes.GetByID(ctx, accountID, id)
	if err != nil {
		return domain.Note{}, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// ListNotes returns the caller's notes matching the filter, newest first.
func (s *Service) ListNotes(ctx context.Context, filter domain.ListFilter) ([]domain.Note, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.notes.List(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// ListFavoriteNotes returns the caller's favorited notes, newest first.
func (s *Service) ListFavoriteNotes(ctx context.Context) ([]domain.Note, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.notes.ListFavorites(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list favorite notes: %w", err)
	}
	return notes, nil
}

// UpdateNote applies a merge patch to one of the caller's notes.
func (s *Service) UpdateNote(ctx context.Context, noteID string, input UpdateNoteInput) (domain.Note, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Note{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Note{}, err
	}

	id, err := parseID(noteID)
	if err != nil {
		return domain.Note{}, err
	}

	n, err := s.notes.Update(ctx, accountID, id, note.Patch{
		Title:    input.Title,
		Body:     input.Body,
		Subject:  input.Subject,
		Tags:     input.Tags,
		Favorite: input.Favorite,
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

// DeleteNote removes one of the caller's notes.
func (s *Service) DeleteNote(ctx context.Context, noteID string) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(noteID)
	if err != nil {
		return err
	}

	deleted, err := s.notes.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
