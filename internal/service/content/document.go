package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/studyhub/backend/internal/adapter/postgres/document"
	"github.com/studyhub/backend/internal/domain"
)

// CreateDocument registers an uploaded source document for the caller.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (domain.Document, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Document{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Document{}, err
	}

	doc, err := s.documents.Create(ctx, accountID, document.CreateParams{
		Title:       input.Title,
		StorageKey:  input.StorageKey,
		SizeBytes:   input.SizeBytes,
		ContentType: input.ContentType,
		Subject:     input.Subject,
		Category:    input.Category,
		Tags:        input.Tags,
		Status:      input.Status,
	})
	if err != nil {
		return domain.Document{}, fmt.Errorf("create document: %w", err)
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("account_id", accountID.String()),
		slog.String("document_id", doc.ID.String()),
	)

	return doc, nil
}

// GetDocument returns one of the caller's documents.
func (s *Service) GetDocument(ctx context.Context, documentID string) (domain.Document, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Document{}, err
	}

	id, err := parseID(documentID)
	if err != nil {
		return domain.Document{}, err
	}

	doc, err := s.documents.GetByID(ctx, accountID, id)
	if err != nil {
		return domain.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns the caller's documents matching the filter,
// newest first.
func (s *Service) ListDocuments(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.documents.List(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// UpdateDocument applies a merge patch to one of the caller's documents.
func (s *Service) UpdateDocument(ctx context.Context, documentID string, input UpdateDocumentInput) (domain.Document, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Document{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Document{}, err
	}

	id, err := parseID(documentID)
	if err != nil {
		return domain.Document{}, err
	}

	doc, err := s.documents.Update(ctx, accountID, id, document.Patch{
		Title:       input.Title,
		StorageKey:  input.StorageKey,
		SizeBytes:   input.SizeBytes,
		ContentType: input.ContentType,
		Subject:     input.Subject,
		Category:    input.Category,
		Tags:        input.Tags,
		Status:      input.Status,
	})
	if err != nil {
		return domain.Document{}, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

// DeleteDocument removes a document together with the summaries derived from
// it. The cascade happens in one statement, so there is no window where a
// summary outlives its document.
func (s *Service) DeleteDocument(ctx context.Context, documentID string) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(documentID)
	if err != nil {
		return err
	}

	deleted, err := s.documents.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("account_id", accountID.String()),
		slog.String("document_id", id.String()),
	)

	return nil
}
