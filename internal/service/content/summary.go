package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/studyhub/backend/internal/adapter/postgres/summary"
	"github.com/studyhub/backend/internal/domain"
)

// Reading speed used to derive reading minutes from a summary body.
const wordsPerMinute = 200

// CreateSummary creates a summary for the caller. When the summary is linked
// to a document, the link is verified to resolve within the caller's own
// content in the same transaction as the insert, so a concurrent document
// delete cannot leave a dangling reference. Zero word count and reading
// minutes are derived from the body.
func (s *Service) CreateSummary(ctx context.Context, input CreateSummaryInput) (domain.Summary, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Summary{}, err
	}

	wordCount := input.WordCount
	if wordCount == 0 {
		wordCount = len(strings.Fields(input.Body))
	}
	readingMinutes := input.ReadingMinutes
	if readingMinutes == 0 && wordCount > 0 {
		readingMinutes = (wordCount + wordsPerMinute - 1) / wordsPerMinute
	}

	params := summary.CreateParams{
		DocumentID:     input.DocumentID,
		Title:          input.Title,
		Body:           input.Body,
		KeyPoints:      input.KeyPoints,
		WordCount:      wordCount,
		ReadingMinutes: readingMinutes,
		Difficulty:     input.Difficulty,
	}

	var created domain.Summary
	if input.DocumentID == nil {
		created, err = s.summaries.Create(ctx, accountID, params)
	} else {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			if _, err := s.documents.GetByID(ctx, accountID, *input.DocumentID); err != nil {
				return err
			}
			var txErr error
			created, txErr = s.summaries.Create(ctx, accountID, params)
			return txErr
		})
	}
	if err != nil {
		return domain.Summary{}, fmt.Errorf("create summary: %w", err)
	}

	s.log.InfoContext(ctx, "summary created",
		slog.String("account_id", accountID.String()),
		slog.String("summary_id", created.ID.String()),
	)

	return created, nil
}

// GetSummary returns one of the caller's summaries.
func (s *Service) GetSummary(ctx context.Context, summaryID string) (domain.Summary, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	id, err := parseID(summaryID)
	if err != nil {
		return domain.Summary{}, err
	}

	sum, err := s.summaries.GetByID(ctx, accountID, id)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("get summary: %w", err)
	}
	return sum, nil
}

// ListSummaries returns the caller's summaries matching the filter, newest
// first. The filter's status predicate matches on difficulty.
func (s *Service) ListSummaries(ctx context.Context, filter domain.ListFilter) ([]domain.Summary, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	sums, err := s.summaries.List(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return sums, nil
}

// ListSummariesByDocument returns the caller's summaries derived from one
// document, newest first.
func (s *Service) ListSummariesByDocument(ctx context.Context, documentID string) ([]domain.Summary, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(documentID)
	if err != nil {
		return nil, err
	}

	sums, err := s.summaries.ListByDocument(ctx, accountID, id)
	if err != nil {
		return nil, fmt.Errorf("list summaries by document: %w", err)
	}
	return sums, nil
}

// UpdateSummary applies a merge patch to one of the caller's summaries.
// The document link cannot be changed after creation.
func (s *Service) UpdateSummary(ctx context.Context, summaryID string, input UpdateSummaryInput) (domain.Summary, error) {
	accountID, err := tenantID(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Summary{}, err
	}

	id, err := parseID(summaryID)
	if err != nil {
		return domain.Summary{}, err
	}

	sum, err := s.summaries.Update(ctx, accountID, id, summary.Patch{
		Title:          input.Title,
		Body:           input.Body,
		KeyPoints:      input.KeyPoints,
		WordCount:      input.WordCount,
		ReadingMinutes: input.ReadingMinutes,
		Difficulty:     input.Difficulty,
	})
	if err != nil {
		return domain.Summary{}, fmt.Errorf("update summary: %w", err)
	}
	return sum, nil
}

// DeleteSummary removes one of the caller's summaries.
func (s *Service) DeleteSummary(ctx context.Context, summaryID string) error {
	accountID, err := tenantID(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(summaryID)
	if err != nil {
		return err
	}

	deleted, err := s.summaries.Delete(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
