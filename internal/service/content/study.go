package content

import (
	"context"
	"fmt"

	"github.com/studyhub/backend/internal/domain"
	"github.com/studyhub/backend/internal/session"
)

// StartCardSession loads the caller's flashcards matching the filter and
// begins a study session over them. The session value belongs to the caller;
// the service keeps no state for it. An empty selection fails with
// session.ErrEmptySlice.
func (s *Service) StartCardSession(ctx context.Context, filter domain.ListFilter) (session.CardSession, error) {
	cards, err := s.ListFlashcards(ctx, filter)
	if err != nil {
		return session.CardSession{}, err
	}

	cs, err := session.StartCardSession(cards)
	if err != nil {
		return session.CardSession{}, fmt.Errorf("start card session: %w", err)
	}
	return cs, nil
}
