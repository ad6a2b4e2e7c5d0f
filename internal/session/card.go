// Package session holds the in-memory study session engines. A session is a
// plain value owned by exactly one caller context: no shared state, no
// locking, and every transition is total: index arithmetic is modular or
// clamped so navigation can never fail mid-session.
package session

import (
	"errors"

	"github.com/studyhub/backend/internal/domain"
)

// ErrEmptySlice is returned when a session is started over no content.
// Callers are expected to reject empty slices before starting; this is the
// engine's only fallible point.
var ErrEmptySlice = errors.New("session: empty slice")

// CardSession drives flashcard study over a filtered slice of cards.
// The zero value is an idle session.
type CardSession struct {
	cards    []domain.Flashcard
	index    int
	revealed bool
	active   bool
}

// StartCardSession begins a session over the given cards, at the first card
// with the answer hidden. The slice must contain at least one card.
func StartCardSession(cards []domain.Flashcard) (CardSession, error) {
	if len(cards) == 0 {
		return CardSession{}, ErrEmptySlice
	}
	return CardSession{cards: cards, active: true}, nil
}

// Active reports whether the session is in progress.
func (s *CardSession) Active() bool { return s.active }

// Len returns the number of cards in the session.
func (s *CardSession) Len() int { return len(s.cards) }

// Index returns the current 0-based position.
func (s *CardSession) Index() int { return s.index }

// Current returns the card under the cursor.
// Only meaningful while the session is active.
func (s *CardSession) Current() domain.Flashcard {
	if !s.active {
		return domain.Flashcard{}
	}
	return s.cards[s.index]
}

// Revealed reports whether the current card's answer is showing.
func (s *CardSession) Revealed() bool { return s.revealed }

// Reveal shows the current card's answer. Idempotent.
func (s *CardSession) Reveal() {
	if s.active {
		s.revealed = true
	}
}

// Hide covers the current card's answer. Idempotent.
func (s *CardSession) Hide() {
	s.revealed = false
}

// Next advances to the following card, wrapping past the last card back to
// the first. The answer is hidden again.
func (s *CardSession) Next() {
	if !s.active {
		return
	}
	s.index = (s.index + 1) % len(s.cards)
	s.revealed = false
}

// Previous steps back one card, wrapping from the first card to the last.
// The answer is hidden again.
func (s *CardSession) Previous() {
	if !s.active {
		return
	}
	s.index = (s.index - 1 + len(s.cards)) % len(s.cards)
	s.revealed = false
}

// Exit ends the session and discards its local state.
func (s *CardSession) Exit() {
	*s = CardSession{}
}
