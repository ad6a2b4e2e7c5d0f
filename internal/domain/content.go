package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded study file. Only the storage locator and metadata
// live here; the bytes stay in the external object store.
type Document struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Title       string
	StorageKey  string
	SizeBytes   int64
	ContentType string
	Subject     string
	Category    string
	Tags        []string
	Status      DocumentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary is a condensed rendition of study material, optionally derived
// from a document owned by the same account.
type Summary struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	DocumentID     *uuid.UUID
	Title          string
	Body           string
	KeyPoints      []string
	WordCount      int
	ReadingMinutes int
	Difficulty     Difficulty
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Note is a free-form study note.
type Note struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Title     string
	Body      string
	Subject   string
	Tags      []string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Flashcard is a question/answer pair used by the card study session.
type Flashcard struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Question   string
	Answer     string
	Subject    string
	Category   string
	Difficulty Difficulty
	SourceKey  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StudyPlan is a scheduled learning programme with an opaque plan payload.
type StudyPlan struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Title        string
	Description  string
	Subjects     []string
	StartDate    time.Time
	EndDate      time.Time
	DailyMinutes int
	Plan         []byte // opaque payload, stored as jsonb
	Status       PlanStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsageStats aggregates per-tenant content counters for the dashboard.
type UsageStats struct {
	DocumentCount         int
	SummaryCount          int
	NoteCount             int
	FlashcardCount        int
	TotalItems            int
	EstimatedMinutesSaved int
	UtilizationPercent    int
}
