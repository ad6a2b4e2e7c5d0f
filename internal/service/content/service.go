// Package content implements the study-content business logic: validated
// create/update payloads, role gates, and tenant scoping over the entity
// repositories. The tenant identity always comes from the request context.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/adapter/postgres/account"
	"github.com/studyhub/backend/internal/adapter/postgres/document"
	"github.com/studyhub/backend/internal/adapter/postgres/flashcard"
	"github.com/studyhub/backend/internal/adapter/postgres/mentor"
	"github.com/studyhub/backend/internal/adapter/postgres/note"
	"github.com/studyhub/backend/internal/adapter/postgres/studyplan"
	"github.com/studyhub/backend/internal/adapter/postgres/summary"
	"github.com/studyhub/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type accountRepo interface {
	Create(ctx context.Context, params account.CreateParams) (domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Update(ctx context.Context, id uuid.UUID, patch account.Patch) (domain.Account, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type mentorRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, params mentor.CreateParams) (domain.MentorProfile, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.MentorProfile, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error)
	ListByReviewStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.MentorProfile, error)
	Update(ctx context.Context, accountID, id uuid.UUID, patch mentor.Patch) (domain.MentorProfile, error)
	Approve(ctx context.Context, id uuid.UUID) (domain.MentorProfile, error)
	RequestRereview(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type documentRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, params document.CreateParams) (domain.Document, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Document, error)
	List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Document, error)
	Update(ctx context.Context, accountID, id uuid.UUID, patch document.Patch) (domain.Document, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type summaryRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, params summary.CreateParams) (domain.Summary, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Summary, error)
	List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Summary, error)
	ListByDocument(ctx context.Context, accountID, documentID uuid.UUID) ([]domain.Summary, error)
	Update(ctx context.Context, accountID, id uuid.UUID, patch summary.Patch) (domain.Summary, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type noteRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, params note.CreateParams) (domain.Note, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Note, error)
	List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error)
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]domain.Note, error)
	Update(ctx context.Context, accountID, id uuid.UUID, patch note.Patch) (domain.Note, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type flashcardRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, params flashcard.CreateParams) (domain.Flashcard, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Flashcard, error)
	List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Flashcard, error)
	Update(ctx context.Context, accountID, id uuid.UUID, patch flashcard.Patch) (domain.Flashcard, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type studyPlanRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, params studyplan.CreateParams) (domain.StudyPlan, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.StudyPlan, error)
	List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.StudyPlan, error)
	Update(ctx context.Context, accountID, id uuid.UUID, patch studyplan.Patch) (domain.StudyPlan, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study-content business logic.
type Service struct {
	accounts   accountRepo
	mentors    mentorRepo
	documents  documentRepo
	summaries  summaryRepo
	notes      noteRepo
	flashcards flashcardRepo
	plans      studyPlanRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new content service.
func NewService(
	log *slog.Logger,
	accounts accountRepo,
	mentors mentorRepo,
	documents documentRepo,
	summaries summaryRepo,
	notes noteRepo,
	flashcards flashcardRepo,
	plans studyPlanRepo,
	tx txManager,
) *Service {
	return &Service{
		accounts:   accounts,
		mentors:    mentors,
		documents:  documents,
		summaries:  summaries,
		notes:      notes,
		flashcards: flashcards,
		plans:      plans,
		tx:         tx,
		log:        log.With("service", "content"),
	}
}
