package content

import (
	"context"

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

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc     func(ctx context.Context, params account.CreateParams) (domain.Account, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.Account, error)
	GetByEmailFunc func(ctx context.Context, email string) (domain.Account, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, patch account.Patch) (domain.Account, error)
	DeactivateFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *accountRepoMock) Create(ctx context.Context, params account.CreateParams) (domain.Account, error) {
	if m.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	return m.CreateFunc(ctx, params)
}

func (m *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	if m.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *accountRepoMock) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	if m.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *accountRepoMock) Update(ctx context.Context, id uuid.UUID, patch account.Patch) (domain.Account, error) {
	if m.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but accountRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, id, patch)
}

func (m *accountRepoMock) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateFunc == nil {
		panic("accountRepoMock.DeactivateFunc: method is nil but accountRepo.Deactivate was just called")
	}
	return m.DeactivateFunc(ctx, id)
}

var _ mentorRepo = &mentorRepoMock{}

type mentorRepoMock struct {
	CreateFunc             func(ctx context.Context, accountID uuid.UUID, params mentor.CreateParams) (domain.MentorProfile, error)
	GetByIDFunc            func(ctx context.Context, accountID, id uuid.UUID) (domain.MentorProfile, error)
	GetByAccountIDFunc     func(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error)
	ListByReviewStatusFunc func(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.MentorProfile, error)
	UpdateFunc             func(ctx context.Context, accountID, id uuid.UUID, patch mentor.Patch) (domain.MentorProfile, error)
	ApproveFunc            func(ctx context.Context, id uuid.UUID) (domain.MentorProfile, error)
	RequestRereviewFunc    func(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error)
	DeleteFunc             func(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

func (m *mentorRepoMock) Create(ctx context.Context, accountID uuid.UUID, params mentor.CreateParams) (domain.MentorProfile, error) {
	if m.CreateFunc == nil {
		panic("mentorRepoMock.CreateFunc: method is nil but mentorRepo.Create was just called")
	}
	return m.CreateFunc(ctx, accountID, params)
}

func (m *mentorRepoMock) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.MentorProfile, error) {
	if m.GetByIDFunc == nil {
		panic("mentorRepoMock.GetByIDFunc: method is nil but mentorRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, accountID, id)
}

func (m *mentorRepoMock) GetByAccountID(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error) {
	if m.GetByAccountIDFunc == nil {
		panic("mentorRepoMock.GetByAccountIDFunc: method is nil but mentorRepo.GetByAccountID was just called")
	}
	return m.GetByAccountIDFunc(ctx, accountID)
}

func (m *mentorRepoMock) ListByReviewStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.MentorProfile, error) {
	if m.ListByReviewStatusFunc == nil {
		panic("mentorRepoMock.ListByReviewStatusFunc: method is nil but mentorRepo.ListByReviewStatus was just called")
	}
	return m.ListByReviewStatusFunc(ctx, status, limit)
}

func (m *mentorRepoMock) Update(ctx context.Context, accountID, id uuid.UUID, patch mentor.Patch) (domain.MentorProfile, error) {
	if m.UpdateFunc == nil {
		panic("mentorRepoMock.UpdateFunc: method is nil but mentorRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, accountID, id, patch)
}

func (m *mentorRepoMock) Approve(ctx context.Context, id uuid.UUID) (domain.MentorProfile, error) {
	if m.ApproveFunc == nil {
		panic("mentorRepoMock.ApproveFunc: method is nil but mentorRepo.Approve was just called")
	}
	return m.ApproveFunc(ctx, id)
}

func (m *mentorRepoMock) RequestRereview(ctx context.Context, accountID uuid.UUID) (domain.MentorProfile, error) {
	if m.RequestRereviewFunc == nil {
		panic("mentorRepoMock.RequestRereviewFunc: method is nil but mentorRepo.RequestRereview was just called")
	}
	return m.RequestRereviewFunc(ctx, accountID)
}

func (m *mentorRepoMock) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("mentorRepoMock.DeleteFunc: method is nil but mentorRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, accountID, id)
}

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc  func(ctx context.Context, accountID uuid.UUID, params document.CreateParams) (domain.Document, error)
	GetByIDFunc func(ctx context.Context, accountID, id uuid.UUID) (domain.Document, error)
	ListFunc    func(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Document, error)
	UpdateFunc  func(ctx context.Context, accountID, id uuid.UUID, patch document.Patch) (domain.Document, error)
	DeleteFunc  func(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

func (m *documentRepoMock) Create(ctx context.Context, accountID uuid.UUID, params document.CreateParams) (domain.Document, error) {
	if m.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	return m.CreateFunc(ctx, accountID, params)
}

func (m *documentRepoMock) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Document, error) {
	if m.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, accountID, id)
}

func (m *documentRepoMock) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Document, error) {
	if m.ListFunc == nil {
		panic("documentRepoMock.ListFunc: method is nil but documentRepo.List was just called")
	}
	return m.ListFunc(ctx, accountID, filter)
}

func (m *documentRepoMock) Update(ctx context.Context, accountID, id uuid.UUID, patch document.Patch) (domain.Document, error) {
	if m.UpdateFunc == nil {
		panic("documentRepoMock.UpdateFunc: method is nil but documentRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, accountID, id, patch)
}

func (m *documentRepoMock) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("documentRepoMock.DeleteFunc: method is nil but documentRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, accountID, id)
}

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	CreateFunc         func(ctx context.Context, accountID uuid.UUID, params summary.CreateParams) (domain.Summary, error)
	GetByIDFunc        func(ctx context.Context, accountID, id uuid.UUID) (domain.Summary, error)
	ListFunc           func(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Summary, error)
	ListByDocumentFunc func(ctx context.Context, accountID, documentID uuid.UUID) ([]domain.Summary, error)
	UpdateFunc         func(ctx context.Context, accountID, id uuid.UUID, patch summary.Patch) (domain.Summary, error)
	DeleteFunc         func(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

func (m *summaryRepoMock) Create(ctx context.Context, accountID uuid.UUID, params summary.CreateParams) (domain.Summary, error) {
	if m.CreateFunc == nil {
		panic("summaryRepoMock.CreateFunc: method is nil but summaryRepo.Create was just called")
	}
	return m.CreateFunc(ctx, accountID, params)
}

func (m *summaryRepoMock) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Summary, error) {
	if m.GetByIDFunc == nil {
		panic("summaryRepoMock.GetByIDFunc: method is nil but summaryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, accountID, id)
}

func (m *summaryRepoMock) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Summary, error) {
	if m.ListFunc == nil {
		panic("summaryRepoMock.ListFunc: method is nil but summaryRepo.List was just called")
	}
	return m.ListFunc(ctx, accountID, filter)
}

func (m *summaryRepoMock) ListByDocument(ctx context.Context, accountID, documentID uuid.UUID) ([]domain.Summary, error) {
	if m.ListByDocumentFunc == nil {
		panic("summaryRepoMock.ListByDocumentFunc: method is nil but summaryRepo.ListByDocument was just called")
	}
	return m.ListByDocumentFunc(ctx, accountID, documentID)
}

func (m *summaryRepoMock) Update(ctx context.Context, accountID, id uuid.UUID, patch summary.Patch) (domain.Summary, error) {
	if m.UpdateFunc == nil {
		panic("summaryRepoMock.UpdateFunc: method is nil but summaryRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, accountID, id, patch)
}

func (m *summaryRepoMock) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("summaryRepoMock.DeleteFunc: method is nil but summaryRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, accountID, id)
}

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc        func(ctx context.Context, accountID uuid.UUID, params note.CreateParams) (domain.Note, error)
	GetByIDFunc       func(ctx context.Context, accountID, id uuid.UUID) (domain.Note, error)
	ListFunc          func(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error)
	ListFavoritesFunc func(ctx context.Context, accountID uuid.UUID) ([]domain.Note, error)
	UpdateFunc        func(ctx context.Context, accountID, id uuid.UUID, patch note.Patch) (domain.Note, error)
	DeleteFunc        func(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

func (m *noteRepoMock) Create(ctx context.Context, accountID uuid.UUID, params note.CreateParams) (domain.Note, error) {
	if m.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	return m.CreateFunc(ctx, accountID, params)
}

func (m *noteRepoMock) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Note, error) {
	if m.GetByIDFunc == nil {
		panic("noteRepoMock.GetByIDFunc: method is nil but noteRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, accountID, id)
}

func (m *noteRepoMock) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error) {
	if m.ListFunc == nil {
		panic("noteRepoMock.ListFunc: method is nil but noteRepo.List was just called")
	}
	return m.ListFunc(ctx, accountID, filter)
}

func (m *noteRepoMock) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]domain.Note, error) {
	if m.ListFavoritesFunc == nil {
		panic("noteRepoMock.ListFavoritesFunc: method is nil but noteRepo.ListFavorites was just called")
	}
	return m.ListFavoritesFunc(ctx, accountID)
}

func (m *noteRepoMock) Update(ctx context.Context, accountID, id uuid.UUID, patch note.Patch) (domain.Note, error) {
	if m.UpdateFunc == nil {
		panic("noteRepoMock.UpdateFunc: method is nil but noteRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, accountID, id, patch)
}

func (m *noteRepoMock) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, accountID, id)
}

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	CreateFunc  func(ctx context.Context, accountID uuid.UUID, params flashcard.CreateParams) (domain.Flashcard, error)
	GetByIDFunc func(ctx context.Context, accountID, id uuid.UUID) (domain.Flashcard, error)
	ListFunc    func(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Flashcard, error)
	UpdateFunc  func(ctx context.Context, accountID, id uuid.UUID, patch flashcard.Patch) (domain.Flashcard, error)
	DeleteFunc  func(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

func (m *flashcardRepoMock) Create(ctx context.Context, accountID uuid.UUID, params flashcard.CreateParams) (domain.Flashcard, error) {
	if m.CreateFunc == nil {
		panic("flashcardRepoMock.CreateFunc: method is nil but flashcardRepo.Create was just called")
	}
	return m.CreateFunc(ctx, accountID, params)
}

func (m *flashcardRepoMock) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.Flashcard, error) {
	if m.GetByIDFunc == nil {
		panic("flashcardRepoMock.GetByIDFunc: method is nil but flashcardRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, accountID, id)
}

func (m *flashcardRepoMock) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.Flashcard, error) {
	if m.ListFunc == nil {
		panic("flashcardRepoMock.ListFunc: method is nil but flashcardRepo.List was just called")
	}
	return m.ListFunc(ctx, accountID, filter)
}

func (m *flashcardRepoMock) Update(ctx context.Context, accountID, id uuid.UUID, patch flashcard.Patch) (domain.Flashcard, error) {
	if m.UpdateFunc == nil {
		panic("flashcardRepoMock.UpdateFunc: method is nil but flashcardRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, accountID, id, patch)
}

func (m *flashcardRepoMock) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("flashcardRepoMock.DeleteFunc: method is nil but flashcardRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, accountID, id)
}

var _ studyPlanRepo = &studyPlanRepoMock{}

type studyPlanRepoMock struct {
	CreateFunc  func(ctx context.Context, accountID uuid.UUID, params studyplan.CreateParams) (domain.StudyPlan, error)
	GetByIDFunc func(ctx context.Context, accountID, id uuid.UUID) (domain.StudyPlan, error)
	ListFunc    func(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.StudyPlan, error)
	UpdateFunc  func(ctx context.Context, accountID, id uuid.UUID, patch studyplan.Patch) (domain.StudyPlan, error)
	DeleteFunc  func(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

func (m *studyPlanRepoMock) Create(ctx context.Context, accountID uuid.UUID, params studyplan.CreateParams) (domain.StudyPlan, error) {
	if m.CreateFunc == nil {
		panic("studyPlanRepoMock.CreateFunc: method is nil but studyPlanRepo.Create was just called")
	}
	return m.CreateFunc(ctx, accountID, params)
}

func (m *studyPlanRepoMock) GetByID(ctx context.Context, accountID, id uuid.UUID) (domain.StudyPlan, error) {
	if m.GetByIDFunc == nil {
		panic("studyPlanRepoMock.GetByIDFunc: method is nil but studyPlanRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, accountID, id)
}

func (m *studyPlanRepoMock) List(ctx context.Context, accountID uuid.UUID, filter domain.ListFilter) ([]domain.StudyPlan, error) {
	if m.ListFunc == nil {
		panic("studyPlanRepoMock.ListFunc: method is nil but studyPlanRepo.List was just called")
	}
	return m.ListFunc(ctx, accountID, filter)
}

func (m *studyPlanRepoMock) Update(ctx context.Context, accountID, id uuid.UUID, patch studyplan.Patch) (domain.StudyPlan, error) {
	if m.UpdateFunc == nil {
		panic("studyPlanRepoMock.UpdateFunc: method is nil but studyPlanRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, accountID, id, patch)
}

func (m *studyPlanRepoMock) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	if m.DeleteFunc == nil {
		panic("studyPlanRepoMock.DeleteFunc: method is nil but studyPlanRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, accountID, id)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}
