package content

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/domain"
)

// CreateAccountInput holds the fields for registering a new account.
type CreateAccountInput struct {
	ExternalID  string
	Email       string
	Name        string
	Role        domain.AccountRole
	Preferences []byte
}

// Validate checks all fields and collects all errors.
func (i *CreateAccountInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ExternalID) == "" {
		errs = append(errs, domain.FieldError{Field: "external_id", Message: "required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid address"})
	}
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateAccountInput is a merge patch for the caller's own account.
// Role changes go through UpdateAccountRole, not here.
type UpdateAccountInput struct {
	Name        *string
	Preferences []byte
	Active      *bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateAccountInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateMentorProfileInput holds the fields for a new mentor profile.
type CreateMentorProfileInput struct {
	Specialization  string
	ExperienceYears int
}

// Validate checks all fields and collects all errors.
func (i *CreateMentorProfileInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Specialization) == "" {
		errs = append(errs, domain.FieldError{Field: "specialization", Message: "required"})
	}
	if i.ExperienceYears < 0 {
		errs = append(errs, domain.FieldError{Field: "experience_years", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMentorProfileInput is a merge patch for a mentor profile.
type UpdateMentorProfileInput struct {
	Specialization  *string
	ExperienceYears *int
	Rating          *float64
}

// Validate checks all fields and collects all errors.
func (i *UpdateMentorProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Specialization != nil && strings.TrimSpace(*i.Specialization) == "" {
		errs = append(errs, domain.FieldError{Field: "specialization", Message: "must not be blank"})
	}
	if i.ExperienceYears != nil && *i.ExperienceYears < 0 {
		errs = append(errs, domain.FieldError{Field: "experience_years", Message: "must be non-negative"})
	}
	if i.Rating != nil && (*i.Rating < 0 || *i.Rating > 5) {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateDocumentInput holds the fields for a new document.
type CreateDocumentInput struct {
	Title       string
	StorageKey  string
	SizeBytes   int64
	ContentType string
	Subject     string
	Category    string
	Tags        []string
	Status      domain.DocumentStatus
}

// Validate checks all fields and collects all errors.
func (i *CreateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.SizeBytes < 0 {
		errs = append(errs, domain.FieldError{Field: "size_bytes", Message: "must be non-negative"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDocumentInput is a merge patch for a document.
type UpdateDocumentInput struct {
	Title       *string
	StorageKey  *string
	SizeBytes   *int64
	ContentType *string
	Subject     *string
	Category    *string
	Tags        []string
	Status      *domain.DocumentStatus
}

// Validate checks all fields and collects all errors.
func (i *UpdateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
	}
	if i.SizeBytes != nil && *i.SizeBytes < 0 {
		errs = append(errs, domain.FieldError{Field: "size_bytes", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSummaryInput holds the fields for a new summary. WordCount and
// ReadingMinutes are derived from the body when left at zero.
type CreateSummaryInput struct {
	DocumentID     *uuid.UUID
	Title          string
	Body           string
	KeyPoints      []string
	WordCount      int
	ReadingMinutes int
	Difficulty     domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i *CreateSummaryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.WordCount < 0 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "must be non-negative"})
	}
	if i.ReadingMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "reading_minutes", Message: "must be non-negative"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}
	if i.DocumentID != nil && *i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "must not be nil"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSummaryInput is a merge patch for a summary.
type UpdateSummaryInput struct {
	Title          *string
	Body           *string
	KeyPoints      []string
	WordCount      *int
	ReadingMinutes *int
	Difficulty     *domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i *UpdateSummaryInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
	}
	if i.WordCount != nil && *i.WordCount < 0 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "must be non-negative"})
	}
	if i.ReadingMinutes != nil && *i.ReadingMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "reading_minutes", Message: "must be non-negative"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateNoteInput holds the fields for a new note.
type CreateNoteInput struct {
	Title    string
	Body     string
	Subject  string
	Tags     []string
	Favorite bool
}

// Validate checks all fields and collects all errors.
func (i *CreateNoteInput) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return domain.NewValidationError("title", "required")
	}
	return nil
}

// UpdateNoteInput is a merge patch for a note.
type UpdateNoteInput struct {
	Title    *string
	Body     *string
	Subject  *string
	Tags     []string
	Favorite *bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateNoteInput) Validate() error {
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		return domain.NewValidationError("title", "must not be blank")
	}
	return nil
}

// CreateFlashcardInput holds the fields for a new flashcard.
type CreateFlashcardInput struct {
	Question   string
	Answer     string
	Subject    string
	Category   string
	Difficulty domain.Difficulty
	SourceKey  string
}

// Validate checks all fields and collects all errors.
func (i *CreateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateFlashcardInput is a merge patch for a flashcard.
type UpdateFlashcardInput struct {
	Question   *string
	Answer     *string
	Subject    *string
	Category   *string
	Difficulty *domain.Difficulty
	SourceKey  *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.Question != nil && strings.TrimSpace(*i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "must not be blank"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateStudyPlanInput holds the fields for a new study plan.
type CreateStudyPlanInput struct {
	Title        string
	Description  string
	Subjects     []string
	StartDate    time.Time
	EndDate      time.Time
	DailyMinutes int
	Plan         []byte
	Status       domain.PlanStatus
}

// Validate checks all fields and collects all errors.
func (i *CreateStudyPlanInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if !i.EndDate.IsZero() && i.EndDate.Before(i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not precede start_date"})
	}
	if i.DailyMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "daily_minutes", Message: "must be non-negative"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStudyPlanInput is a merge patch for a study plan.
type UpdateStudyPlanInput struct {
	Title        *string
	Description  *string
	Subjects     []string
	StartDate    *time.Time
	EndDate      *time.Time
	DailyMinutes *int
	Plan         []byte
	Status       *domain.PlanStatus
}

// Validate checks all fields and collects all errors.
func (i *UpdateStudyPlanInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
	}
	if i.DailyMinutes != nil && *i.DailyMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "daily_minutes", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
