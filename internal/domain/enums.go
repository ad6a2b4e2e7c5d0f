package domain

// AccountRole represents the authorization level of an account.
type AccountRole string

const (
	RoleLearner    AccountRole = "learner"
	RoleMentor     AccountRole = "mentor"
	RoleAdmin      AccountRole = "admin"
	RoleSuperAdmin AccountRole = "superadmin"
)

func (r AccountRole) String() string { return string(r) }

func (r AccountRole) IsValid() bool {
	switch r {
	case RoleLearner, RoleMentor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CanApproveMentors reports whether the role may change a mentor profile's
// review status to APPROVED.
func (r AccountRole) CanApproveMentors() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ReviewStatus represents the moderation state of a mentor profile.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved:
		return true
	}
	return false
}

// DocumentStatus represents the lifecycle state of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusUploaded   DocumentStatus = "UPLOADED"
	DocumentStatusProcessing DocumentStatus = "PROCESSING"
	DocumentStatusReady      DocumentStatus = "READY"
	DocumentStatusArchived   DocumentStatus = "ARCHIVED"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusUploaded, DocumentStatusProcessing, DocumentStatusReady, DocumentStatusArchived:
		return true
	}
	return false
}

// PlanStatus represents the state of a study plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "ACTIVE"
	PlanStatusCompleted PlanStatus = "COMPLETED"
	PlanStatusArchived  PlanStatus = "ARCHIVED"
)

func (s PlanStatus) String() string { return string(s) }

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusActive, PlanStatusCompleted, PlanStatusArchived:
		return true
	}
	return false
}

// Difficulty tags summaries and flashcards by perceived effort.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
