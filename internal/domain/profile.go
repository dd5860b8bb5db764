package domain

import (
	"context"
	"time"
)

// CandidateProfile is the canonical extracted-CV record. At most one live
// profile exists per owner; re-upload or manual edit replaces all fields.
type CandidateProfile struct {
	OwnerID        int64     `json:"owner_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Summary        string    `json:"summary"`
	Major          string    `json:"major"`
	GPA            *float64  `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Skills         []string  `json:"skills"`
	Education      []string  `json:"education"`
	Experience     []string  `json:"experience"`
	Certifications []string  `json:"certifications"`
	Languages      []string  `json:"languages"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RawExtractionPayload is the untyped output of the language-model extraction
// step. List-field entries may be strings or nested objects; it exists only
// between extraction and validation and is never persisted.
type RawExtractionPayload map[string]any

// FilterCriteria is an optional conjunction of candidate filters. Absent
// fields impose no constraint. Skills is comma-separated on input.
type FilterCriteria struct {
	GPAMin *float64 `form:"gpa_min" binding:"omitempty,gte=0,lte=4"`
	GPAMax *float64 `form:"gpa_max" binding:"omitempty,gte=0,lte=4"`
	Major  string   `form:"major"`
	Skills string   `form:"skills"`
	Search string   `form:"search"`
}

// ComparisonEntry is one row of the comparison view: a candidate with the
// derived counts and composite score. Exactly one entry in a non-empty
// result carries IsStrongest.
type ComparisonEntry struct {
	Profile             RankedProfile `json:"profile"`
	GPA                 float64       `json:"gpa"`
	SkillsCount         int           `json:"skills_count"`
	ExperienceCount     int           `json:"experience_count"`
	EducationCount      int           `json:"education_count"`
	CertificationsCount int           `json:"certifications_count"`
	Score               float64       `json:"score"`
	IsStrongest         bool          `json:"is_strongest"`
}

// RankedProfile joins a profile with its owner's identity record. Owner is
// nil when the identity record is missing; such profiles are surfaced, not
// dropped.
type RankedProfile struct {
	CandidateProfile
	Owner *User `json:"owner"`
}

// ProfileEditRequest is the manual-edit payload: a full replacement of the
// profile, same contract as a re-upload.
type ProfileEditRequest struct {
	FullName       string   `json:"full_name" binding:"max=200"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone" binding:"max=50"`
	Summary        string   `json:"summary"`
	Major          string   `json:"major" binding:"max=200"`
	GPA            *float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	Skills         []string `json:"skills"`
	Education      []string `json:"education"`
	Experience     []string `json:"experience"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

// UploadResult is returned after a successful CV upload so the client can
// show the freshly extracted fields.
type UploadResult struct {
	Filename string            `json:"filename"`
	Profile  *CandidateProfile `json:"profile"`
}

// ProfileOverview is the student dashboard view: the profile (possibly nil)
// plus a completeness percentage over the eight tracked fields.
type ProfileOverview struct {
	Profile      *CandidateProfile `json:"profile"`
	Completeness int               `json:"completeness"`
}

// ProfileRepository is the persistence adapter for candidate profiles.
// Upsert must be a single atomic replace-or-insert keyed by owner id;
// read methods degrade to nil/empty instead of propagating connectivity
// failures, write methods fail loud.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *CandidateProfile) error
	Get(ctx context.Context, ownerID int64) (*CandidateProfile, error)
	ListAll(ctx context.Context) ([]CandidateProfile, error)
	Delete(ctx context.Context, ownerID int64) (bool, error)
}

type ProfileUsecase interface {
	UploadCV(ctx context.Context, ownerID int64, content []byte, filename string) (*UploadResult, error)
	GetOverview(ctx context.Context, ownerID int64) (*ProfileOverview, error)
	GetProfile(ctx context.Context, ownerID int64) (*RankedProfile, error)
	UpdateProfile(ctx context.Context, ownerID int64, req ProfileEditRequest) (*CandidateProfile, error)
	BrowseStudents(ctx context.Context, viewerID int64) ([]RankedProfile, error)
}

type ScreeningUsecase interface {
	BrowseCandidates(ctx context.Context, criteria FilterCriteria) ([]RankedProfile, error)
	CompareCandidates(ctx context.Context, ownerIDs []int64) ([]ComparisonEntry, error)
}
