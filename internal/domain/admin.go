package domain

import "context"

// AdminStats contains the admin dashboard analytics, computed over the full
// profile set on each request.
type AdminStats struct {
	TotalStudents      int64            `json:"total_students"`
	TotalCompanies     int64            `json:"total_companies"`
	TotalAdmins        int64            `json:"total_admins"`
	TotalProfiles      int64            `json:"total_profiles"`
	MostCommonSkills   []SkillCount     `json:"most_common_skills"`
	MajorsDistribution []MajorCount     `json:"majors_distribution"`
	AverageGPA         float64          `json:"average_gpa"`
	GPADistribution    map[string]int64 `json:"gpa_distribution"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type MajorCount struct {
	Major string `json:"major"`
	Count int64  `json:"count"`
}

// AdminUserEntry is a user row in the admin list, flagged with whether a CV
// profile exists for the account.
type AdminUserEntry struct {
	User
	HasCVProfile bool `json:"has_cv_profile"`
}

// AdminUserDetail joins a user with their CV profile (nil when absent).
type AdminUserDetail struct {
	User    *User             `json:"user"`
	Profile *CandidateProfile `json:"profile"`
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context) ([]AdminUserEntry, error)
	GetUserDetail(ctx context.Context, userID int64) (*AdminUserDetail, error)
	UpdateUser(ctx context.Context, userID int64, req AdminUpdateUserRequest) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, req ProfileEditRequest) (*CandidateProfile, error)
	DeleteUser(ctx context.Context, userID int64) error
	DeleteProfile(ctx context.Context, userID int64) error
}
