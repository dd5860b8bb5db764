package usecase

import (
	"context"
	"math"
	"sort"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const topListSize = 10

type adminUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewAdminUsecase(userRepo domain.UserRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// GetStats computes the dashboard analytics over a fresh snapshot of users
// and profiles.
func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	profiles, err := u.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	stats := &domain.AdminStats{
		TotalProfiles:   int64(len(profiles)),
		GPADistribution: gpaBins(profiles),
	}
	for _, usr := range users {
		switch usr.Role {
		case domain.RoleStudent:
			stats.TotalStudents++
		case domain.RoleCompany:
			stats.TotalCompanies++
		case domain.RoleAdmin:
			stats.TotalAdmins++
		}
	}

	skillCounts := map[string]int64{}
	majorCounts := map[string]int64{}
	var gpaSum float64
	var gpaN int64
	for _, p := range profiles {
		for _, s := range p.Skills {
			skillCounts[s]++
		}
		if p.Major != "" {
			majorCounts[p.Major]++
		}
		if p.GPA != nil {
			gpaSum += *p.GPA
			gpaN++
		}
	}

	stats.MostCommonSkills = topSkills(skillCounts)
	stats.MajorsDistribution = topMajors(majorCounts)
	if gpaN > 0 {
		stats.AverageGPA = math.Round(gpaSum/float64(gpaN)*100) / 100
	}

	return stats, nil
}

// gpaBins buckets GPAs into the dashboard histogram ranges.
func gpaBins(profiles []domain.CandidateProfile) map[string]int64 {
	bins := map[string]int64{
		"0-2.0":   0,
		"2.0-2.5": 0,
		"2.5-3.0": 0,
		"3.0-3.5": 0,
		"3.5-4.0": 0,
	}
	for _, p := range profiles {
		if p.GPA == nil {
			continue
		}
		switch gpa := *p.GPA; {
		case gpa < 2.0:
			bins["0-2.0"]++
		case gpa < 2.5:
			bins["2.0-2.5"]++
		case gpa < 3.0:
			bins["2.5-3.0"]++
		case gpa < 3.5:
			bins["3.0-3.5"]++
		default:
			bins["3.5-4.0"]++
		}
	}
	return bins
}

func topSkills(counts map[string]int64) []domain.SkillCount {
	out := make([]domain.SkillCount, 0, len(counts))
	for skill, count := range counts {
		out = append(out, domain.SkillCount{Skill: skill, Count: count})
	}
	// Ties resolved alphabetically so the dashboard is deterministic.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > topListSize {
		out = out[:topListSize]
	}
	return out
}

func topMajors(counts map[string]int64) []domain.MajorCount {
	out := make([]domain.MajorCount, 0, len(counts))
	for major, count := range counts {
		out = append(out, domain.MajorCount{Major: major, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Major < out[j].Major
	})
	if len(out) > topListSize {
		out = out[:topListSize]
	}
	return out
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.AdminUserEntry, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	profiles, err := u.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	withProfile := make(map[int64]bool, len(profiles))
	for _, p := range profiles {
		withProfile[p.OwnerID] = true
	}

	entries := make([]domain.AdminUserEntry, len(users))
	for i, usr := range users {
		entries[i] = domain.AdminUserEntry{User: usr, HasCVProfile: withProfile[usr.ID]}
	}
	return entries, nil
}

func (u *adminUsecase) GetUserDetail(ctx context.Context, userID int64) (*domain.AdminUserDetail, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AdminUserDetail{User: user, Profile: profile}, nil
}

func (u *adminUsecase) UpdateUser(ctx context.Context, userID int64, req domain.AdminUpdateUserRequest) (*domain.User, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if req.Username != "" && req.Username != user.Username {
		taken, err := u.userRepo.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if taken != nil {
			return nil, apperror.BadRequest("Username is already taken")
		}
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Role != "" {
		role, ok := domain.ParseRole(req.Role)
		if !ok {
			return nil, apperror.BadRequest("Unknown role")
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.PasswordHash = string(hash)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile lets an admin replace a user's CV profile, whether or not
// one exists yet.
func (u *adminUsecase) UpdateProfile(ctx context.Context, userID int64, req domain.ProfileEditRequest) (*domain.CandidateProfile, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	profile := profileFromEdit(userID, req)
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Unavailable("Could not save CV profile", err)
	}
	return profile, nil
}

// DeleteUser removes an account and its CV profile. The cascade is explicit
// here: the profile store never deletes on its own.
func (u *adminUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if _, err := u.profileRepo.Delete(ctx, userID); err != nil {
		return apperror.Unavailable("Could not delete CV profile", err)
	}
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) DeleteProfile(ctx context.Context, userID int64) error {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return err
	}

	deleted, err := u.profileRepo.Delete(ctx, userID)
	if err != nil {
		return apperror.Unavailable("Could not delete CV profile", err)
	}
	if !deleted {
		return apperror.NotFound("CV profile not found")
	}
	return nil
}
