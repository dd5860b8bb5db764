package usecase

import (
	"context"
	"math"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/internal/extraction"
	"cv-platform-backend/pkg/apperror"
	"cv-platform-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	extractor   domain.CVExtractor
	validate    *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	extractor domain.CVExtractor,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		extractor:   extractor,
		validate:    validate,
	}
}

// UploadCV runs the full ingest pipeline for a student's CV: text and field
// extraction, shape normalization, schema validation, then an atomic upsert
// that replaces any previous profile for the owner.
func (u *profileUsecase) UploadCV(ctx context.Context, ownerID int64, content []byte, filename string) (*domain.UploadResult, error) {
	if err := requireRole(ctx, domain.RoleStudent); err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	payload, err := u.extractor.ProcessFile(ctx, content, filename)
	if err != nil {
		return nil, err
	}

	normalized := extraction.Normalize(payload)
	profile, err := extraction.ValidateProfile(normalized)
	if err != nil {
		return nil, err
	}
	profile.OwnerID = ownerID

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Write path fails loud: the student must not believe a vanished upload
	// succeeded.
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Unavailable("Could not save CV profile", err)
	}

	logger.Log.Info("CV processed", "owner_id", ownerID, "filename", filename,
		"skills", len(profile.Skills), "experience", len(profile.Experience))

	return &domain.UploadResult{Filename: filename, Profile: profile}, nil
}

// overviewFields is the number of fields tracked by the completeness meter.
const overviewFields = 8

func (u *profileUsecase) GetOverview(ctx context.Context, ownerID int64) (*domain.ProfileOverview, error) {
	if err := requireRole(ctx, domain.RoleStudent); err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ProfileOverview{
		Profile:      profile,
		Completeness: completeness(profile),
	}, nil
}

// completeness is the dashboard percentage over eight tracked fields. A zero
// GPA counts as unset, matching the original meter.
func completeness(p *domain.CandidateProfile) int {
	if p == nil {
		return 0
	}

	filled := 0
	for _, present := range []bool{
		p.FullName != "",
		p.Email != "",
		p.Phone != "",
		p.Summary != "",
		p.Major != "",
		p.GPA != nil && *p.GPA != 0,
		len(p.Skills) > 0,
		len(p.Experience) > 0,
	} {
		if present {
			filled++
		}
	}
	return int(math.Round(float64(filled) / overviewFields * 100))
}

func (u *profileUsecase) GetProfile(ctx context.Context, ownerID int64) (*domain.RankedProfile, error) {
	if err := requireRole(ctx, domain.RoleStudent, domain.RoleCompany, domain.RoleAdmin); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("CV profile not found")
	}

	// Missing identity record: surface the profile with a nil owner rather
	// than dropping it.
	owner, err := u.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Warn("Owner lookup failed, surfacing profile without owner", "owner_id", ownerID, "error", err)
		owner = nil
	}

	return &domain.RankedProfile{CandidateProfile: *profile, Owner: owner}, nil
}

// UpdateProfile is the manual-edit path: a full replacement of all fields,
// not a merge, through the same upsert contract as an upload.
func (u *profileUsecase) UpdateProfile(ctx context.Context, ownerID int64, req domain.ProfileEditRequest) (*domain.CandidateProfile, error) {
	if err := requireRole(ctx, domain.RoleStudent); err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	existing, err := u.profileRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing == nil {
		return nil, apperror.NotFound("No CV profile found. Please upload a CV first.")
	}

	profile := profileFromEdit(ownerID, req)
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Unavailable("Could not save CV profile", err)
	}
	return profile, nil
}

func (u *profileUsecase) BrowseStudents(ctx context.Context, viewerID int64) ([]domain.RankedProfile, error) {
	if err := requireRole(ctx, domain.RoleStudent); err != nil {
		return nil, err
	}

	profiles, err := u.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	others := make([]domain.CandidateProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.OwnerID != viewerID {
			others = append(others, p)
		}
	}

	return enrichProfiles(ctx, u.userRepo, others), nil
}

// profileFromEdit builds a canonical record from an edit payload with list
// fields defaulting to empty, never nil.
func profileFromEdit(ownerID int64, req domain.ProfileEditRequest) *domain.CandidateProfile {
	return &domain.CandidateProfile{
		OwnerID:        ownerID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Summary:        req.Summary,
		Major:          req.Major,
		GPA:            req.GPA,
		Skills:         orEmpty(req.Skills),
		Education:      orEmpty(req.Education),
		Experience:     orEmpty(req.Experience),
		Certifications: orEmpty(req.Certifications),
		Languages:      orEmpty(req.Languages),
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// enrichProfiles joins each profile with its owner's identity record.
// Owners that cannot be resolved are null-filled, never dropped.
func enrichProfiles(ctx context.Context, users domain.UserRepository, profiles []domain.CandidateProfile) []domain.RankedProfile {
	ids := make([]int64, len(profiles))
	for i, p := range profiles {
		ids[i] = p.OwnerID
	}

	owners, err := users.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.Warn("Owner enrichment failed, surfacing profiles without owners", "error", err)
		owners = map[int64]*domain.User{}
	}

	ranked := make([]domain.RankedProfile, len(profiles))
	for i, p := range profiles {
		ranked[i] = domain.RankedProfile{CandidateProfile: p, Owner: owners[p.OwnerID]}
	}
	return ranked
}
