package usecase

import (
	"context"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/internal/screening"
	"cv-platform-backend/pkg/apperror"
)

type screeningUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	weights     screening.Weights
}

func NewScreeningUsecase(
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	weights screening.Weights,
) domain.ScreeningUsecase {
	return &screeningUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		weights:     weights,
	}
}

// BrowseCandidates returns the candidate list for the company dashboard,
// narrowed by the given criteria and enriched with owner identities.
func (u *screeningUsecase) BrowseCandidates(ctx context.Context, criteria domain.FilterCriteria) ([]domain.RankedProfile, error) {
	if err := requireRole(ctx, domain.RoleCompany); err != nil {
		return nil, err
	}

	profiles, err := u.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filtered := screening.Filter(profiles, criteria)
	return enrichProfiles(ctx, u.userRepo, filtered), nil
}

// CompareCandidates scores the selected candidates and returns them ranked,
// strongest first. At least two candidates must resolve to a live profile.
func (u *screeningUsecase) CompareCandidates(ctx context.Context, ownerIDs []int64) ([]domain.ComparisonEntry, error) {
	if err := requireRole(ctx, domain.RoleCompany); err != nil {
		return nil, err
	}

	if len(ownerIDs) < 2 {
		return nil, apperror.BadRequest("Please select at least 2 students to compare")
	}

	profiles, err := u.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	wanted := make(map[int64]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		wanted[id] = true
	}

	// Selection keeps store order, so equal scores later tie-break the same
	// way every time.
	selected := make([]domain.CandidateProfile, 0, len(ownerIDs))
	for _, p := range profiles {
		if wanted[p.OwnerID] {
			selected = append(selected, p)
		}
	}
	if len(selected) < 2 {
		return nil, apperror.BadRequest("At least 2 of the selected students must have a CV profile")
	}

	return screening.Compare(enrichProfiles(ctx, u.userRepo, selected), u.weights), nil
}
