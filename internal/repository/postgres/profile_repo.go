package postgres

import (
	"context"
	"errors"
	"time"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// profileRepository persists candidate profiles, one row per owner.
//
// Consistency contract: Upsert is a single atomic replace-or-insert keyed by
// owner_id, so concurrent writers cannot interleave a check with a write.
// Read paths run under a short timeout and degrade to nil/empty when the
// store is unreachable; write paths propagate the failure to the caller.
type profileRepository struct {
	db           *pgxpool.Pool
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewProfileRepository(db *pgxpool.Pool, readTimeout, writeTimeout time.Duration) domain.ProfileRepository {
	return &profileRepository{
		db:           db,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

const profileColumns = `
	owner_id, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(summary, ''), COALESCE(major, ''), gpa,
	skills, education, experience, certifications, languages,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(
		&p.OwnerID, &p.FullName, &p.Email, &p.Phone,
		&p.Summary, &p.Major, &p.GPA,
		pq.Array(&p.Skills), pq.Array(&p.Education), pq.Array(&p.Experience),
		pq.Array(&p.Certifications), pq.Array(&p.Languages),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	// created_at survives replacement; updated_at moves on every persist.
	query := `
		INSERT INTO cv_profiles (
			owner_id, full_name, email, phone, summary, major, gpa,
			skills, education, experience, certifications, languages,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			summary = EXCLUDED.summary,
			major = EXCLUDED.major,
			gpa = EXCLUDED.gpa,
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			experience = EXCLUDED.experience,
			certifications = EXCLUDED.certifications,
			languages = EXCLUDED.languages,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		profile.OwnerID, profile.FullName, profile.Email, profile.Phone,
		profile.Summary, profile.Major, profile.GPA,
		pq.Array(profile.Skills), pq.Array(profile.Education), pq.Array(profile.Experience),
		pq.Array(profile.Certifications), pq.Array(profile.Languages),
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) Get(ctx context.Context, ownerID int64) (*domain.CandidateProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	query := `SELECT ` + profileColumns + ` FROM cv_profiles WHERE owner_id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("Profile read failed, degrading to not found", "owner_id", ownerID, "error", err)
		return nil, nil
	}
	return p, nil
}

func (r *profileRepository) ListAll(ctx context.Context) ([]domain.CandidateProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	query := `SELECT ` + profileColumns + ` FROM cv_profiles ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("Profile list failed, degrading to empty", "error", err)
		return []domain.CandidateProfile{}, nil
	}
	defer rows.Close()

	var profiles []domain.CandidateProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			logger.Log.Error("Profile list scan failed, degrading to empty", "error", err)
			return []domain.CandidateProfile{}, nil
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		logger.Log.Error("Profile list failed, degrading to empty", "error", err)
		return []domain.CandidateProfile{}, nil
	}
	return profiles, nil
}

func (r *profileRepository) Delete(ctx context.Context, ownerID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM cv_profiles WHERE owner_id = $1`, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
