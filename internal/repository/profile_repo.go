package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/roommatch/internal/db"
)

// ProfileRepository is the keyed profile document store.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get returns the profile for userID, or nil when none exists.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*db.Profile, error) {
	var p db.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Set writes a profile.
//
// Behavior:
//   - merge = false → the stored document is replaced by p (nil attributes are cleared).
//   - merge = true  → only the columns named in fields are overwritten; a missing
//     profile is created from p.
func (r *ProfileRepository) Set(ctx context.Context, p *db.Profile, merge bool, fields ...string) error {
	if !merge || len(fields) == 0 {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				UpdateAll: true,
			}).
			Create(p).Error
	}

	columns := make([]string, 0, len(fields)+1)
	columns = append(columns, fields...)
	columns = append(columns, "updated_at")

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(p).Error
}

// ListComplete returns every complete profile except excludeID, ordered by user id.
func (r *ProfileRepository) ListComplete(ctx context.Context, excludeID string) ([]db.Profile, error) {
	var profiles []db.Profile
	err := r.db.WithContext(ctx).
		Where("profile_complete = ? AND user_id <> ?", true, excludeID).
		Order("user_id ASC").
		Find(&profiles).Error
	return profiles, err
}
