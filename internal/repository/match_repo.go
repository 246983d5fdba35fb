package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/roommatch/internal/db"
)

// MatchRepository stores the directional halves of a match.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// Exists reports whether owner holds a match record for other.
func (r *MatchRepository) Exists(ctx context.Context, ownerID, otherID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("owner_id = ? AND other_user_id = ?", ownerID, otherID).
		Count(&count).Error
	return count > 0, err
}

// CreateAll writes the given records in one transaction: either every
// record is persisted or none is. Records that already exist are left as-is.
func (r *MatchRepository) CreateAll(ctx context.Context, records []db.Match) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes owner's record for other. Deleting a missing record is a no-op.
func (r *MatchRepository) Delete(ctx context.Context, ownerID, otherID string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND other_user_id = ?", ownerID, otherID).
		Delete(&db.Match{}).Error
}

// ListOwned returns owner's records, most recent first.
func (r *MatchRepository) ListOwned(ctx context.Context, ownerID string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("matched_at DESC, other_user_id ASC").
		Find(&matches).Error
	return matches, err
}

// ListOrphaned returns owner's records that have no reciprocal row.
func (r *MatchRepository) ListOrphaned(ctx context.Context, ownerID string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Table("matches m").
		Where("m.owner_id = ?", ownerID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM matches m2
				WHERE m2.owner_id = m.other_user_id
				  AND m2.other_user_id = m.owner_id
			)`).
		Find(&matches).Error
	return matches, err
}
