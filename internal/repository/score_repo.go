package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/roommatch/internal/db"
)

// ScoreRepository persists compatibility scores under their canonical pair key.
type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(database *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: database}
}

// Get returns the stored score, or nil when the pair has never been scored.
func (r *ScoreRepository) Get(ctx context.Context, pairKey string) (*db.CompatibilityScore, error) {
	var s db.CompatibilityScore
	err := r.db.WithContext(ctx).Where("pair_key = ?", pairKey).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveAll upserts the scores in a single transaction.
func (r *ScoreRepository) SaveAll(ctx context.Context, scores []db.CompatibilityScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair_key"}},
			UpdateAll: true,
		}).CreateInBatches(scores, 100).Error
	})
}
