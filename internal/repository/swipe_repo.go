package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/utils/pagination"
)

// SwipeRepository provides data access methods for the Swipe model.
// It encapsulates all queries related to likes/passes between users.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Upsert inserts or overwrites the swipe made by swiper -> swiped.
//
// Behavior:
//   - If (swiper_id, swiped_id) exists → liked and updated_at are overwritten.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK ensures overwrite guarantee.
//
// Example:
//
//	repo.Upsert(ctx, "alice", "bob", true, time.Now()) // alice liked bob
func (r *SwipeRepository) Upsert(
	ctx context.Context,
	swiperID, swipedID string,
	liked bool,
	at time.Time,
) error {
	swipe := db.Swipe{
		SwiperID:  swiperID,
		SwipedID:  swipedID,
		Liked:     liked,
		CreatedAt: at,
		UpdatedAt: at,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&swipe).Error
}

// HasLiked checks whether a swiper's latest judgment of swiped is a like.
//
// Example:
//
//	repo.HasLiked(ctx, "alice", "bob") // -> true if alice liked bob
func (r *SwipeRepository) HasLiked(ctx context.Context, swiperID, swipedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("swiper_id = ? AND swiped_id = ? AND liked = ?", swiperID, swipedID, true).
		Count(&count).Error
	return count > 0, err
}

// ListLikers returns swipes of users who liked the given recipient.
//
// Behavior:
//   - Only swipes where swiped_id = X and liked = true are returned.
//   - Excludes users that the recipient explicitly passed (liked = false).
//   - Ordered by updated_at DESC, swiper_id DESC.
//   - Supports cursor-based pagination via paginationToken.
func (r *SwipeRepository) ListLikers(
	ctx context.Context,
	recipientID string,
	paginationToken *string,
	limit int,
) ([]db.Swipe, *string, error) {
	query := r.likersQuery(ctx, recipientID)
	return r.page(query, paginationToken, limit)
}

// ListNewLikers returns users who liked the recipient but have not been liked back.
//
// Behavior:
//   - Same filter as ListLikers.
//   - Additionally excludes mutual likes (recipient already liked them back).
func (r *SwipeRepository) ListNewLikers(
	ctx context.Context,
	recipientID string,
	paginationToken *string,
	limit int,
) ([]db.Swipe, *string, error) {
	// subquery to exclude mutual likes
	subQuery := r.db.
		Table("swipes").
		Select("1").
		Where("swiper_id = s.swiped_id AND swiped_id = s.swiper_id AND liked = ?", true)

	query := r.likersQuery(ctx, recipientID).Where("NOT EXISTS (?)", subQuery)
	return r.page(query, paginationToken, limit)
}

// CountLikers returns how many users liked the given recipient, excluding
// users the recipient passed. Redis caches the result; the DB is the fallback.
func (r *SwipeRepository) CountLikers(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.likersQuery(ctx, recipientID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SwipeRepository) likersQuery(ctx context.Context, recipientID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.swiped_id = ? AND s.liked = ?", recipientID, true).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM swipes s2
				WHERE s2.swiper_id = ?
				  AND s2.swiped_id = s.swiper_id
				  AND s2.liked = ?
			)`, recipientID, false)
}

func (r *SwipeRepository) page(query *gorm.DB, paginationToken *string, limit int) ([]db.Swipe, *string, error) {
	cursor, err := pagination.Decode(pagination.Deref(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query = query.Order("s.updated_at DESC, s.swiper_id DESC").Limit(limit + 1)
	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.UnixMilli).UTC()
		query = query.Where(
			"(s.updated_at < ? OR (s.updated_at = ? AND s.swiper_id < ?))",
			ts, ts, cursor.ID,
		)
	}

	var swipes []db.Swipe
	if err := query.Find(&swipes).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(swipes) > limit {
		last := swipes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			ID:        last.SwiperID,
			UnixMilli: last.UpdatedAt.UnixMilli(),
		})
		nextToken = &token
		swipes = swipes[:limit]
	}

	return swipes, nextToken, nil
}
