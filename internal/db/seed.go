package db

import (
	"fmt"
	"log/slog"
	"math/rand"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedLocations = []string{"Downtown", "Riverside", "University District"}

// SeedTestData resets the database and populates it with demo profiles and swipes.
//
// Behavior:
//  1. Clears swipes, matches, scores, messages, conversations and profiles.
//  2. Creates 20 complete profiles with varied budgets, room types and lifestyle answers.
//  3. Generates ~200 swipes with ~70% likes; every 3rd pair also gets the reciprocal like
//     so the matching flow has mutual likes to confirm.
//
// Match records are intentionally not seeded: they are created by the match check.
func SeedTestData(db *gorm.DB, seed int64) error {
	r := rand.New(rand.NewSource(seed))

	if err := clearAll(db); err != nil {
		return err
	}
	slog.Info("cleared existing data")

	for i := 1; i <= 20; i++ {
		gender := "male"
		if i > 10 {
			gender = "female"
		}
		budgetMin := 400 + r.Intn(6)*100
		budgetMax := budgetMin + 200 + r.Intn(4)*100
		roomType := []string{RoomTypePrivate, RoomTypeShared, RoomTypeEither}[r.Intn(3)]
		cleanliness := 1 + r.Intn(5)
		smoking := r.Intn(100) < 20
		pets := r.Intn(100) < 40
		location := seedLocations[r.Intn(len(seedLocations))]

		profile := Profile{
			UserID:            fmt.Sprintf("user%d", i),
			DisplayName:       fmt.Sprintf("User %d", i),
			Gender:            gender,
			BudgetMin:         &budgetMin,
			BudgetMax:         &budgetMax,
			RoomType:          &roomType,
			Cleanliness:       &cleanliness,
			Smoking:           &smoking,
			Pets:              &pets,
			PreferredLocation: &location,
			ProfileComplete:   true,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	slog.Info("seeded profiles", "count", 20)

	counter := 0
	for swiper := 1; swiper <= 20; swiper++ {
		for j := 0; j < 10; j++ {
			swiped := r.Intn(20) + 1
			if swiper == swiped {
				continue
			}

			liked := r.Intn(100) < 70
			if counter%3 == 0 {
				liked = true
				if err := upsertSwipe(db, fmt.Sprintf("user%d", swiped), fmt.Sprintf("user%d", swiper), true); err != nil {
					return fmt.Errorf("failed to seed swipe: %w", err)
				}
			}

			if err := upsertSwipe(db, fmt.Sprintf("user%d", swiper), fmt.Sprintf("user%d", swiped), liked); err != nil {
				return fmt.Errorf("failed to seed swipe: %w", err)
			}
			counter++
		}
	}
	slog.Info("seeded swipes", "count", counter)

	return nil
}

// SeedMinimalTestData inserts a tiny deterministic dataset:
//   - alice, bob, carol: complete profiles; dave: incomplete
//   - alice → bob like, carol → alice like, alice → carol pass
func SeedMinimalTestData(db *gorm.DB) error {
	if err := clearAll(db); err != nil {
		return err
	}

	profiles := []Profile{
		minimalProfile("alice", "female", 500, 900, RoomTypePrivate, 5, "Downtown"),
		minimalProfile("bob", "male", 800, 1200, RoomTypeEither, 3, "Downtown"),
		minimalProfile("carol", "female", 300, 450, RoomTypeShared, 1, "Riverside"),
		{UserID: "dave", DisplayName: "dave", Gender: "male"},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}

	swipes := []Swipe{
		{SwiperID: "alice", SwipedID: "bob", Liked: true},
		{SwiperID: "carol", SwipedID: "alice", Liked: true},
		{SwiperID: "alice", SwipedID: "carol", Liked: false},
	}
	return db.Create(&swipes).Error
}

func minimalProfile(id, gender string, budgetMin, budgetMax int, roomType string, cleanliness int, location string) Profile {
	smoking, pets := false, false
	return Profile{
		UserID:            id,
		DisplayName:       id,
		Gender:            gender,
		BudgetMin:         &budgetMin,
		BudgetMax:         &budgetMax,
		RoomType:          &roomType,
		Cleanliness:       &cleanliness,
		Smoking:           &smoking,
		Pets:              &pets,
		PreferredLocation: &location,
		ProfileComplete:   true,
	}
}

func upsertSwipe(db *gorm.DB, swiperID, swipedID string, liked bool) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
	}).Create(&Swipe{SwiperID: swiperID, SwipedID: swipedID, Liked: liked}).Error
}

func clearAll(db *gorm.DB) error {
	for _, table := range []string{"messages", "conversations", "compatibility_scores", "matches", "swipes", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
