// Package compat scores how well two roommate profiles fit together.
package compat

import (
	"math"
	"time"

	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

// Factor weights; they sum to 1.
const (
	WeightBudget    = 0.30
	WeightGender    = 0.15
	WeightRoomType  = 0.20
	WeightLifestyle = 0.25
	WeightLocation  = 0.10
)

const (
	full = 100.0
	none = 0.0

	// points lost per step of cleanliness difference
	cleanlinessStep = 20.0
)

// PairKey is the canonical, order-independent key of a user pair.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + validate.PairSeparator + b
}

// Compute scores a and b. It never fails: an attribute missing on either
// side counts as a mismatch for its factor. The result is symmetric in a, b
// and stored under the canonical pair order.
func Compute(a, b *db.Profile, now time.Time) db.CompatibilityScore {
	if b.UserID < a.UserID {
		a, b = b, a
	}

	s := db.CompatibilityScore{
		PairKey:        PairKey(a.UserID, b.UserID),
		UserIDA:        a.UserID,
		UserIDB:        b.UserID,
		BudgetMatch:    budgetMatch(a, b),
		GenderMatch:    genderMatch(a, b),
		RoomTypeMatch:  roomTypeMatch(a, b),
		LifestyleMatch: lifestyleMatch(a, b),
		LocationMatch:  locationMatch(a, b),
		LastUpdated:    now.UTC(),
	}
	s.OverallScore = s.BudgetMatch*WeightBudget +
		s.GenderMatch*WeightGender +
		s.RoomTypeMatch*WeightRoomType +
		s.LifestyleMatch*WeightLifestyle +
		s.LocationMatch*WeightLocation
	return s
}

func budgetMatch(a, b *db.Profile) float64 {
	if a.BudgetMin == nil || a.BudgetMax == nil || b.BudgetMin == nil || b.BudgetMax == nil {
		return none
	}
	if *a.BudgetMin <= *b.BudgetMax && *b.BudgetMin <= *a.BudgetMax {
		return full
	}
	return none
}

// genderMatch is a constant until gender preferences exist on profiles.
func genderMatch(_, _ *db.Profile) float64 {
	return full
}

func roomTypeMatch(a, b *db.Profile) float64 {
	if a.RoomType == nil || b.RoomType == nil {
		return none
	}
	if *a.RoomType == *b.RoomType || *a.RoomType == db.RoomTypeEither || *b.RoomType == db.RoomTypeEither {
		return full
	}
	return none
}

func lifestyleMatch(a, b *db.Profile) float64 {
	cleanliness := none
	if a.Cleanliness != nil && b.Cleanliness != nil {
		diff := math.Abs(float64(*a.Cleanliness - *b.Cleanliness))
		cleanliness = math.Max(0, full-cleanlinessStep*diff)
	}
	return (cleanliness + boolMatch(a.Smoking, b.Smoking) + boolMatch(a.Pets, b.Pets)) / 3
}

func locationMatch(a, b *db.Profile) float64 {
	if a.PreferredLocation == nil || b.PreferredLocation == nil {
		return none
	}
	if *a.PreferredLocation == *b.PreferredLocation {
		return full
	}
	return none
}

func boolMatch(a, b *bool) float64 {
	if a == nil || b == nil || *a != *b {
		return none
	}
	return full
}
