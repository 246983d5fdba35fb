package compat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oggyb/roommatch/internal/db"
)

func ptr[T any](v T) *T { return &v }

func profile(id string, budgetMin, budgetMax int, room string, clean int, location string) *db.Profile {
	return &db.Profile{
		UserID:            id,
		BudgetMin:         ptr(budgetMin),
		BudgetMax:         ptr(budgetMax),
		RoomType:          ptr(room),
		Cleanliness:       ptr(clean),
		Smoking:           ptr(false),
		Pets:              ptr(false),
		PreferredLocation: ptr(location),
	}
}

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, "alice_bob", PairKey("bob", "alice"))
	assert.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
}

func TestComputeOverlappingBudgets(t *testing.T) {
	a := profile("alice", 500, 900, db.RoomTypePrivate, 5, "Downtown")
	b := profile("bob", 800, 1200, db.RoomTypeEither, 3, "Downtown")

	s := Compute(a, b, time.Now())

	assert.Equal(t, 100.0, s.BudgetMatch)
	assert.Equal(t, 100.0, s.GenderMatch)
	assert.Equal(t, 100.0, s.RoomTypeMatch)
	assert.InDelta(t, (60.0+100+100)/3, s.LifestyleMatch, 1e-9)
	assert.Equal(t, 100.0, s.LocationMatch)
	assert.InDelta(t, 30+15+20+0.25*(260.0/3)+10, s.OverallScore, 1e-9)
	assert.Equal(t, "alice_bob", s.PairKey)
}

func TestComputeDisjointBudgets(t *testing.T) {
	a := profile("alice", 500, 900, db.RoomTypePrivate, 5, "Downtown")
	c := profile("carol", 300, 450, db.RoomTypeShared, 1, "Riverside")

	s := Compute(a, c, time.Now())

	assert.Zero(t, s.BudgetMatch)
	assert.Zero(t, s.RoomTypeMatch)
	assert.Zero(t, s.LocationMatch)
	assert.InDelta(t, (20.0+100+100)/3, s.LifestyleMatch, 1e-9)
}

func TestComputeBudgetBoundsAreInclusive(t *testing.T) {
	a := profile("a", 500, 800, db.RoomTypeShared, 3, "x")
	b := profile("b", 800, 1000, db.RoomTypeShared, 3, "x")

	assert.Equal(t, 100.0, Compute(a, b, time.Now()).BudgetMatch)
}

func TestComputeCleanlinessFloorsAtZero(t *testing.T) {
	a := profile("a", 1, 2, db.RoomTypeShared, 1, "x")
	b := profile("b", 1, 2, db.RoomTypeShared, 5, "x")
	b.Cleanliness = ptr(10)

	assert.InDelta(t, 200.0/3, Compute(a, b, time.Now()).LifestyleMatch, 1e-9)
}

func TestComputeMissingAttributesScoreZero(t *testing.T) {
	a := &db.Profile{UserID: "a"}
	b := profile("b", 500, 900, db.RoomTypeEither, 3, "Downtown")

	s := Compute(a, b, time.Now())

	assert.Zero(t, s.BudgetMatch)
	assert.Zero(t, s.RoomTypeMatch)
	assert.Zero(t, s.LifestyleMatch)
	assert.Zero(t, s.LocationMatch)
	assert.Equal(t, 100.0, s.GenderMatch)
	assert.InDelta(t, 15.0, s.OverallScore, 1e-9)
}

func TestComputeIsSymmetric(t *testing.T) {
	a := profile("alice", 500, 900, db.RoomTypePrivate, 5, "Downtown")
	b := profile("bob", 800, 1200, db.RoomTypeEither, 2, "Uptown")
	b.Pets = ptr(true)
	now := time.Now()

	assert.Equal(t, Compute(a, b, now), Compute(b, a, now))
}

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, WeightBudget+WeightGender+WeightRoomType+WeightLifestyle+WeightLocation, 1e-9)
}
