package db

import (
	"time"
)

// Room type preferences. RoomTypeEither is the wildcard.
const (
	RoomTypePrivate = "private"
	RoomTypeShared  = "shared"
	RoomTypeEither  = "either"
)

// Profile is the roommate profile document. Optional attributes are
// pointers: nil means "not stated", which scoring treats as a mismatch.
type Profile struct {
	UserID            string `gorm:"primaryKey;size:64"`
	DisplayName       string `gorm:"size:128"`
	Gender            string `gorm:"size:16;index"`
	PhotoURL          string `gorm:"size:512"`
	BudgetMin         *int
	BudgetMax         *int
	RoomType          *string `gorm:"size:16"`
	Cleanliness       *int
	Smoking           *bool
	Pets              *bool
	PreferredLocation *string `gorm:"size:255"`
	Latitude          *float64
	Longitude         *float64
	ProfileComplete   bool      `gorm:"not null;default:false;index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

// HasRequiredFields reports whether every attribute scoring relies on is
// stated. Latitude and longitude are optional.
func (p *Profile) HasRequiredFields() bool {
	return p.Gender != "" &&
		p.BudgetMin != nil && p.BudgetMax != nil &&
		p.RoomType != nil && p.Cleanliness != nil &&
		p.Smoking != nil && p.Pets != nil &&
		p.PreferredLocation != nil
}

// Swipe represents a swiper's like/pass judgment on another user.
//
// Composite PK: (SwiperID, SwipedID)
//   - Ensures a single row per ordered pair (latest write wins).
//
// Indexes:
//   - idx_swiped_liked_updated_swiper(swiped_id, liked, updated_at DESC, swiper_id)
//     Optimizes "who liked me" lists with pagination.
//
// UpdatedAt is the swipe timestamp.
type Swipe struct {
	SwiperID  string    `gorm:"primaryKey;size:64"`
	SwipedID  string    `gorm:"primaryKey;size:64;index:idx_swiped_liked_updated_swiper,priority:1"`
	Liked     bool      `gorm:"not null;index:idx_swiped_liked_updated_swiper,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"index:idx_swiped_liked_updated_swiper,priority:3,sort:desc"`
}

// Match is one direction of a confirmed mutual like. A pair is consistent
// only when both (A,B) and (B,A) rows exist.
type Match struct {
	OwnerID     string    `gorm:"primaryKey;size:64"`
	OtherUserID string    `gorm:"primaryKey;size:64;index"`
	MatchedAt   time.Time `gorm:"not null;index"`
}

// CompatibilityScore caches the score of an unordered pair under its
// canonical key "min_max".
type CompatibilityScore struct {
	PairKey        string    `gorm:"primaryKey;size:129"`
	UserIDA        string    `gorm:"size:64;not null;index"`
	UserIDB        string    `gorm:"size:64;not null;index"`
	OverallScore   float64   `gorm:"not null"`
	BudgetMatch    float64   `gorm:"not null"`
	GenderMatch    float64   `gorm:"not null"`
	RoomTypeMatch  float64   `gorm:"not null"`
	LifestyleMatch float64   `gorm:"not null"`
	LocationMatch  float64   `gorm:"not null"`
	LastUpdated    time.Time `gorm:"not null"`
}

// Conversation anchors the message thread of exactly two participants.
// ParticipantA < ParticipantB, and ID is their canonical join.
type Conversation struct {
	ID                  string    `gorm:"primaryKey;size:129"`
	ParticipantA        string    `gorm:"size:64;not null;index"`
	ParticipantB        string    `gorm:"size:64;not null;index"`
	CreatedAt           time.Time `gorm:"not null"`
	LastMessageAt       *time.Time
	LastMessageText     *string `gorm:"size:512"`
	LastMessageSenderID *string `gorm:"size:64"`
}

// Other returns the participant that is not userID.
func (c *Conversation) Other(userID string) (string, bool) {
	switch userID {
	case c.ParticipantA:
		return c.ParticipantB, true
	case c.ParticipantB:
		return c.ParticipantA, true
	}
	return "", false
}

// Message is append-only; ordered by SentAt then ID.
type Message struct {
	ID             string    `gorm:"primaryKey;size:36"`
	ConversationID string    `gorm:"size:129;not null;index:idx_conversation_sent,priority:1"`
	SenderID       string    `gorm:"size:64;not null"`
	Text           string    `gorm:"type:text"`
	ImageURL       string    `gorm:"size:1024"`
	FileURL        string    `gorm:"size:1024"`
	FileName       string    `gorm:"size:255"`
	FileSize       int64     `gorm:"not null;default:0"`
	FileType       string    `gorm:"size:128"`
	SentAt         time.Time `gorm:"not null;index:idx_conversation_sent,priority:2"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{&Profile{}, &Swipe{}, &Match{}, &CompatibilityScore{}, &Conversation{}, &Message{}}
}
