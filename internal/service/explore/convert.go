package explore

import (
	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/discovery"
	pb "github.com/oggyb/roommatch/internal/proto/explore"
)

// mergeableFields maps wire field names to profile columns.
var mergeableFields = map[string]string{
	"display_name":       "display_name",
	"gender":             "gender",
	"photo_url":          "photo_url",
	"budget_min":         "budget_min",
	"budget_max":         "budget_max",
	"room_type":          "room_type",
	"cleanliness":        "cleanliness",
	"smoking":            "smoking",
	"pets":               "pets",
	"preferred_location": "preferred_location",
	"latitude":           "latitude",
	"longitude":          "longitude",
}

// profileInput holds the request-side rules for a profile.
type profileInput struct {
	UserID            string   `validate:"required,max=64"`
	DisplayName       string   `validate:"omitempty,max=128"`
	Gender            string   `validate:"omitempty,max=16"`
	PhotoURL          string   `validate:"omitempty,url,max=512"`
	BudgetMin         *int32   `validate:"omitempty,gte=0"`
	BudgetMax         *int32   `validate:"omitempty,gte=0"`
	RoomType          *string  `validate:"omitempty,oneof=private shared either"`
	Cleanliness       *int32   `validate:"omitempty,min=1,max=5"`
	PreferredLocation *string  `validate:"omitempty,max=255"`
	Latitude          *float64 `validate:"omitempty,latitude"`
	Longitude         *float64 `validate:"omitempty,longitude"`
}

func inputFromPB(p *pb.Profile) profileInput {
	return profileInput{
		UserID:            p.GetUserId(),
		DisplayName:       p.GetDisplayName(),
		Gender:            p.GetGender(),
		PhotoURL:          p.GetPhotoUrl(),
		BudgetMin:         p.BudgetMin,
		BudgetMax:         p.BudgetMax,
		RoomType:          p.RoomType,
		Cleanliness:       p.Cleanliness,
		PreferredLocation: p.PreferredLocation,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
	}
}

func profileFromPB(p *pb.Profile) *db.Profile {
	return &db.Profile{
		UserID:            p.UserId,
		DisplayName:       p.DisplayName,
		Gender:            p.Gender,
		PhotoURL:          p.PhotoUrl,
		BudgetMin:         intPtr(p.BudgetMin),
		BudgetMax:         intPtr(p.BudgetMax),
		RoomType:          p.RoomType,
		Cleanliness:       intPtr(p.Cleanliness),
		Smoking:           p.Smoking,
		Pets:              p.Pets,
		PreferredLocation: p.PreferredLocation,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
	}
}

func profileToPB(p *db.Profile) *pb.Profile {
	if p == nil {
		return nil
	}
	return &pb.Profile{
		UserId:            p.UserID,
		DisplayName:       p.DisplayName,
		Gender:            p.Gender,
		PhotoUrl:          p.PhotoURL,
		BudgetMin:         int32Ptr(p.BudgetMin),
		BudgetMax:         int32Ptr(p.BudgetMax),
		RoomType:          p.RoomType,
		Cleanliness:       int32Ptr(p.Cleanliness),
		Smoking:           p.Smoking,
		Pets:              p.Pets,
		PreferredLocation: p.PreferredLocation,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		ProfileComplete:   p.ProfileComplete,
		UpdatedAtUnixMs:   p.UpdatedAt.UnixMilli(),
	}
}

func filtersFromPB(req *pb.GetCandidatesRequest) discovery.Filters {
	return discovery.Filters{
		Gender:    req.Gender,
		RoomTypes: req.RoomTypes,
		BudgetMax: intPtr(req.BudgetMax),
		Smoking:   req.Smoking,
		Pets:      req.Pets,
	}
}

func compatibilityToPB(s db.CompatibilityScore) *pb.Compatibility {
	return &pb.Compatibility{
		PairKey:           s.PairKey,
		OverallScore:      s.OverallScore,
		BudgetMatch:       s.BudgetMatch,
		GenderMatch:       s.GenderMatch,
		RoomTypeMatch:     s.RoomTypeMatch,
		LifestyleMatch:    s.LifestyleMatch,
		LocationMatch:     s.LocationMatch,
		LastUpdatedUnixMs: s.LastUpdated.UnixMilli(),
	}
}

func likersToPB(swipes []db.Swipe) []*pb.ListLikedYouResponse_Liker {
	likers := make([]*pb.ListLikedYouResponse_Liker, 0, len(swipes))
	for _, s := range swipes {
		likers = append(likers, &pb.ListLikedYouResponse_Liker{
			ActorId:       s.SwiperID,
			UnixTimestamp: uint64(s.UpdatedAt.UnixMilli()),
		})
	}
	return likers
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
