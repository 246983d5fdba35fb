package explore

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oggyb/roommatch/internal/app"
	"github.com/oggyb/roommatch/internal/db"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/match"
	pb "github.com/oggyb/roommatch/internal/proto/explore"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

// Service implements the Explore gRPC API on top of the swipe ledger, match
// manager, scorer and discovery ranker held by the AppContext.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedExploreServiceServer
}

// NewExploreService creates a new Explore service with dependencies from AppContext.
func NewExploreService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// SaveProfile stores a profile and, when it is complete, refreshes every
// compatibility score involving the user.
//
// Behavior:
//   - merge = false replaces the stored profile.
//   - merge = true overwrites only the listed fields (wire names).
//   - profile_complete is derived from the stored attributes, never taken from the request.
//   - A failed recompute is logged; the saved profile is still returned.
func (s *Service) SaveProfile(ctx context.Context, req *pb.SaveProfileRequest) (*pb.SaveProfileResponse, error) {
	in := req.GetProfile()
	s.appCtx.Logger.Debug("SaveProfile called", "user", in.GetUserId(), "merge", req.GetMerge())

	if in == nil {
		return nil, svcErr.InvalidArgument("profile is required")
	}
	if err := validateProfile(in); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}

	var columns []string
	if req.GetMerge() {
		if len(req.Fields) == 0 {
			return nil, svcErr.InvalidArgument("merge requires at least one field")
		}
		for _, f := range req.Fields {
			col, ok := mergeableFields[f]
			if !ok {
				return nil, svcErr.InvalidArgument(fmt.Sprintf("field %q cannot be merged", f))
			}
			columns = append(columns, col)
		}
	}

	profile := profileFromPB(in)
	if req.GetMerge() {
		existing, err := s.appCtx.Profiles.Get(ctx, in.GetUserId())
		if err != nil {
			return nil, svcErr.Map(svcErr.Persistence("explore.load_profile", err))
		}
		if lo, hi := budgetAfterMerge(existing, profile, columns); lo != nil && hi != nil && *lo > *hi {
			return nil, svcErr.InvalidArgument(errBudgetInverted.Error())
		}
	}
	profile.ProfileComplete = profile.HasRequiredFields()
	if err := s.appCtx.Profiles.Set(ctx, profile, req.GetMerge(), columns...); err != nil {
		s.appCtx.Logger.Error("profile write failed", "user", in.UserId, "err", err)
		return nil, svcErr.Map(svcErr.Persistence("explore.save_profile", err))
	}

	stored, err := s.appCtx.Profiles.Get(ctx, in.UserId)
	if err != nil {
		return nil, svcErr.Map(svcErr.Persistence("explore.reload_profile", err))
	}
	if stored == nil {
		return nil, svcErr.Map(svcErr.ErrProfileNotFound)
	}
	if complete := stored.HasRequiredFields(); complete != stored.ProfileComplete {
		stored.ProfileComplete = complete
		if err := s.appCtx.Profiles.Set(ctx, stored, true, "profile_complete"); err != nil {
			return nil, svcErr.Map(svcErr.Persistence("explore.save_profile", err))
		}
	}

	resp := &pb.SaveProfileResponse{Profile: profileToPB(stored)}
	if stored.ProfileComplete {
		n, err := s.appCtx.Recomputer.RecomputeAllForUser(ctx, stored.UserID)
		if err != nil {
			s.appCtx.Logger.Warn("score recompute after profile save failed", "user", stored.UserID, "err", err)
		}
		resp.ScoresUpdated = int32(n)
	}

	s.appCtx.Logger.Debug("SaveProfile result", "user", stored.UserID, "complete", stored.ProfileComplete, "scores", resp.ScoresUpdated)
	return resp, nil
}

var errBudgetInverted = errors.New("budget_min must not exceed budget_max")

func validateProfile(p *pb.Profile) error {
	if err := validate.UserID(p.GetUserId()); err != nil {
		return err
	}
	if err := validate.Struct(inputFromPB(p)); err != nil {
		return err
	}
	if p.BudgetMin != nil && p.BudgetMax != nil && *p.BudgetMin > *p.BudgetMax {
		return errBudgetInverted
	}
	return nil
}

// budgetAfterMerge returns the budget bounds the stored row will hold once
// the merge overwrites columns. A missing row is inserted from the patch.
func budgetAfterMerge(existing, patch *db.Profile, columns []string) (lo, hi *int) {
	lo, hi = patch.BudgetMin, patch.BudgetMax
	if existing == nil {
		return lo, hi
	}
	if !slices.Contains(columns, "budget_min") {
		lo = existing.BudgetMin
	}
	if !slices.Contains(columns, "budget_max") {
		hi = existing.BudgetMax
	}
	return lo, hi
}

// GetProfile returns the stored profile or NotFound.
func (s *Service) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	if err := validate.UserID(req.GetUserId()); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	p, err := s.appCtx.Profiles.Get(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(svcErr.Persistence("explore.get_profile", err))
	}
	if p == nil {
		return nil, svcErr.Map(svcErr.ErrProfileNotFound)
	}
	return &pb.GetProfileResponse{Profile: profileToPB(p)}, nil
}

// RecordSwipe writes the swipe and, for a like, runs the mutual-like check.
//
// The swipe is committed before the match check. If the match records cannot
// be written the call still succeeds with match_status
// MATCH_STATUS_CREATION_FAILED; repeating the like retries the pair write.
func (s *Service) RecordSwipe(ctx context.Context, req *pb.RecordSwipeRequest) (*pb.RecordSwipeResponse, error) {
	actor, recipient := req.GetActorUserId(), req.GetRecipientUserId()
	s.appCtx.Logger.Debug("RecordSwipe called", "actor", actor, "recipient", recipient, "liked", req.GetLikedRecipient())

	if err := s.appCtx.Swipes.RecordSwipe(ctx, actor, recipient, req.GetLikedRecipient()); err != nil {
		return nil, svcErr.Map(err)
	}
	if !req.GetLikedRecipient() {
		return &pb.RecordSwipeResponse{MatchStatus: pb.MatchStatus_MATCH_STATUS_UNSPECIFIED}, nil
	}

	outcome, err := s.appCtx.Matches.ProcessLikeAndCheckMatch(ctx, actor, recipient)
	switch {
	case err != nil && outcome.Status == match.StatusCreationFailed:
		s.appCtx.Logger.Error("match creation failed", "actor", actor, "recipient", recipient, "err", err)
		return &pb.RecordSwipeResponse{MutualLikes: true, MatchStatus: pb.MatchStatus_MATCH_STATUS_CREATION_FAILED}, nil
	case err != nil:
		return nil, svcErr.Map(err)
	case outcome.Status == match.StatusMatched:
		return &pb.RecordSwipeResponse{
			MutualLikes:    true,
			MatchStatus:    pb.MatchStatus_MATCH_STATUS_MATCHED,
			MatchedProfile: profileToPB(outcome.OtherProfile),
		}, nil
	}
	return &pb.RecordSwipeResponse{MatchStatus: pb.MatchStatus_MATCH_STATUS_NO_MATCH}, nil
}

// ListLikedYou returns the users whose current swipe on the recipient is a
// like, newest first, excluding users the recipient passed on.
func (s *Service) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListLikedYou called", "recipient", req.GetRecipientUserId(), "token", req.GetPaginationToken())

	swipes, next, err := s.appCtx.Swipes.ListLikedYou(ctx, req.GetRecipientUserId(), req.PaginationToken, int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListLikedYouResponse{Likers: likersToPB(swipes), NextPaginationToken: next}, nil
}

// ListNewLikedYou is ListLikedYou without users the recipient already liked back.
func (s *Service) ListNewLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListNewLikedYou called", "recipient", req.GetRecipientUserId())

	swipes, next, err := s.appCtx.Swipes.ListNewLikedYou(ctx, req.GetRecipientUserId(), req.PaginationToken, int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListLikedYouResponse{Likers: likersToPB(swipes), NextPaginationToken: next}, nil
}

func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	n, err := s.appCtx.Swipes.CountLikedYou(ctx, req.GetRecipientUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountLikedYouResponse{Count: uint64(n)}, nil
}

// ListMatches repairs one-sided records first, so every returned match is
// present in both directions.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	matches, err := s.appCtx.Matches.ListMatchedProfiles(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListMatchesResponse{Matches: make([]*pb.ListMatchesResponse_Match, 0, len(matches))}
	for i := range matches {
		resp.Matches = append(resp.Matches, &pb.ListMatchesResponse_Match{
			Profile:         profileToPB(&matches[i].Profile),
			MatchedAtUnixMs: matches[i].MatchedAt.UnixMilli(),
		})
	}
	return resp, nil
}

// Unmatch removes the match in both directions and tears down the pair's
// conversation.
func (s *Service) Unmatch(ctx context.Context, req *pb.UnmatchRequest) (*pb.UnmatchResponse, error) {
	s.appCtx.Logger.Debug("Unmatch called", "user", req.GetUserId(), "other", req.GetOtherUserId())

	if err := s.appCtx.Matches.DeleteMatch(ctx, req.GetUserId(), req.GetOtherUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UnmatchResponse{}, nil
}

func (s *Service) RepairMatches(ctx context.Context, req *pb.RepairMatchesRequest) (*pb.RepairMatchesResponse, error) {
	n, err := s.appCtx.Matches.ValidateAndRepairMatches(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RepairMatchesResponse{Repaired: int32(n)}, nil
}

// GetCandidates returns the ranked discovery deck for the user.
func (s *Service) GetCandidates(ctx context.Context, req *pb.GetCandidatesRequest) (*pb.GetCandidatesResponse, error) {
	s.appCtx.Logger.Debug("GetCandidates called", "user", req.GetUserId(), "gender", req.Gender, "room_types", req.RoomTypes)

	ranked, err := s.appCtx.Discovery.GetCandidates(ctx, req.GetUserId(), filtersFromPB(req))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.GetCandidatesResponse{Candidates: make([]*pb.GetCandidatesResponse_Candidate, 0, len(ranked))}
	for i := range ranked {
		resp.Candidates = append(resp.Candidates, &pb.GetCandidatesResponse_Candidate{
			Profile:  profileToPB(&ranked[i].Profile),
			Score:    ranked[i].Score,
			Fallback: ranked[i].Fallback,
		})
	}
	return resp, nil
}

func (s *Service) GetCompatibility(ctx context.Context, req *pb.GetCompatibilityRequest) (*pb.GetCompatibilityResponse, error) {
	score, err := s.appCtx.Scorer.GetOrComputeScore(ctx, req.GetUserId(), req.GetOtherUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetCompatibilityResponse{Compatibility: compatibilityToPB(score)}, nil
}
