// Package chat exposes the match-gated conversation gateway over gRPC.
package chat

import (
	"context"

	"github.com/oggyb/roommatch/internal/app"
	svcErr "github.com/oggyb/roommatch/internal/errors"
	pb "github.com/oggyb/roommatch/internal/proto/chat"
)

type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedChatServiceServer
}

func NewChatService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// OpenConversation returns the conversation of a matched pair, creating it
// on first contact.
func (s *Service) OpenConversation(ctx context.Context, req *pb.OpenConversationRequest) (*pb.OpenConversationResponse, error) {
	s.appCtx.Logger.Debug("OpenConversation called", "user", req.GetUserId(), "other", req.GetOtherUserId())

	id, err := s.appCtx.Chat.GetOrCreateConversation(ctx, req.GetUserId(), req.GetOtherUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.OpenConversationResponse{ConversationId: id}, nil
}

func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	s.appCtx.Logger.Debug("SendMessage called", "conversation", req.GetConversationId(), "sender", req.GetSenderId())

	id, err := s.appCtx.Chat.AppendMessage(ctx, req.GetConversationId(), req.GetSenderId(), payloadFromPB(req))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SendMessageResponse{MessageId: id}, nil
}

func (s *Service) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	msgs, next, err := s.appCtx.Chat.ListMessages(ctx, req.GetConversationId(), req.GetViewerId(), req.PaginationToken, int(req.Limit))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListMessagesResponse{Messages: messagesToPB(msgs), NextPaginationToken: next}, nil
}

// WatchConversation streams a snapshot right away and another one after
// every change. The stream ends when the client goes away or the
// conversation is torn down.
func (s *Service) WatchConversation(req *pb.WatchConversationRequest, stream pb.ChatService_WatchConversationServer) error {
	ctx := stream.Context()
	log := s.appCtx.Logger.With("conversation", req.GetConversationId(), "viewer", req.GetViewerId())
	log.Debug("WatchConversation started")

	snaps, cancel, err := s.appCtx.Chat.Watch(ctx, req.GetConversationId(), req.GetViewerId())
	if err != nil {
		return svcErr.Map(err)
	}
	defer cancel()

	for snap := range snaps {
		if snap.Err != nil {
			log.Warn("watch snapshot failed", "err", snap.Err)
		}
		if err := stream.Send(snapshotToPB(snap)); err != nil {
			return err
		}
		if snap.Closed {
			break
		}
	}
	log.Debug("WatchConversation ended")
	return nil
}

// CleanupConversations removes the user's conversations whose pair is no
// longer matched.
func (s *Service) CleanupConversations(ctx context.Context, req *pb.CleanupConversationsRequest) (*pb.CleanupConversationsResponse, error) {
	n, err := s.appCtx.Chat.CleanupUnmatched(ctx, req.GetUserId())
	if err != nil {
		s.appCtx.Logger.Warn("conversation cleanup incomplete", "user", req.GetUserId(), "removed", n, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.CleanupConversationsResponse{Removed: int32(n)}, nil
}
