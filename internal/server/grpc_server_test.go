package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/oggyb/roommatch/internal/app"
	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/logger"
	chatpb "github.com/oggyb/roommatch/internal/proto/chat"
	explorepb "github.com/oggyb/roommatch/internal/proto/explore"
	"github.com/oggyb/roommatch/internal/server"
	chatsvc "github.com/oggyb/roommatch/internal/service/chat"
	exploresvc "github.com/oggyb/roommatch/internal/service/explore"
)

// startServer serves both APIs over an in-memory listener backed by the
// minimal seed dataset. Redis is left out so counts and scores come from
// the database.
func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	database, err := db.NewMemoryDB(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.SeedMinimalTestData(database))

	appCtx, err := app.New(config.New(), database, nil, logger.Discard())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv, _ := server.NewGRPCServer(logger.Discard(),
		exploresvc.NewRegistrar(appCtx),
		chatsvc.NewRegistrar(appCtx),
	)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func recvSnapshot(t *testing.T, stream chatpb.ChatService_WatchConversationClient) *chatpb.ConversationSnapshot {
	t.Helper()
	snap, err := stream.Recv()
	require.NoError(t, err)
	return snap
}

// TestMatchChatUnmatchOverGRPC walks the whole flow through the wire: a
// mutual like opens chat, a watcher sees the message, and unmatching closes
// the watch.
func TestMatchChatUnmatchOverGRPC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := startServer(t)
	explore := explorepb.NewExploreServiceClient(conn)
	chat := chatpb.NewChatServiceClient(conn)

	_, err := chat.OpenConversation(ctx, &chatpb.OpenConversationRequest{UserId: "alice", OtherUserId: "bob"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	swipe, err := explore.RecordSwipe(ctx, &explorepb.RecordSwipeRequest{
		ActorUserId:     "bob",
		RecipientUserId: "alice",
		LikedRecipient:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, explorepb.MatchStatus_MATCH_STATUS_MATCHED, swipe.MatchStatus)

	opened, err := chat.OpenConversation(ctx, &chatpb.OpenConversationRequest{UserId: "alice", OtherUserId: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "alice_bob", opened.ConversationId)

	stream, err := chat.WatchConversation(ctx, &chatpb.WatchConversationRequest{
		ConversationId: opened.ConversationId,
		ViewerId:       "alice",
	})
	require.NoError(t, err)

	first := recvSnapshot(t, stream)
	assert.True(t, first.Matched)
	assert.Empty(t, first.Messages)

	sent, err := chat.SendMessage(ctx, &chatpb.SendMessageRequest{
		ConversationId: opened.ConversationId,
		SenderId:       "bob",
		Text:           "hey, still looking for a room?",
	})
	require.NoError(t, err)

	second := recvSnapshot(t, stream)
	require.Len(t, second.Messages, 1)
	assert.Equal(t, sent.MessageId, second.Messages[0].Id)
	assert.Equal(t, "bob", second.LastMessageSenderId)

	_, err = explore.Unmatch(ctx, &explorepb.UnmatchRequest{UserId: "alice", OtherUserId: "bob"})
	require.NoError(t, err)

	last := recvSnapshot(t, stream)
	assert.True(t, last.Closed)
	_, err = stream.Recv()
	assert.True(t, errors.Is(err, io.EOF), "stream should end after close, got %v", err)

	_, err = chat.SendMessage(ctx, &chatpb.SendMessageRequest{
		ConversationId: opened.ConversationId,
		SenderId:       "bob",
		Text:           "hello?",
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestErrorsMapToStatusCodes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := startServer(t)
	explore := explorepb.NewExploreServiceClient(conn)
	chat := chatpb.NewChatServiceClient(conn)

	_, err := explore.GetProfile(ctx, &explorepb.GetProfileRequest{UserId: "nobody"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = explore.RecordSwipe(ctx, &explorepb.RecordSwipeRequest{ActorUserId: "alice", RecipientUserId: "alice"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = chat.SendMessage(ctx, &chatpb.SendMessageRequest{ConversationId: "alice_bob", SenderId: "bob"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	count, err := explore.CountLikedYou(ctx, &explorepb.CountLikedYouRequest{RecipientUserId: "bob"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count.Count)
}

// TestOptionalFieldsKeepPresenceOverGRPC saves explicit zero values next to
// unset ones and checks the two stay apart after a round trip.
func TestOptionalFieldsKeepPresenceOverGRPC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	explore := explorepb.NewExploreServiceClient(startServer(t))

	saved, err := explore.SaveProfile(ctx, &explorepb.SaveProfileRequest{
		Profile: &explorepb.Profile{
			UserId:      "gina",
			DisplayName: "Gina",
			BudgetMin:   proto.Int32(0),
			Smoking:     proto.Bool(false),
		},
	})
	require.NoError(t, err)
	assert.False(t, saved.GetProfile().GetProfileComplete())

	got, err := explore.GetProfile(ctx, &explorepb.GetProfileRequest{UserId: "gina"})
	require.NoError(t, err)
	p := got.GetProfile()
	require.NotNil(t, p.BudgetMin)
	assert.Equal(t, int32(0), *p.BudgetMin)
	require.NotNil(t, p.Smoking)
	assert.False(t, *p.Smoking)
	assert.Nil(t, p.BudgetMax)
	assert.Nil(t, p.Pets)
	assert.Nil(t, p.Latitude)
}

func TestHealthService(t *testing.T) {
	conn := startServer(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: chatpb.ChatService_ServiceDesc.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestOpsRouter(t *testing.T) {
	router := server.NewOpsRouter(map[string]server.Check{
		"db":    func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"db":"ok","redis":"connection refused"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
