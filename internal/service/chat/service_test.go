package chat_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/app"
	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/logger"
	pb "github.com/oggyb/roommatch/internal/proto/chat"
	"github.com/oggyb/roommatch/internal/service/chat"
)

// setupMatched returns a chat service where alice and bob are matched.
func setupMatched(t *testing.T) (*chat.Service, *gorm.DB) {
	t.Helper()

	database, err := db.NewMemoryDB(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.SeedMinimalTestData(database))

	appCtx, err := app.New(config.New(), database, nil, logger.Discard())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, appCtx.Swipes.RecordSwipe(ctx, "bob", "alice", true))
	_, err = appCtx.Matches.ProcessLikeAndCheckMatch(ctx, "bob", "alice")
	require.NoError(t, err)

	return chat.NewChatService(appCtx), database
}

func TestListMessagesPaginates(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupMatched(t)

	conv, err := svc.OpenConversation(ctx, &pb.OpenConversationRequest{UserId: "bob", OtherUserId: "alice"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
			ConversationId: conv.ConversationId,
			SenderId:       "alice",
			Text:           fmt.Sprintf("msg %d", i),
		})
		require.NoError(t, err)
	}

	var texts []string
	req := &pb.ListMessagesRequest{ConversationId: conv.ConversationId, ViewerId: "bob", Limit: 2}
	for pages := 0; ; pages++ {
		require.Less(t, pages, 5, "pagination did not terminate")
		resp, err := svc.ListMessages(ctx, req)
		require.NoError(t, err)
		for _, m := range resp.Messages {
			texts = append(texts, m.Text)
		}
		if resp.NextPaginationToken == nil {
			break
		}
		req.PaginationToken = resp.NextPaginationToken
	}
	assert.Equal(t, []string{"msg 0", "msg 1", "msg 2", "msg 3", "msg 4"}, texts)
}

func TestSendMessageAttachmentValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupMatched(t)

	conv, err := svc.OpenConversation(ctx, &pb.OpenConversationRequest{UserId: "alice", OtherUserId: "bob"})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{
		ConversationId: conv.ConversationId,
		SenderId:       "alice",
		FileUrl:        "https://files.example.com/lease.pdf",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "file without a name")

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{
		ConversationId: conv.ConversationId,
		SenderId:       "alice",
		FileUrl:        "https://files.example.com/lease.pdf",
		FileName:       "lease.pdf",
		FileSize:       2048,
		FileType:       "application/pdf",
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{
		ConversationId: conv.ConversationId,
		SenderId:       "carol",
		Text:           "hi",
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

// TestCleanupConversationsAfterLostMatch removes a conversation whose match
// records disappeared without going through unmatch.
func TestCleanupConversationsAfterLostMatch(t *testing.T) {
	ctx := context.Background()
	svc, database := setupMatched(t)

	conv, err := svc.OpenConversation(ctx, &pb.OpenConversationRequest{UserId: "alice", OtherUserId: "bob"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{ConversationId: conv.ConversationId, SenderId: "bob", Text: "hi"})
	require.NoError(t, err)

	resp, err := svc.CleanupConversations(ctx, &pb.CleanupConversationsRequest{UserId: "alice"})
	require.NoError(t, err)
	assert.Zero(t, resp.Removed)

	require.NoError(t, database.Exec("DELETE FROM matches").Error)

	resp, err = svc.CleanupConversations(ctx, &pb.CleanupConversationsRequest{UserId: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Removed)

	var left int64
	require.NoError(t, database.Model(&db.Message{}).Count(&left).Error)
	assert.Zero(t, left)

	_, err = svc.ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: conv.ConversationId, ViewerId: "alice"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = svc.ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: "alice_zed", ViewerId: "alice"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "never matched")
}
