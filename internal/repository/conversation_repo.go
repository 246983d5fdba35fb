package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/utils/pagination"
)

// ConversationRepository stores conversations and their messages.
type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(database *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: database}
}

// Get returns the conversation, or nil when it does not exist.
func (r *ConversationRepository) Get(ctx context.Context, id string) (*db.Conversation, error) {
	var c db.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateIfMissing inserts c unless a conversation with the same id exists
// and reports whether a row was written.
func (r *ConversationRepository) CreateIfMissing(ctx context.Context, c *db.Conversation) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(c)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AppendMessage inserts m and refreshes the conversation preview in one
// transaction. A vanished conversation aborts the insert.
func (r *ConversationRepository) AppendMessage(ctx context.Context, m *db.Message, preview string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Conversation{}).Where("id = ?", m.ConversationID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&db.Conversation{}).
			Where("id = ?", m.ConversationID).
			Updates(map[string]any{
				"last_message_at":        m.SentAt,
				"last_message_text":      preview,
				"last_message_sender_id": m.SenderID,
			}).Error
	})
}

// ListMessages returns messages in ascending send order, starting after the
// cursor position.
func (r *ConversationRepository) ListMessages(
	ctx context.Context,
	conversationID string,
	paginationToken *string,
	limit int,
) ([]db.Message, *string, error) {
	cursor, err := pagination.Decode(pagination.Deref(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC, id ASC").
		Limit(limit + 1)
	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.UnixMilli).UTC()
		query = query.Where("(sent_at > ? OR (sent_at = ? AND id > ?))", ts, ts, cursor.ID)
	}

	var messages []db.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(messages) > limit {
		last := messages[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{ID: last.ID, UnixMilli: last.SentAt.UnixMilli()})
		nextToken = &token
		messages = messages[:limit]
	}
	return messages, nextToken, nil
}

// ListRecentMessages returns the latest limit messages in ascending order.
func (r *ConversationRepository) ListRecentMessages(ctx context.Context, conversationID string, limit int) ([]db.Message, error) {
	var messages []db.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	slices.Reverse(messages)
	return messages, nil
}

// ListMessageIDs returns the ids of every message in the conversation.
func (r *ConversationRepository) ListMessageIDs(ctx context.Context, conversationID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC, id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *ConversationRepository) DeleteMessage(ctx context.Context, conversationID, messageID string) error {
	return r.db.WithContext(ctx).
		Where("conversation_id = ? AND id = ?", conversationID, messageID).
		Delete(&db.Message{}).Error
}

func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&db.Conversation{}).Error
}

// ListFor returns every conversation userID participates in.
func (r *ConversationRepository) ListFor(ctx context.Context, userID string) ([]db.Conversation, error) {
	var conversations []db.Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("id ASC").
		Find(&conversations).Error
	return conversations, err
}
