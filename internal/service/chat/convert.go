package chat

import (
	"github.com/oggyb/roommatch/internal/chat"
	"github.com/oggyb/roommatch/internal/db"
	pb "github.com/oggyb/roommatch/internal/proto/chat"
)

func payloadFromPB(req *pb.SendMessageRequest) chat.Payload {
	return chat.Payload{
		Text:     req.Text,
		ImageURL: req.ImageUrl,
		FileURL:  req.FileUrl,
		FileName: req.FileName,
		FileSize: req.FileSize,
		FileType: req.FileType,
	}
}

func messagesToPB(msgs []db.Message) []*pb.Message {
	out := make([]*pb.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &pb.Message{
			Id:           m.ID,
			SenderId:     m.SenderID,
			Text:         m.Text,
			ImageUrl:     m.ImageURL,
			FileUrl:      m.FileURL,
			FileName:     m.FileName,
			FileSize:     m.FileSize,
			FileType:     m.FileType,
			SentAtUnixMs: m.SentAt.UnixMilli(),
		})
	}
	return out
}

func snapshotToPB(s chat.Snapshot) *pb.ConversationSnapshot {
	out := &pb.ConversationSnapshot{
		ConversationId: s.ConversationID,
		Matched:        s.Matched,
		Closed:         s.Closed,
		Messages:       messagesToPB(s.Messages),
	}
	if c := s.Conversation; c != nil && s.Matched {
		if c.LastMessageText != nil {
			out.LastMessageText = *c.LastMessageText
		}
		if c.LastMessageSenderID != nil {
			out.LastMessageSenderId = *c.LastMessageSenderID
		}
	}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	return out
}
