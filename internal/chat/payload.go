package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	svcErr "github.com/oggyb/roommatch/internal/errors"
	"github.com/oggyb/roommatch/internal/utils/validate"
)

const previewLimit = 120

// Payload is the content of one message. Text may accompany one attachment,
// either an image or a file.
type Payload struct {
	Text     string `validate:"max=4000"`
	ImageURL string `validate:"omitempty,excluded_with=FileURL,url,max=1024"`
	FileURL  string `validate:"omitempty,url,max=1024"`
	FileName string `validate:"required_with=FileURL,max=255"`
	FileSize int64  `validate:"gte=0"`
	FileType string `validate:"max=128"`
}

// Validate runs before any I/O.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.Text) == "" && p.ImageURL == "" && p.FileURL == "" {
		return svcErr.ErrEmptyMessage
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", svcErr.ErrInvalidPayload, err)
	}
	return nil
}

// Preview is the conversation list teaser for the message.
func (p Payload) Preview() string {
	text := strings.TrimSpace(p.Text)
	switch {
	case text != "":
		return truncate(text, previewLimit)
	case p.ImageURL != "":
		return "Photo"
	case p.FileName != "":
		return truncate("File: "+p.FileName, previewLimit)
	default:
		return "File"
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
