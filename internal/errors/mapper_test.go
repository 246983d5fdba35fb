package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/roommatch/internal/errors"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not matched", fmt.Errorf("append: %w", svcErr.ErrNotMatched), codes.FailedPrecondition},
		{"not participant", svcErr.ErrNotParticipant, codes.PermissionDenied},
		{"profile missing", svcErr.ErrProfileNotFound, codes.NotFound},
		{"conversation missing", svcErr.ErrConversationNotFound, codes.NotFound},
		{"gorm not found", gorm.ErrRecordNotFound, codes.NotFound},
		{"empty message", svcErr.ErrEmptyMessage, codes.InvalidArgument},
		{"bad user id", svcErr.ErrInvalidUserID, codes.InvalidArgument},
		{"store down", svcErr.Persistence("swipes.upsert", errors.New("conn refused")), codes.Unavailable},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"unknown", errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(svcErr.Map(tc.err))
			assert.True(t, ok)
			assert.Equal(t, tc.code, st.Code())
		})
	}

	assert.NoError(t, svcErr.Map(nil))
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := svcErr.Persistence("matches.create_pair", cause)

	assert.ErrorIs(t, err, svcErr.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "matches.create_pair")
	assert.NoError(t, svcErr.Persistence("noop", nil))
}
