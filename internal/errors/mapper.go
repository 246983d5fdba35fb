// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/roommatch/internal/utils/pagination"
)

var (
	// ErrPersistence marks any failed store read/write.
	ErrPersistence = errors.New("persistence failure")

	ErrNotMatched           = errors.New("users are not matched")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrEmptyMessage         = errors.New("message needs text, an image or a file")
	ErrInvalidPayload       = errors.New("invalid message payload")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("sender is not a participant of the conversation")
	ErrMatchCreationFailed  = errors.New("match creation failed")
)

// Persistence wraps a store error so callers can test for ErrPersistence
// while the original cause stays reachable through errors.Is/As.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	case errors.Is(err, ErrNotMatched):
		return status.Error(codes.FailedPrecondition, ErrNotMatched.Error())

	case errors.Is(err, ErrNotParticipant):
		return status.Error(codes.PermissionDenied, ErrNotParticipant.Error())

	case errors.Is(err, ErrProfileNotFound):
		return status.Error(codes.NotFound, ErrProfileNotFound.Error())

	case errors.Is(err, ErrConversationNotFound):
		return status.Error(codes.NotFound, ErrConversationNotFound.Error())

	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrInvalidPayload), errors.Is(err, ErrInvalidUserID),
		errors.Is(err, pagination.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, ErrPersistence):
		return status.Error(codes.Unavailable, err.Error())

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}
