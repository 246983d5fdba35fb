package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/roommatch/internal/metrics"
)

// UnaryInterceptor logs each call and records its latency by method and code.
func UnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		observe(log, info.FullMethod, start, err)
		return resp, err
	}
}

func StreamInterceptor(log *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		observe(log, info.FullMethod, start, err)
		return err
	}
}

func observe(log *slog.Logger, method string, start time.Time, err error) {
	elapsed := time.Since(start)
	code := status.Code(err)
	metrics.RecordRPC(method, code.String(), elapsed)

	switch code {
	case codes.OK, codes.Canceled:
		log.Debug("rpc", "method", method, "code", code.String(), "elapsed", elapsed)
	case codes.Internal, codes.Unavailable, codes.Unknown:
		log.Error("rpc", "method", method, "code", code.String(), "elapsed", elapsed, "err", err)
	default:
		log.Info("rpc", "method", method, "code", code.String(), "elapsed", elapsed, "err", err)
	}
}
