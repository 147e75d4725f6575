package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gtsdev/usuarios/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDFromContext returns the id assigned by requestIDInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestIDInterceptor keeps an incoming x-request-id or generates a new one
// and sends it back in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDMetadataKey); len(values) > 0 {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	// fails outside a real transport stream, e.g. in direct calls from tests
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDMetadataKey, id))

	return handler(context.WithValue(ctx, requestIDKey, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc served",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
		"request_id", RequestIDFromContext(ctx),
	)

	return resp, err
}
