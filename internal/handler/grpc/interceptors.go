package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/app"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey       = "x-trace-id"
	authorizationKey = "authorization"
)

// withTraceID reuses the caller's x-trace-id metadata or generates one,
// returns it in the response header and attaches a child logger to ctx.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("grpc_method", info.FullMethod)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

// withLogging writes one access log line per call.
func (h *Handler) withLogging(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	code := status.Code(err)
	event := logger.FromContext(ctx).Info()
	if code == codes.Internal || code == codes.Unknown {
		event = logger.FromContext(ctx).Error()
	}
	event.Str("code", code.String()).Dur("duration", time.Since(start)).Send()

	return resp, err
}

// auth verifies the bearer token in the authorization metadata when
// authentication is enabled and stores the user's ID and role in ctx.
func (h *Handler) auth(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if !h.services.AuthService.Enabled() {
		return next(ctx, req)
	}

	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(firstMetadata(ctx, authorizationKey))
	if err != nil {
		log.Err(err).Str("func", "*Handler.auth").Send()
		return nil, status.Error(codes.Unauthenticated, app.MsgUnauthorized)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
	ctx = context.WithValue(ctx, utils.RoleCtxKey, token.Role)

	return next(ctx, req)
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
