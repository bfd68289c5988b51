package auth

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationMetadataKey = "authorization"

// UnaryServerInterceptor проверяет bearer-токен из metadata и кладёт владельца в контекст.
// Методы из skip (например, health-check) пропускаются без проверки.
func UnaryServerInterceptor(tokens *Tokens, skip ...string) grpc.UnaryServerInterceptor {
	skipped := make(map[string]struct{}, len(skip))
	for _, method := range skip {
		skipped[method] = struct{}{}
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := skipped[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(authorizationMetadataKey); len(values) > 0 {
				header = values[0]
			}
		}

		owner, err := tokens.Authenticate(header)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, ErrMissingToken) {
				msg = "missing token"
			}
			return nil, status.Error(codes.Unauthenticated, msg)
		}

		return handler(WithOwner(ctx, owner), req)
	}
}

// BearerCredentials - per-RPC credentials для клиента: добавляет Authorization к каждому вызову.
type BearerCredentials struct {
	Token  string
	Secure bool
}

func (c BearerCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{authorizationMetadataKey: "Bearer " + c.Token}, nil
}

func (c BearerCredentials) RequireTransportSecurity() bool {
	return c.Secure
}
