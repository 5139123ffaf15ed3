package context

import (
	"context"

	"github.com/platewise/account-service/constant"
)

// WithRequestID embeds the request id assigned by the logging middleware.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// WithClientIP embeds the client key used for rate limiting.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, constant.ClientIPKey, ip)
}

func GetClientIP(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ClientIPKey)
	if v == nil {
		return "", false
	}
	ip, ok := v.(string)
	return ip, ok
}
