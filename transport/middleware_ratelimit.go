package transport

import (
	"net"
	"net/http"
	"strings"

	"github.com/platewise/account-service/constant"
	utilsContext "github.com/platewise/account-service/utils/context"
	"github.com/platewise/account-service/utils/errors"
	"github.com/platewise/account-service/utils/ratelimit"
)

// RateLimitMiddleware gates a handler behind the per-client token
// bucket. Applied only to the sensitive routes (login, forgot-password);
// over-capacity requests get 429 immediately.
func RateLimitMiddleware(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := clientKey(r)
			if !limiter.Allow(key) {
				writeError(w, errors.SetCustomError(constant.ErrRateLimited))
				return
			}

			ctx := utilsContext.WithClientIP(r.Context(), key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientKey identifies the caller: first X-Forwarded-For hop when
// behind a proxy, else the remote address host.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
