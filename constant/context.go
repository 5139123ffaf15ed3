package constant

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ClientIPKey  ContextKey = "client_ip"
)
