package userctx

import "context"

// Context key type
type contextKey string

const clientIPKey contextKey = "client_ip"

// SetClientIP adds the resolved caller address to request context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the caller address from request context
func GetClientIP(ctx context.Context) string {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok {
		return "unknown"
	}
	return ip
}
