package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
)

// RequestIDFrom returns the request id stored on ctx by the request id middleware
func RequestIDFrom(ctx interface{ Value(any) any }) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}
	return ""
}
