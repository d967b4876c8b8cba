package httpapi

import "context"

type contextKey string

const (
	requestIDContextKey contextKey = "request_id"
	routeContextKey     contextKey = "route_pattern"
)

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestIDFromContext returns the id assigned by the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// routeHolder is filled by the mux wrapper once the pattern is known, so
// outer middleware can label metrics with the route template.
type routeHolder struct {
	pattern string
}

func withRouteHolder(ctx context.Context) (context.Context, *routeHolder) {
	holder := &routeHolder{}
	return context.WithValue(ctx, routeContextKey, holder), holder
}

func routeHolderFromContext(ctx context.Context) *routeHolder {
	holder, _ := ctx.Value(routeContextKey).(*routeHolder)
	return holder
}
