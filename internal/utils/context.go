// Package utils holds small helpers shared by the server and the console:
// context keys, JSON responses, JWT handling, the HTTP client and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OperatorIDCtxKey stores the id of the authenticated operator.
//
//	ctx := context.WithValue(ctx, utils.OperatorIDCtxKey, int64(42))
var OperatorIDCtxKey = contextKey("operatorID")

// GetOperatorIDFromContext returns the operator id put into ctx by the auth
// middleware. ok is false when the value is missing or has another type.
func GetOperatorIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(OperatorIDCtxKey).(int64)
	return id, ok
}
