package domain

type ctxKey string

// RequesterCtxKey carries the authenticated subject through a request context.
const RequesterCtxKey ctxKey = "requester"
