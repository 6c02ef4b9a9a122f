package types

// ContextRequestIDKey is the gin context key under which the middleware
// stores the per-request id.
const ContextRequestIDKey = "request_id"

// RequestIDHeader is echoed back to callers for correlation.
const RequestIDHeader = "X-Request-ID"
