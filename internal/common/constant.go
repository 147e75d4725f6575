package common

// RequestIDHeaderName is the HTTP header carrying the per-request id.
const RequestIDHeaderName = "X-Request-Id"

// RequestIDMetadataKey is the gRPC metadata key carrying the per-request id.
const RequestIDMetadataKey = "x-request-id"
