// Package client contains the admin client's transport layer.
//
// Client is the contract the CLI uses; GRPCClient implements it over the
// server's usuarios.Users gRPC service. Every call carries an
// x-request-id metadata entry so server logs can be correlated.
//
// Status codes are mapped back to the sentinels in internal/common
// (NotFound, InvalidArgument, AlreadyExists, Internal) wrapped in an RPCError that
// keeps the server's message. Unavailable and DeadlineExceeded become
// ErrUnavailable.
package client
