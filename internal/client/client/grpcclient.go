package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/gtsdev/usuarios/internal/client/models"
	"github.com/gtsdev/usuarios/internal/common"
	pb "github.com/gtsdev/usuarios/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UsersClient
}

var _ Client = (*GRPCClient)(nil)

// withRequestID tags the outgoing call with a fresh request id unless the
// caller already set one.
func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDMetadataKey)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDMetadataKey, uuid.NewString())
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewUsersClientService creates a client for endpointURL. The connection is
// established lazily on the first call. Extra dial options are appended to
// the defaults (insecure transport, request id interceptor).
func NewUsersClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUsersClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// List returns every user sorted by id.
func (s *GRPCClient) List(ctx context.Context) ([]models.User, error) {
	resp, err := s.client.List(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		result = append(result, fromPB(u))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (s *GRPCClient) Get(ctx context.Context, id uint32) (models.User, error) {
	resp, err := s.client.Get(ctx, &pb.GetRequest{Id: id})
	if err != nil {
		return models.User{}, s.mapError(err)
	}
	return fromPB(resp), nil
}

func (s *GRPCClient) Create(ctx context.Context, u models.User) (models.User, error) {
	resp, err := s.client.Create(ctx, &pb.CreateRequest{User: toPB(u)})
	if err != nil {
		return models.User{}, s.mapError(err)
	}
	return fromPB(resp), nil
}

func (s *GRPCClient) Update(ctx context.Context, id uint32, u models.User) (models.User, error) {
	resp, err := s.client.Update(ctx, &pb.UpdateRequest{Id: id, User: toPB(u)})
	if err != nil {
		return models.User{}, s.mapError(err)
	}
	return fromPB(resp), nil
}

// Delete removes the user and returns the server confirmation message.
func (s *GRPCClient) Delete(ctx context.Context, id uint32) (string, error) {
	resp, err := s.client.Delete(ctx, &pb.DeleteRequest{Id: id})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.NotFound:
		return &RPCError{Message: st.Message(), Err: common.ErrorNotFound}
	case codes.InvalidArgument:
		return &RPCError{Message: st.Message(), Err: common.ErrorInvalidInput}
	case codes.AlreadyExists:
		return &RPCError{Message: st.Message(), Err: common.ErrorAlreadyExists}
	case codes.Internal:
		return &RPCError{Message: st.Message(), Err: common.ErrorInternal}
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func toPB(u models.User) *pb.User {
	return &pb.User{Id: u.ID, Name: u.Name, Age: u.Age}
}

func fromPB(u *pb.User) models.User {
	if u == nil {
		return models.User{}
	}
	return models.User{ID: u.Id, Name: u.Name, Age: u.Age}
}
