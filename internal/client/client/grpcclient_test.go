package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gtsdev/usuarios/internal/client/models"
	"github.com/gtsdev/usuarios/internal/common"
	"github.com/gtsdev/usuarios/internal/logging"
	pb "github.com/gtsdev/usuarios/internal/proto"
	gs "github.com/gtsdev/usuarios/internal/server/grpc"
	srvmodels "github.com/gtsdev/usuarios/internal/server/models"
	"github.com/gtsdev/usuarios/internal/server/repositories/users"
	"github.com/gtsdev/usuarios/internal/server/services"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastGetReq    *pb.GetRequest
	lastCreateReq *pb.CreateRequest
	lastUpdateReq *pb.UpdateRequest
	lastDeleteReq *pb.DeleteRequest

	listResp   *pb.ListResponse
	userResp   *pb.User
	deleteResp *pb.DeleteResponse
	err        error
}

func (f *fakePB) List(ctx context.Context, in *pb.ListRequest, opts ...grpc.CallOption) (*pb.ListResponse, error) {
	return f.listResp, f.err
}
func (f *fakePB) Get(ctx context.Context, in *pb.GetRequest, opts ...grpc.CallOption) (*pb.User, error) {
	f.lastGetReq = in
	return f.userResp, f.err
}
func (f *fakePB) Create(ctx context.Context, in *pb.CreateRequest, opts ...grpc.CallOption) (*pb.User, error) {
	f.lastCreateReq = in
	return f.userResp, f.err
}
func (f *fakePB) Update(ctx context.Context, in *pb.UpdateRequest, opts ...grpc.CallOption) (*pb.User, error) {
	f.lastUpdateReq = in
	return f.userResp, f.err
}
func (f *fakePB) Delete(ctx context.Context, in *pb.DeleteRequest, opts ...grpc.CallOption) (*pb.DeleteResponse, error) {
	f.lastDeleteReq = in
	return f.deleteResp, f.err
}

/*************
 * interceptor tests
 *************/

func TestRequestIDInterceptor_AddsID(t *testing.T) {
	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.RequestIDMetadataKey)
		return nil
	}

	require.NoError(t, requestIDInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	require.Len(t, got, 1)
	require.NotEmpty(t, got[0])
}

func TestRequestIDInterceptor_KeepsCallerID(t *testing.T) {
	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.RequestIDMetadataKey)
		return nil
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDMetadataKey, "mine")
	require.NoError(t, requestIDInterceptor(ctx, "/m", nil, nil, nil, invoker))
	require.Equal(t, []string{"mine"}, got)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	err := c.mapError(status.Error(codes.NotFound, common.MessageUserNotFound))
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.EqualError(t, err, common.MessageUserNotFound)

	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), common.ErrorInvalidInput)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrorAlreadyExists)
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	err = c.mapError(status.Error(codes.Internal, common.MessageInternal))
	require.ErrorIs(t, err, common.ErrorInternal)
	require.EqualError(t, err, common.MessageInternal)
	require.ErrorContains(t, c.mapError(status.Error(codes.PermissionDenied, "no")), "rpc error:")
	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
	require.NoError(t, c.mapError(nil))
}

/*************
 * method tests over the fake
 *************/

func TestList_SortsByID(t *testing.T) {
	f := &fakePB{listResp: &pb.ListResponse{Users: []*pb.User{
		{Id: 3, Name: "C", Age: 3},
		{Id: 1, Name: "A", Age: 1},
	}}}
	c := &GRPCClient{client: f}

	got, err := c.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.User{{ID: 1, Name: "A", Age: 1}, {ID: 3, Name: "C", Age: 3}}, got)
}

func TestGet_PassesID(t *testing.T) {
	f := &fakePB{userResp: &pb.User{Id: 7, Name: "Siete", Age: 70}}
	c := &GRPCClient{client: f}

	got, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, models.User{ID: 7, Name: "Siete", Age: 70}, got)
	require.Equal(t, uint32(7), f.lastGetReq.Id)
}

func TestCreateAndUpdate_MapRequests(t *testing.T) {
	f := &fakePB{userResp: &pb.User{Id: 2, Name: "Ana", Age: 30}}
	c := &GRPCClient{client: f}

	_, err := c.Create(context.Background(), models.User{ID: 2, Name: "Ana", Age: 30})
	require.NoError(t, err)
	require.Equal(t, &pb.User{Id: 2, Name: "Ana", Age: 30}, f.lastCreateReq.User)

	_, err = c.Update(context.Background(), 2, models.User{Name: "Ana", Age: 31})
	require.NoError(t, err)
	require.Equal(t, uint32(2), f.lastUpdateReq.Id)
	require.Equal(t, uint8(31), f.lastUpdateReq.User.Age)
}

func TestDelete_ReturnsMessageAndMapsError(t *testing.T) {
	f := &fakePB{deleteResp: &pb.DeleteResponse{Message: common.MessageUserDeleted}}
	c := &GRPCClient{client: f}

	msg, err := c.Delete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, common.MessageUserDeleted, msg)
	require.Equal(t, uint32(1), f.lastDeleteReq.Id)

	f.err = status.Error(codes.NotFound, common.MessageUserNotFound)
	_, err = c.Delete(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

/*************
 * against a real server over bufconn
 *************/

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestGRPCClient_AgainstServer(t *testing.T) {
	svc := services.NewUserService(users.NewInMemoryRepository(srvmodels.SeedUser), nopLogger{}, nil)
	srv := gs.NewGRPCServer("bufnet", nopLogger{}, svc).NewServer()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewUsersClientService("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, models.User{ID: 1, Name: "GTS", Age: 17}, u)

	_, err = c.Create(ctx, models.User{ID: 1, Name: "Dup", Age: 1})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.EqualError(t, err, common.MessageAlreadyExists)

	_, err = c.Create(ctx, models.User{ID: 2, Name: "Ana", Age: 30})
	require.NoError(t, err)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	msg, err := c.Delete(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, common.MessageUserDeleted, msg)

	_, err = c.Get(ctx, 2)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClose_NilConn(t *testing.T) {
	require.NoError(t, (&GRPCClient{}).Close())
}
