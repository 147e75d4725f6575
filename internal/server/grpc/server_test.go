package grpc

import (
	"context"
	"net"
	"sort"
	"testing"
	"time"

	"github.com/gtsdev/usuarios/internal/common"
	pb "github.com/gtsdev/usuarios/internal/proto"
	"github.com/gtsdev/usuarios/internal/server/models"
	"github.com/gtsdev/usuarios/internal/server/repositories/users"
	"github.com/gtsdev/usuarios/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeUsers{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeUsers{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// dialBufconn serves a seeded store over an in-memory listener.
func dialBufconn(t *testing.T) pb.UsersClient {
	t.Helper()

	svc := services.NewUserService(users.NewInMemoryRepository(models.SeedUser), nopLogger{}, nil)
	gs := NewGRPCServer("bufnet", nopLogger{}, svc).NewServer()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewUsersClient(conn)
}

func TestEndToEnd_Bufconn(t *testing.T) {
	c := dialBufconn(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := c.Get(ctx, &pb.GetRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, &pb.User{Id: 1, Name: "GTS", Age: 17}, got)

	_, err = c.Get(ctx, &pb.GetRequest{Id: 2})
	assert.Equal(t, codes.NotFound, status.Code(err))

	created, err := c.Create(ctx, &pb.CreateRequest{User: &pb.User{Id: 2, Name: "Ana", Age: 30}})
	require.NoError(t, err)
	assert.Equal(t, &pb.User{Id: 2, Name: "Ana", Age: 30}, created)

	_, err = c.Create(ctx, &pb.CreateRequest{User: &pb.User{Id: 1, Name: "X", Age: 5}})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.Create(ctx, &pb.CreateRequest{User: &pb.User{Id: 3, Name: "", Age: 10}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, common.MessageInvalidInput, status.Convert(err).Message())

	updated, err := c.Update(ctx, &pb.UpdateRequest{Id: 1, User: &pb.User{Id: 99, Name: "Renamed", Age: 18}})
	require.NoError(t, err)
	assert.Equal(t, &pb.User{Id: 1, Name: "Renamed", Age: 18}, updated)

	list, err := c.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	sort.Slice(list.Users, func(i, j int) bool { return list.Users[i].Id < list.Users[j].Id })
	assert.Equal(t, []*pb.User{{Id: 1, Name: "Renamed", Age: 18}, {Id: 2, Name: "Ana", Age: 30}}, list.Users)

	del, err := c.Delete(ctx, &pb.DeleteRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, common.MessageUserDeleted, del.Message)

	_, err = c.Get(ctx, &pb.GetRequest{Id: 1})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEndToEnd_RequestIDHeader(t *testing.T) {
	c := dialBufconn(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDMetadataKey, "rid-42")

	var header metadata.MD
	_, err := c.List(ctx, &pb.ListRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"rid-42"}, header.Get(common.RequestIDMetadataKey))
}
