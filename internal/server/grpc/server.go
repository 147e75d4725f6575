package grpc

import (
	"context"
	"net"

	"github.com/gtsdev/usuarios/internal/logging"
	pb "github.com/gtsdev/usuarios/internal/proto"
	"github.com/gtsdev/usuarios/internal/server/models"
	"google.golang.org/grpc"
)

// userSvc is the subset of services.UserService the handlers need.
type userSvc interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint32) (models.User, error)
	Create(ctx context.Context, candidate models.User) (models.User, error)
	Update(ctx context.Context, id uint32, candidate models.User) (models.User, error)
	Delete(ctx context.Context, id uint32) error
}

type GRPCServer struct {
	address string
	users   userSvc
	logger  logging.Logger
}

var _ pb.UsersServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us userSvc) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
	}
}

// NewServer creates a *grpc.Server with the JSON codec, the interceptors and
// the Users service registered. It does not listen.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor),
	}, opts...)

	srv := grpc.NewServer(opts...)
	pb.RegisterUsersServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
