package grpc

import (
	"context"
	"errors"

	"github.com/gtsdev/usuarios/internal/common"
	pb "github.com/gtsdev/usuarios/internal/proto"
	"github.com/gtsdev/usuarios/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) List(ctx context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {

	result, err := s.users.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListResponse{Users: make([]*pb.User, 0, len(result))}
	for _, u := range result {
		resp.Users = append(resp.Users, toPB(u))
	}
	return resp, nil
}

func (s *GRPCServer) Get(ctx context.Context, req *pb.GetRequest) (*pb.User, error) {

	u, err := s.users.Get(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return toPB(u), nil
}

func (s *GRPCServer) Create(ctx context.Context, req *pb.CreateRequest) (*pb.User, error) {

	if req.User == nil {
		return nil, status.Error(codes.InvalidArgument, common.MessageInvalidInput)
	}

	u, err := s.users.Create(ctx, fromPB(req.User))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return toPB(u), nil
}

func (s *GRPCServer) Update(ctx context.Context, req *pb.UpdateRequest) (*pb.User, error) {

	var candidate models.User
	if req.User != nil {
		candidate = fromPB(req.User)
	}

	u, err := s.users.Update(ctx, req.Id, candidate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return toPB(u), nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {

	if err := s.users.Delete(ctx, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.DeleteResponse{Message: common.MessageUserDeleted}, nil
}

// toStatus maps service errors onto gRPC status codes.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.MessageUserNotFound)
	case errors.Is(err, common.ErrorInvalidInput):
		return status.Error(codes.InvalidArgument, common.MessageInvalidInput)
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, common.MessageAlreadyExists)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, common.MessageInternal)
	}
}

func toPB(u models.User) *pb.User {
	return &pb.User{Id: u.ID, Name: u.Name, Age: u.Age}
}

func fromPB(u *pb.User) models.User {
	return models.User{ID: u.Id, Name: u.Name, Age: u.Age}
}
