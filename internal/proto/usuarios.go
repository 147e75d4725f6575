// Package proto describes the Users gRPC service: its messages, the service
// descriptor, and client/server stubs. Messages travel as JSON via Codec.
package proto

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "usuarios.Users"

const (
	Users_List_FullMethodName   = "/usuarios.Users/List"
	Users_Get_FullMethodName    = "/usuarios.Users/Get"
	Users_Create_FullMethodName = "/usuarios.Users/Create"
	Users_Update_FullMethodName = "/usuarios.Users/Update"
	Users_Delete_FullMethodName = "/usuarios.Users/Delete"
)

type User struct {
	Id   uint32 `json:"id"`
	Name string `json:"name"`
	Age  uint8  `json:"age"`
}

type ListRequest struct{}

type ListResponse struct {
	Users []*User `json:"users"`
}

type GetRequest struct {
	Id uint32 `json:"id"`
}

type CreateRequest struct {
	User *User `json:"user"`
}

// UpdateRequest carries the target id separately; it overrides User.Id.
type UpdateRequest struct {
	Id   uint32 `json:"id"`
	User *User  `json:"user"`
}

type DeleteRequest struct {
	Id uint32 `json:"id"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

// UsersServer is the server API for the Users service.
type UsersServer interface {
	List(context.Context, *ListRequest) (*ListResponse, error)
	Get(context.Context, *GetRequest) (*User, error)
	Create(context.Context, *CreateRequest) (*User, error)
	Update(context.Context, *UpdateRequest) (*User, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
}

// RegisterUsersServer registers srv on s.
func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&Users_ServiceDesc, srv)
}

// Users_ServiceDesc is the grpc.ServiceDesc for the Users service.
var Users_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("List", Users_List_FullMethodName, UsersServer.List),
		unary("Get", Users_Get_FullMethodName, UsersServer.Get),
		unary("Create", Users_Create_FullMethodName, UsersServer.Create),
		unary("Update", Users_Update_FullMethodName, UsersServer.Update),
		unary("Delete", Users_Delete_FullMethodName, UsersServer.Delete),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "usuarios",
}

func unary[Req, Resp any](name, fullMethod string, call func(UsersServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				out, err := call(srv.(UsersServer), ctx, in)
				return out, err
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				out, err := call(srv.(UsersServer), ctx, req.(*Req))
				return out, err
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// UsersClient is the client API for the Users service.
type UsersClient interface {
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*User, error)
	Create(ctx context.Context, in *CreateRequest, opts ...grpc.CallOption) (*User, error)
	Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*User, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
}

type usersClient struct {
	cc grpc.ClientConnInterface
}

// NewUsersClient returns a UsersClient that always encodes with Codec.
func NewUsersClient(cc grpc.ClientConnInterface) UsersClient {
	return &usersClient{cc: cc}
}

func (c *usersClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *usersClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, Users_List_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, Users_Get_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Create(ctx context.Context, in *CreateRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, Users_Create_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, Users_Update_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.invoke(ctx, Users_Delete_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
