package testpb

import "github.com/wireframe-rpc/wireframe/rpcdesc"

// GreeterDesc is the service descriptor a generator would emit for:
//
//	service Greeter { rpc SayHello(HelloRequest) returns (HelloReply); }
var GreeterDesc = rpcdesc.NewServiceDescriptor("helloworld.Greeter",
	rpcdesc.MethodDescriptor{
		Name:      "SayHello",
		Path:      "/helloworld.Greeter/SayHello",
		NewInput:  func() any { return &HelloRequest{} },
		NewOutput: func() any { return &HelloReply{} },
	},
)
