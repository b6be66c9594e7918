package rpcdesc_test

import (
	"testing"

	"github.com/wireframe-rpc/wireframe/rpcdesc"
)

func TestMethodByName(t *testing.T) {
	svc := rpcdesc.NewServiceDescriptor("helloworld.Greeter",
		rpcdesc.MethodDescriptor{Name: "SayHello", Path: "/helloworld.Greeter/SayHello"},
	)
	m, ok := svc.MethodByName("SayHello")
	if !ok {
		t.Fatal("expected SayHello to be found")
	}
	if m.Path != "/helloworld.Greeter/SayHello" {
		t.Fatalf("Path = %q", m.Path)
	}
	if _, ok := svc.MethodByName("Nope"); ok {
		t.Fatal("expected Nope to be absent")
	}
}

func TestNewServiceDescriptorPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate method name")
		}
	}()
	rpcdesc.NewServiceDescriptor("x.Y",
		rpcdesc.MethodDescriptor{Name: "M"},
		rpcdesc.MethodDescriptor{Name: "M"},
	)
}
