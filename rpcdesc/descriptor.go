// Package rpcdesc holds the compile-time service/method descriptors that
// bind together the wire codec, the client multiplexer, and the server
// dispatcher, per spec.md §4.4. These are the shape a code generator is
// expected to emit (spec.md §6's descriptor boundary); this package only
// defines the shape, not a generator.
package rpcdesc

import "fmt"

// MethodDescriptor names one RPC method and binds its input/output types
// via zero-argument constructors, so the client and server can allocate
// fresh messages without reflection.
type MethodDescriptor struct {
	// Name is the proto method name, e.g. "SayHello".
	Name string
	// Path is "/<package>.<Service>/<Method>".
	Path string
	// NewInput allocates a zero-value input message.
	NewInput func() any
	// NewOutput allocates a zero-value output message.
	NewOutput func() any
}

// ServiceDescriptor names a service and its methods, with a constant-time
// by-name lookup.
type ServiceDescriptor struct {
	// Name is "<package>.<Service>".
	Name    string
	Methods []MethodDescriptor
	byName  map[string]MethodDescriptor
}

// NewServiceDescriptor builds a ServiceDescriptor and its by-name index.
// It panics on a duplicate method name, since descriptors are compile-time
// constants — a duplicate would be a generator bug, not a runtime
// condition to recover from.
func NewServiceDescriptor(name string, methods ...MethodDescriptor) *ServiceDescriptor {
	byName := make(map[string]MethodDescriptor, len(methods))
	for _, m := range methods {
		if _, dup := byName[m.Name]; dup {
			panic(fmt.Sprintf("rpcdesc: duplicate method name %q in service %q", m.Name, name))
		}
		byName[m.Name] = m
	}
	return &ServiceDescriptor{Name: name, Methods: methods, byName: byName}
}

// MethodByName looks up a method by its exact proto name (not its path).
func (s *ServiceDescriptor) MethodByName(name string) (MethodDescriptor, bool) {
	m, ok := s.byName[name]
	return m, ok
}
