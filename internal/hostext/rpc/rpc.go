// Package rpc exposes a gRPC client as a USER-kind runtime value, grounded
// on the teacher's internal/evaluator/builtins_grpc.go (GrpcConnObject,
// grpcLoadProto, grpcInvoke): the same dynamic-message approach via
// jhump/protoreflect, adapted onto the closed Value/USER ABI of this
// module instead of funxy's open Object interface.
package rpc

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	ember "github.com/emberlang/ember/internal/runtime"
)

// Registry holds parsed proto file descriptors, keyed by file name,
// mirroring the teacher's process-wide protoRegistry.
type Registry struct {
	mu    sync.RWMutex
	files map[string]*desc.FileDescriptor
}

// NewRegistry returns an empty proto descriptor registry.
func NewRegistry() *Registry { return &Registry{files: make(map[string]*desc.FileDescriptor)} }

// LoadProto parses a .proto file (and its imports, resolved against
// importDirs, or "." when none are given) and registers every file
// descriptor it produces.
func (r *Registry) LoadProto(path string, importDirs ...string) error {
	if len(importDirs) == 0 {
		importDirs = []string{"."}
	}
	parser := protoparse.Parser{ImportPaths: importDirs}
	fds, err := parser.ParseFiles(path)
	if err != nil {
		return fmt.Errorf("rpc: parse %s: %w", path, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fd := range fds {
		r.files[fd.GetName()] = fd
	}
	return nil
}

func (r *Registry) findMethod(serviceName, methodName string) (*desc.MethodDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, fd := range r.files {
		if sd := fd.FindService(serviceName); sd != nil {
			if md := sd.FindMethodByName(methodName); md != nil {
				return md, nil
			}
		}
	}
	return nil, fmt.Errorf("rpc: method %s/%s not found (load its proto first)", serviceName, methodName)
}

// GRPCClient is the USER payload a connected client carries (Extra[0]).
type GRPCClient struct {
	Conn     *grpc.ClientConn
	Registry *Registry
}

// userInfo is shared by every *ember.User built by Connect, so method
// dispatch (§4.6's USER case) always resolves against the same table.
var userInfo = &ember.UserInfo{
	TypeName: "GrpcConn",
	Methods: []ember.UserMethod{
		{Name: "close", Arity: ember.UserMethod1Arg, Fn1: closeMethod},
		{Name: "invoke", Arity: ember.UserMethod2Arg, Fn2: invokeMethod},
	},
	Print: printClient,
}

// Connect dials target and returns a USER-kind value wrapping the
// connection, the funxy grpcConnect equivalent.
func Connect(target string, registry *Registry) (*ember.User, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("rpc: dial %s: %w", target, err)
	}
	u := &ember.User{Info: userInfo}
	u.Extra[0] = &GRPCClient{Conn: conn, Registry: registry}
	return u, nil
}

func clientOf(self *ember.User) (*GRPCClient, bool) {
	c, ok := self.Extra[0].(*GRPCClient)
	return c, ok
}

func closeMethod(self *ember.User) (ember.Value, error) {
	c, ok := clientOf(self)
	if !ok || c.Conn == nil {
		return ember.None, nil
	}
	err := c.Conn.Close()
	c.Conn = nil
	if err != nil {
		return nil, fmt.Errorf("rpc: close: %w", err)
	}
	return ember.None, nil
}

// invokeMethod implements conn.invoke(call) where call is a 2-element
// tuple ("package.Service/Method", requestDict) — the closest script-level
// shape to funxy's grpcInvoke(conn, method, request) once self has already
// taken the conn slot.
func invokeMethod(self *ember.User, arg ember.Value) (ember.Value, error) {
	c, ok := clientOf(self)
	if !ok || c.Conn == nil {
		return nil, fmt.Errorf("rpc: invoke on a closed connection")
	}
	call, ok := arg.(*ember.Tuple)
	if !ok || len(call.Items) != 2 {
		return nil, fmt.Errorf("rpc: invoke() expects a (method, request) tuple")
	}
	methodPath, ok := call.Items[0].(*ember.Str)
	if !ok {
		return nil, fmt.Errorf("rpc: invoke() method path must be a str")
	}
	reqMap, ok := call.Items[1].(*ember.Map)
	if !ok {
		return nil, fmt.Errorf("rpc: invoke() request must be a dict")
	}

	serviceName, method, err := splitMethodPath(methodPath.GoString())
	if err != nil {
		return nil, err
	}
	md, err := c.Registry.findMethod(serviceName, method)
	if err != nil {
		return nil, err
	}

	reqMsg := dynamic.NewMessage(md.GetInputType())
	if err := fillMessage(reqMsg, reqMap); err != nil {
		return nil, fmt.Errorf("rpc: build request: %w", err)
	}
	respMsg := dynamic.NewMessage(md.GetOutputType())

	fullPath := "/" + serviceName + "/" + method
	if err := c.Conn.Invoke(context.Background(), fullPath, reqMsg, respMsg); err != nil {
		return nil, fmt.Errorf("rpc: invoke %s: %w", fullPath, err)
	}
	return messageToMap(respMsg), nil
}

func splitMethodPath(path string) (service, method string, err error) {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i], path[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("rpc: invalid method path %q, expected 'package.Service/Method'", path)
}

// fillMessage copies a flat dict's string-keyed scalar fields into msg.
// Nested messages, repeated fields, and enums are out of scope for this
// host extension — the point is to exercise protoreflect/grpc end to end,
// not to reimplement a general proto marshaller.
func fillMessage(msg *dynamic.Message, m *ember.Map) error {
	for _, item := range m.Items() {
		name := keyName(item)
		fd := msg.GetMessageDescriptor().FindFieldByName(name)
		if fd == nil {
			continue
		}
		v, err := scalarToProto(item.Val)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		if v != nil {
			msg.SetField(fd, v)
		}
	}
	return nil
}

func keyName(item ember.MapItem) string {
	if s, ok := item.OKey.(*ember.Str); ok {
		return s.GoString()
	}
	return ""
}

func scalarToProto(v ember.Value) (interface{}, error) {
	switch vv := v.(type) {
	case ember.SmallInt:
		return int64(vv), nil
	case *ember.Float:
		return vv.Value, nil
	case *ember.Str:
		return vv.GoString(), nil
	case *ember.Const:
		if vv == ember.True {
			return true, nil
		}
		if vv == ember.False {
			return false, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported value kind %s", v.Kind())
	}
}

func messageToMap(msg *dynamic.Message) *ember.Map {
	out := ember.NewObjMap()
	for _, fd := range msg.GetMessageDescriptor().GetFields() {
		val := msg.GetField(fd)
		out.SetObj(ember.NewStr(fd.GetName()), protoToValue(val))
	}
	return out
}

func protoToValue(val interface{}) ember.Value {
	switch v := val.(type) {
	case int32:
		return ember.SmallInt(v)
	case int64:
		return ember.SmallInt(v)
	case uint32:
		return ember.SmallInt(v)
	case uint64:
		return ember.SmallInt(v)
	case float32:
		return ember.NewFloat(float64(v))
	case float64:
		return ember.NewFloat(v)
	case bool:
		return ember.BoolValue(v)
	case string:
		return ember.NewStr(v)
	default:
		return ember.None
	}
}

func printClient(extra [2]any) string {
	c, ok := extra[0].(*GRPCClient)
	if !ok || c.Conn == nil {
		return "<GrpcConn closed>"
	}
	return fmt.Sprintf("<GrpcConn %s>", c.Conn.Target())
}
