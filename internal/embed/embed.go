// Package embed is the high-level embedding API a host program uses to
// stand up an ember interpreter, the counterpart to the teacher's
// pkg/embed.VM: a thin wrapper that owns the interpreter, its bytecode
// engine, and whichever host extensions (internal/hostext/*) the running
// config selects — kept out of internal/runtime itself so the core package
// never has to import the extension packages it would otherwise create an
// import cycle with.
package embed

import (
	"fmt"

	ember "github.com/emberlang/ember/internal/runtime"
	"github.com/emberlang/ember/internal/runtimecfg"

	"github.com/emberlang/ember/internal/hostext/bitview"
	"github.com/emberlang/ember/internal/hostext/identity"
	"github.com/emberlang/ember/internal/hostext/rpc"
	"github.com/emberlang/ember/internal/hostext/store"

	"github.com/emberlang/ember/reference/treevm"
)

// VM wraps an *ember.Interpreter plus the resources its host extensions
// opened (an sqlite KVStore, a gRPC proto registry), so Close can release
// them deterministically.
type VM struct {
	Interp *ember.Interpreter
	Engine *treevm.Engine

	store *ember.User
	rpcs  *rpc.Registry
}

// New builds an interpreter wired per cfg: a treevm bytecode engine (the
// reference implementation — a real embedding host would substitute its
// own), the identity and store extensions when cfg.Extensions enables
// them, and the gRPC and bitview builtins unconditionally.
func New(cfg *runtimecfg.Config) (*VM, error) {
	it := ember.New(nil)
	engine := treevm.New(it)
	it.Engine = engine

	vm := &VM{Interp: it, Engine: engine}

	if cfg.IdentityEnabled() {
		vm.registerIdentity()
	}
	if cfg.Extensions.Store != "" {
		if err := vm.registerStore(cfg.Extensions.Store); err != nil {
			return nil, err
		}
	}
	vm.registerRPC(cfg.Extensions.ProtoImportDirs)
	vm.registerBitview()

	return vm, nil
}

// registerIdentity installs the `id()` builtin (internal/hostext/identity):
// with no arguments it mints a fresh UUID; with one str argument it parses
// an existing one.
func (vm *VM) registerIdentity() {
	vm.Interp.Builtins.SetQSTR(ember.Intern("id"), &ember.FunVar{MinArity: 0, Fn: func(args []ember.Value) (ember.Value, error) {
		if len(args) == 0 {
			return identity.New(), nil
		}
		s, ok := args[0].(*ember.Str)
		if !ok {
			return nil, fmt.Errorf("id() expects a str argument")
		}
		id, err := identity.Parse(s.GoString())
		if err != nil {
			return nil, fmt.Errorf("id(%q): %w", s.GoString(), err)
		}
		return id, nil
	}})
}

// registerStore opens a KVStore at path and installs it as the `store`
// global, a ready-made USER value scripts call .persist()/.restore() on.
func (vm *VM) registerStore(path string) error {
	kv, err := store.Open(path)
	if err != nil {
		return err
	}
	vm.store = kv
	vm.Interp.Globals.SetQSTR(ember.Intern("store"), kv)
	return nil
}

// registerRPC installs `grpcConnect(target)` and `grpcLoadProto(path)`,
// sharing one proto registry across every connection the script opens.
func (vm *VM) registerRPC(importDirs []string) {
	reg := rpc.NewRegistry()
	vm.rpcs = reg

	vm.Interp.Builtins.SetQSTR(ember.Intern("grpcLoadProto"), &ember.Fun1{Fn: func(v ember.Value) (ember.Value, error) {
		s, ok := v.(*ember.Str)
		if !ok {
			return nil, fmt.Errorf("grpcLoadProto() expects a str path")
		}
		if err := reg.LoadProto(s.GoString(), importDirs...); err != nil {
			return nil, err
		}
		return ember.None, nil
	}})

	vm.Interp.Builtins.SetQSTR(ember.Intern("grpcConnect"), &ember.Fun1{Fn: func(v ember.Value) (ember.Value, error) {
		s, ok := v.(*ember.Str)
		if !ok {
			return nil, fmt.Errorf("grpcConnect() expects a str target")
		}
		return rpc.Connect(s.GoString(), reg)
	}})
}

// NewBitView wraps data as a USER-kind bit-view value, exposed to hosts
// that want to hand a script some binary payload without going through a
// builtin (e.g. bytes read off a socket before any script code runs).
func NewBitView(data []byte) ember.Value { return bitview.New(data) }

// registerBitview installs `bitviewPack(ints, width)`, the builder half of
// the bitview extension (the matcher half, take/rest, lives on the USER
// value NewBitView/a host hands in, so it needs no builtin).
func (vm *VM) registerBitview() {
	vm.Interp.Builtins.SetQSTR(ember.Intern("bitviewPack"), &ember.Fun2{Fn: func(ints, width ember.Value) (ember.Value, error) {
		l, ok := ints.(*ember.List)
		if !ok {
			return nil, fmt.Errorf("bitviewPack() expects a list of int")
		}
		w, ok := width.(ember.SmallInt)
		if !ok || w <= 0 {
			return nil, fmt.Errorf("bitviewPack() expects a positive bit width")
		}
		vals := make([]int64, len(l.Items))
		for i, item := range l.Items {
			n, ok := item.(ember.SmallInt)
			if !ok {
				return nil, fmt.Errorf("bitviewPack() list elements must be int")
			}
			vals[i] = int64(n)
		}
		data, err := bitview.Pack(vals, int(w))
		if err != nil {
			return nil, err
		}
		return bitview.New(data), nil
	}})
}

// Close releases every resource a registered extension opened.
func (vm *VM) Close() error {
	if vm.store == nil {
		return nil
	}
	lookup, err := vm.Interp.LoadMethod(vm.store, "close")
	if err != nil {
		return err
	}
	_, err = vm.Interp.CallMethodN(lookup, nil)
	return err
}
