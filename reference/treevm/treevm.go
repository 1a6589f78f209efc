// Package treevm is a tiny, intentionally non-optimizing tree-walking
// implementation of ember.BytecodeEngine. It exists only for tests and the
// cmd/emberi demo host — internal/runtime never imports it, matching
// spec.md §1's treatment of the bytecode engine as a genuine external
// collaborator reached only through the BytecodeEngine interface.
//
// Functions are registered as a small expression tree (Node) rather than
// assembled bytes: CodeID is reused as the lookup key into the engine's own
// program table, so the code registry's Bytecode payload is left nil here.
// Generator suspension is implemented with a goroutine parked on a
// yield/resume channel handshake, with GEN_INSTANCE's ip slot repurposed as
// an opaque session handle rather than a real instruction pointer.
package treevm

import (
	"fmt"
	"sync"

	ember "github.com/emberlang/ember/internal/runtime"
)

// Node is one tree-walked expression or statement.
type Node interface{ isNode() }

type Const struct{ Value ember.Value }
type Local struct{ Index int }
type SetLocal struct {
	Index int
	Expr  Node
}
type BinOp struct {
	Op   ember.BinaryOp
	L, R Node
}
type Compare struct {
	Op   ember.CompareOp
	L, R Node
}
type If struct{ Cond, Then, Else Node }
type While struct{ Cond, Body Node }
type Seq struct{ Stmts []Node }
type Return struct{ Expr Node }
type Yield struct{ Expr Node }
type Call struct {
	Callee ember.CodeID
	Args   []Node
}

func (Const) isNode()    {}
func (Local) isNode()    {}
func (SetLocal) isNode() {}
func (BinOp) isNode()    {}
func (Compare) isNode()  {}
func (If) isNode()       {}
func (While) isNode()    {}
func (Seq) isNode()      {}
func (Return) isNode()   {}
func (Yield) isNode()    {}
func (Call) isNode()     {}

// FuncDef is one registered function body. NLocals may exceed Arity to
// reserve scratch slots a SetLocal writes into (a loop counter or
// accumulator, say); those slots start as None.
type FuncDef struct {
	Arity       int
	NLocals     int
	Body        Node
	IsGenerator bool
}

// signal is how eval tells its caller a Return was hit partway through a
// Seq, without unwinding through panic/recover.
type signal int

const (
	sigNone signal = iota
	sigReturn
)

// genSession is one suspended generator, parked on resumeCh between yields.
type genSession struct {
	resumeCh chan struct{}
	yieldCh  chan ember.Value
	doneCh   chan genResult
}

type genResult struct {
	resumption ember.Resumption
	value      ember.Value
}

// Engine is the BytecodeEngine implementation shared by every function
// registered against it.
type Engine struct {
	Interp *ember.Interpreter

	mu      sync.Mutex
	funcs   map[ember.CodeID]*FuncDef
	sess    map[int]*genSession
	nextSes int
}

// New returns an Engine bound to interp. Set interp.Engine to the result
// before calling any FUN_BC/GEN_WRAP value it produces.
func New(interp *ember.Interpreter) *Engine {
	return &Engine{
		Interp: interp,
		funcs:  make(map[ember.CodeID]*FuncDef),
		sess:   make(map[int]*genSession),
	}
}

// Define reserves a fresh code id for def and returns the callable value
// for it (a FunBC, or a GenWrap if IsGenerator).
func (e *Engine) Define(def *FuncDef) ember.Value {
	id := e.Interp.Code.GetUniqueCodeID(false)
	e.mu.Lock()
	e.funcs[id] = def
	e.mu.Unlock()
	e.Interp.Code.AssignByteCode(id, nil, def.Arity, def.NLocals, 0, def.IsGenerator)
	return e.Interp.Code.MakeFunctionFromID(id)
}

// Execute implements ember.BytecodeEngine.Execute: plain (non-generator)
// FUN_BC calls evaluate the body once against a fresh locals frame.
func (e *Engine) Execute(entry ember.CodeID, argv ember.Args, stateSize int) (ember.Value, error) {
	def, err := e.lookup(entry)
	if err != nil {
		return nil, err
	}
	locals := make([]ember.Value, stateSize)
	copy(locals, argv.Forward())
	for i := range locals {
		if locals[i] == nil {
			locals[i] = ember.None
		}
	}
	val, sig, err := e.eval(def.Body, locals, nil, nil)
	if err != nil {
		return nil, err
	}
	if sig == sigReturn {
		return val, nil
	}
	return ember.None, nil
}

// Resume implements ember.BytecodeEngine.Resume. Per spec.md §6,
// instantiate_generator sets the frame's ip to the code entry id itself
// (not 0), so that value — not 0 — is this engine's "not yet started"
// sentinel. Once started, *ip is repurposed as an opaque session handle;
// session ids are assigned negative to keep them disjoint from every
// (always positive) CodeID, so a started frame is never mistaken for an
// unstarted one on a later resume.
func (e *Engine) Resume(entry ember.CodeID, ip *int, stateBase []ember.Value, sp *int) (ember.Resumption, ember.Value, error) {
	e.mu.Lock()
	var sess *genSession
	if *ip == int(entry) {
		sess = &genSession{
			resumeCh: make(chan struct{}),
			yieldCh:  make(chan ember.Value),
			doneCh:   make(chan genResult, 1),
		}
		e.nextSes++
		id := -e.nextSes
		e.sess[id] = sess
		*ip = id
		e.mu.Unlock()

		def, err := e.lookup(entry)
		if err != nil {
			return ember.Raised, nil, err
		}
		go e.runGenerator(def, stateBase, sess)
	} else {
		var ok bool
		sess, ok = e.sess[*ip]
		e.mu.Unlock()
		if !ok {
			return ember.Returned, ember.None, nil
		}
		sess.resumeCh <- struct{}{}
	}

	select {
	case v := <-sess.yieldCh:
		return ember.Yielded, v, nil
	case r := <-sess.doneCh:
		e.mu.Lock()
		delete(e.sess, *ip)
		e.mu.Unlock()
		return r.resumption, r.value, nil
	}
}

func (e *Engine) runGenerator(def *FuncDef, locals []ember.Value, sess *genSession) {
	for i := range locals {
		if locals[i] == nil {
			locals[i] = ember.None
		}
	}
	val, sig, err := e.eval(def.Body, locals, sess.yieldCh, sess.resumeCh)
	if err != nil {
		if rt, ok := err.(*ember.RuntimeError); ok {
			sess.doneCh <- genResult{resumption: ember.Raised, value: rt.Exc}
			return
		}
		sess.doneCh <- genResult{resumption: ember.Raised, value: ember.None}
		return
	}
	if sig == sigReturn {
		sess.doneCh <- genResult{resumption: ember.Returned, value: val}
		return
	}
	sess.doneCh <- genResult{resumption: ember.Returned, value: ember.None}
}

func (e *Engine) lookup(id ember.CodeID) (*FuncDef, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	def, ok := e.funcs[id]
	if !ok {
		return nil, fmt.Errorf("treevm: no function registered for code id %d", id)
	}
	return def, nil
}

// eval walks one node. yieldCh/resumeCh are non-nil only when running
// inside a generator's goroutine (via runGenerator); a Yield node outside
// that context is a programming error in the registered program, not a
// user-facing one, so it panics rather than returning an *ember.RuntimeError.
func (e *Engine) eval(n Node, locals []ember.Value, yieldCh chan ember.Value, resumeCh chan struct{}) (ember.Value, signal, error) {
	switch node := n.(type) {
	case Const:
		return node.Value, sigNone, nil

	case Local:
		return locals[node.Index], sigNone, nil

	case SetLocal:
		v, _, err := e.eval(node.Expr, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		locals[node.Index] = v
		return v, sigNone, nil

	case BinOp:
		l, _, err := e.eval(node.L, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		r, _, err := e.eval(node.R, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		v, err := e.Interp.BinaryOpDispatch(node.Op, l, r)
		return v, sigNone, err

	case Compare:
		l, _, err := e.eval(node.L, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		r, _, err := e.eval(node.R, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		v, err := ember.CompareOpDispatch(node.Op, l, r)
		return v, sigNone, err

	case If:
		c, _, err := e.eval(node.Cond, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		if ember.Truthy(c) {
			return e.eval(node.Then, locals, yieldCh, resumeCh)
		}
		if node.Else == nil {
			return ember.None, sigNone, nil
		}
		return e.eval(node.Else, locals, yieldCh, resumeCh)

	case While:
		for {
			c, _, err := e.eval(node.Cond, locals, yieldCh, resumeCh)
			if err != nil {
				return nil, sigNone, err
			}
			if !ember.Truthy(c) {
				return ember.None, sigNone, nil
			}
			v, sig, err := e.eval(node.Body, locals, yieldCh, resumeCh)
			if err != nil {
				return nil, sigNone, err
			}
			if sig == sigReturn {
				return v, sigReturn, nil
			}
		}

	case Seq:
		var last ember.Value = ember.None
		for _, stmt := range node.Stmts {
			v, sig, err := e.eval(stmt, locals, yieldCh, resumeCh)
			if err != nil {
				return nil, sigNone, err
			}
			if sig == sigReturn {
				return v, sigReturn, nil
			}
			last = v
		}
		return last, sigNone, nil

	case Return:
		v, _, err := e.eval(node.Expr, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		return v, sigReturn, nil

	case Yield:
		if yieldCh == nil {
			panic("treevm: yield node evaluated outside a generator")
		}
		v, _, err := e.eval(node.Expr, locals, yieldCh, resumeCh)
		if err != nil {
			return nil, sigNone, err
		}
		yieldCh <- v
		<-resumeCh
		return ember.None, sigNone, nil

	case Call:
		fwd := make([]ember.Value, len(node.Args))
		for i, a := range node.Args {
			v, _, err := e.eval(a, locals, yieldCh, resumeCh)
			if err != nil {
				return nil, sigNone, err
			}
			fwd[i] = v
		}
		fn := e.Interp.Code.MakeFunctionFromID(node.Callee)
		v, err := e.Interp.Call(fn, ember.ArgsFromForward(fwd))
		return v, sigNone, err

	default:
		return nil, sigNone, fmt.Errorf("treevm: unknown node type %T", n)
	}
}
