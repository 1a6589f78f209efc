// Package bitview exposes funvibe/funbit's Erlang-style bit-syntax
// matching as a USER-kind runtime value. funbit is declared in the
// teacher's go.mod but never actually called from its Go sources (see
// DESIGN.md) — this package is this module's first real caller, wiring it
// to a small, deliberately narrow surface: take a fixed-width integer off
// the front of a byte buffer, take the remainder, and pack a list of
// small integers back into bytes at a fixed width.
package bitview

import (
	"fmt"

	"github.com/funvibe/funbit/pkg/funbit"

	ember "github.com/emberlang/ember/internal/runtime"
)

var userInfo = &ember.UserInfo{
	TypeName: "BitView",
	Methods: []ember.UserMethod{
		{Name: "take", Arity: ember.UserMethod2Arg, Fn2: takeMethod},
		{Name: "rest", Arity: ember.UserMethod1Arg, Fn1: restMethod},
	},
	Print: printBitView,
}

// BitView is the USER payload: a byte buffer plus the bit offset already
// consumed by prior take() calls.
type BitView struct {
	Data []byte
	Off  int // bits already consumed
}

// New wraps data as a fresh, zero-offset BitView.
func New(data []byte) *ember.User {
	u := &ember.User{Info: userInfo}
	u.Extra[0] = &BitView{Data: data}
	return u
}

func viewOf(self *ember.User) (*BitView, bool) {
	v, ok := self.Extra[0].(*BitView)
	return v, ok
}

// takeMethod implements view.take(nbits): read the next nbits as an
// unsigned big-endian integer and advance the view's offset.
func takeMethod(self *ember.User, arg ember.Value) (ember.Value, error) {
	v, ok := viewOf(self)
	if !ok {
		return nil, fmt.Errorf("bitview: take() on a non-BitView receiver")
	}
	n, ok := arg.(ember.SmallInt)
	if !ok || n <= 0 {
		return nil, fmt.Errorf("bitview: take() expects a positive bit width")
	}

	ctx := funbit.NewContext()
	bs := funbit.NewBitStringFromBits(v.Data, v.Off, len(v.Data)*8-v.Off)

	var value uint64
	spec := funbit.NewMatcher().Integer(&value, funbit.WithSize(int(n)), funbit.WithUnsigned())
	if _, err := funbit.Match(ctx, bs, spec); err != nil {
		return nil, fmt.Errorf("bitview: take(%d): %w", n, err)
	}
	v.Off += int(n)
	return ember.SmallInt(value), nil
}

// restMethod implements view.rest(): the unconsumed tail as a fresh
// byte-aligned BitView (dropping any partial trailing bits, matching
// funbit's own byte-aligned rest-of-binary semantics).
func restMethod(self *ember.User) (ember.Value, error) {
	v, ok := viewOf(self)
	if !ok {
		return nil, fmt.Errorf("bitview: rest() on a non-BitView receiver")
	}
	byteOff := v.Off / 8
	return New(v.Data[byteOff:]), nil
}

// Pack builds a byte slice from ints, each truncated to width bits and
// written big-endian-packed — the `pack` side of this extension's
// builder/matcher pair.
func Pack(ints []int64, width int) ([]byte, error) {
	builder := funbit.NewBuilder()
	for _, n := range ints {
		funbit.AddInteger(builder, n, funbit.WithSize(width), funbit.WithUnsigned())
	}
	bs, err := funbit.Build(builder)
	if err != nil {
		return nil, fmt.Errorf("bitview: pack: %w", err)
	}
	return bs.ToBytes(), nil
}

func printBitView(extra [2]any) string {
	v, ok := extra[0].(*BitView)
	if !ok {
		return "<BitView>"
	}
	return fmt.Sprintf("<BitView %d bytes, %d bits consumed>", len(v.Data), v.Off)
}
