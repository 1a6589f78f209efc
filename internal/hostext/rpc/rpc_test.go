package rpc

import (
	"testing"

	ember "github.com/emberlang/ember/internal/runtime"
)

func TestSplitMethodPath(t *testing.T) {
	service, method, err := splitMethodPath("pkg.Greeter/SayHello")
	if err != nil {
		t.Fatalf("splitMethodPath: %v", err)
	}
	if service != "pkg.Greeter" || method != "SayHello" {
		t.Fatalf("got (%q, %q), want (pkg.Greeter, SayHello)", service, method)
	}
}

func TestSplitMethodPathRejectsMissingSlash(t *testing.T) {
	if _, _, err := splitMethodPath("no-slash-here"); err == nil {
		t.Fatalf("expected an error for a path with no '/'")
	}
}

func TestScalarToProto(t *testing.T) {
	cases := []struct {
		in   ember.Value
		want interface{}
	}{
		{ember.SmallInt(7), int64(7)},
		{ember.NewFloat(1.5), 1.5},
		{ember.NewStr("hi"), "hi"},
		{ember.True, true},
		{ember.False, false},
	}
	for _, c := range cases {
		got, err := scalarToProto(c.in)
		if err != nil {
			t.Fatalf("scalarToProto(%s): %v", ember.Repr(c.in), err)
		}
		if got != c.want {
			t.Errorf("scalarToProto(%s) = %v, want %v", ember.Repr(c.in), got, c.want)
		}
	}
}

func TestScalarToProtoRejectsUnsupportedKind(t *testing.T) {
	if _, err := scalarToProto(ember.NewList(nil)); err == nil {
		t.Fatalf("expected an error converting a LIST value")
	}
}

func TestProtoToValue(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{int32(3), "3"},
		{int64(3), "3"},
		{uint32(3), "3"},
		{float64(1.5), "1.5"},
		{true, "True"},
		{"hi", "'hi'"},
	}
	for _, c := range cases {
		got := ember.Repr(protoToValue(c.in))
		if got != c.want {
			t.Errorf("protoToValue(%v) repr = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewRegistryFindMethodMissing(t *testing.T) {
	r := NewRegistry()
	if _, err := r.findMethod("pkg.Greeter", "SayHello"); err == nil {
		t.Fatalf("expected an error for an unregistered method")
	}
}
