// Package identity exposes google/uuid-backed identifiers as a USER-kind
// runtime value, the simplest of this module's host extensions (spec.md
// §3.1's USER kind is exactly "escape hatch for a pointer to anything the
// host cares to attach, plus a dispatch table").
package identity

import (
	"github.com/google/uuid"

	ember "github.com/emberlang/ember/internal/runtime"
)

var userInfo = &ember.UserInfo{
	TypeName: "UUID",
	Methods: []ember.UserMethod{
		{Name: "string", Arity: ember.UserMethod1Arg, Fn1: stringMethod},
		{Name: "urn", Arity: ember.UserMethod1Arg, Fn1: urnMethod},
	},
	Print: printUUID,
}

// New returns a fresh random (v4) UUID boxed as a USER value.
func New() *ember.User {
	u := &ember.User{Info: userInfo}
	u.Extra[0] = uuid.New()
	return u
}

// Parse boxes an existing UUID string, the `id(s)` builtin's entry point.
func Parse(s string) (*ember.User, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	u := &ember.User{Info: userInfo}
	u.Extra[0] = id
	return u, nil
}

func uuidOf(self *ember.User) uuid.UUID {
	id, _ := self.Extra[0].(uuid.UUID)
	return id
}

func stringMethod(self *ember.User) (ember.Value, error) {
	return ember.NewStr(uuidOf(self).String()), nil
}

func urnMethod(self *ember.User) (ember.Value, error) {
	return ember.NewStr(uuidOf(self).URN()), nil
}

func printUUID(extra [2]any) string {
	id, _ := extra[0].(uuid.UUID)
	return "<UUID " + id.String() + ">"
}
