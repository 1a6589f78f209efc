// Package vstr implements the variable-length string buffer the runtime
// core's formatter (ember.Format / str.format) builds output into — the
// external "vstr" collaborator named in spec.md §1.
package vstr

import "strings"

// Buf is a growable byte buffer specialized for the small, repeated
// append-and-take-string pattern formatting needs. It is a thin wrapper
// around strings.Builder; the separate type exists so call sites read as
// "build formatted output" rather than "build an arbitrary string".
type Buf struct {
	b strings.Builder
}

// New returns an empty buffer.
func New() *Buf { return &Buf{} }

// WriteString appends s.
func (v *Buf) WriteString(s string) { v.b.WriteString(s) }

// WriteByte appends a single byte.
func (v *Buf) WriteByte(c byte) error { return v.b.WriteByte(c) }

// String returns the accumulated contents.
func (v *Buf) String() string { return v.b.String() }

// Len returns the number of bytes written so far.
func (v *Buf) Len() int { return v.b.Len() }
