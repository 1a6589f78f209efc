package ember

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emberlang/ember/internal/vstr"
)

// Repr renders v the polymorphic way spec.md §4.9 fixes: strings quoted
// with single quotes, floats with %.8g, complex as "<imag>j" or
// "(<real>+<imag>j)", tuples with a trailing comma iff length 1, maps as
// "{key: value, ...}", sets as "{v, ...}", OBJ by its class's __qualname__,
// and USER delegating to its info's print hook.
func Repr(v Value) string {
	b := vstr.New()
	writeRepr(b, v)
	return b.String()
}

func writeRepr(b *vstr.Buf, v Value) {
	switch vv := v.(type) {
	case SmallInt:
		b.WriteString(strconv.FormatInt(int64(vv), 10))
	case *Const:
		b.WriteString(vv.Name())
	case *Str:
		b.WriteByte('\'')
		b.WriteString(vv.GoString())
		b.WriteByte('\'')
	case *Float:
		b.WriteString(strconv.FormatFloat(vv.Value, 'g', 8, 64))
	case *Complex:
		b.WriteString(formatComplex(vv))
	case *Range:
		b.WriteString(fmt.Sprintf("range(%d, %d, %d)", vv.Start, vv.Stop, vv.Step))
	case *Tuple:
		writeTupleRepr(b, vv)
	case *List:
		writeSeqRepr(b, '[', ']', vv.Items)
	case *Set:
		writeSetRepr(b, vv)
	case *Map:
		writeMapRepr(b, vv)
	case *Class:
		b.WriteString(classQualname(vv))
	case *Obj:
		b.WriteString(classQualname(vv.Class))
	case *User:
		if vv.Info != nil && vv.Info.Print != nil {
			b.WriteString(vv.Info.Print(vv.Extra))
		} else {
			b.WriteString("<user object>")
		}
	case *Exception0:
		b.WriteString(vv.ClassName())
	case *ExceptionN:
		b.WriteString(vv.ClassName())
		b.WriteString(": ")
		b.WriteString(vv.Message())
	case *BoundMeth:
		b.WriteString("<bound method>")
	case *GenInstance:
		b.WriteString("<generator>")
	case *GenWrap, *FunBC, *FunASM, *Fun0, *Fun1, *Fun2, *FunN, *FunVar:
		b.WriteString("<function>")
	default:
		b.WriteString(fmt.Sprintf("<%s>", v.Kind()))
	}
}

func formatComplex(c *Complex) string {
	imag := strconv.FormatFloat(c.Imag, 'g', 8, 64)
	if c.Real == 0 {
		return imag + "j"
	}
	real := strconv.FormatFloat(c.Real, 'g', 8, 64)
	sign := "+"
	if c.Imag < 0 {
		sign = ""
	}
	return fmt.Sprintf("(%s%s%sj)", real, sign, imag)
}

func writeTupleRepr(b *vstr.Buf, t *Tuple) {
	b.WriteByte('(')
	for i, it := range t.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(b, it)
	}
	if len(t.Items) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
}

func writeSeqRepr(b *vstr.Buf, open, close byte, items []Value) {
	b.WriteByte(open)
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(b, it)
	}
	b.WriteByte(close)
}

func writeSetRepr(b *vstr.Buf, s *Set) {
	b.WriteByte('{')
	for i, it := range s.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(b, it)
	}
	b.WriteByte('}')
}

func writeMapRepr(b *vstr.Buf, m *Map) {
	b.WriteByte('{')
	for i, item := range m.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		if m.Mode == MapModeQSTR {
			b.WriteString(qstrStr(item.QKey))
		} else {
			writeRepr(b, item.OKey)
		}
		b.WriteString(": ")
		writeRepr(b, item.Val)
	}
	b.WriteByte('}')
}

func classQualname(cls *Class) string {
	v, ok := cls.Namespace.GetQSTR(Intern("__qualname__"))
	if !ok {
		return "<class>"
	}
	if s, ok := v.(*Str); ok {
		return s.GoString()
	}
	return "<class>"
}

// Print implements the `print` builtin (§6): space-joined arguments,
// strings emitted raw (unquoted), everything else via the polymorphic
// printer, trailing newline.
func Print(w *strings.Builder, args []Value) {
	for i, a := range args {
		if i > 0 {
			w.WriteByte(' ')
		}
		if s, ok := a.(*Str); ok {
			w.WriteString(s.GoString())
		} else {
			w.WriteString(Repr(a))
		}
	}
	w.WriteByte('\n')
}

// ReplPrint implements `__repl_print__` (§6): prints only non-None values,
// newline-terminated. Non-standard per spec.md §9's open questions — kept
// exactly as undecided, not extended.
func ReplPrint(w *strings.Builder, v Value) {
	if v == None {
		return
	}
	w.WriteString(Repr(v))
	w.WriteByte('\n')
}

// Format implements str.format (§8 scenario 6): "{}" placeholders are
// substituted in order with each argument rendered through the polymorphic
// printer (so string arguments come out quoted, matching scenario 6's
// `"hi 1 'x'"`).
func Format(template string, args []Value) (string, error) {
	b := vstr.New()
	argi := 0
	i := 0
	for i < len(template) {
		c := template[i]
		if c == '{' && i+1 < len(template) && template[i+1] == '}' {
			if argi >= len(args) {
				return "", fmt.Errorf("ember: format string has more placeholders than arguments")
			}
			b.WriteString(Repr(args[argi]))
			argi++
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

// Join implements str.join (§8 scenario 5): self is the separator string,
// parts must each be a *Str.
func Join(sep string, parts []Value) (string, error) {
	strs := make([]string, len(parts))
	for i, p := range parts {
		s, ok := p.(*Str)
		if !ok {
			return "", newTypeError("join() argument must be str, not %s", NewStr(p.Kind().String()))
		}
		strs[i] = s.GoString()
	}
	return strings.Join(strs, sep), nil
}
