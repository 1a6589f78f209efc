// Command emberi is the demo embedding host, the counterpart to the
// teacher's cmd/funxy: it owns no lexer or parser of its own (those are
// external collaborators per spec.md §1), so instead of reading a source
// file it registers a small fixed program against the treevm reference
// engine and runs it, then exercises the identity and store extensions
// when they are wired. The gRPC and bitview builtins are installed but the
// demo does not call them.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/emberlang/ember/internal/embed"
	ember "github.com/emberlang/ember/internal/runtime"
	"github.com/emberlang/ember/internal/runtimecfg"
	"github.com/emberlang/ember/reference/treevm"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "emberi: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to an ember.yaml config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emberi: %s\n", err)
		os.Exit(1)
	}

	vm, err := embed.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emberi: %s\n", err)
		os.Exit(1)
	}
	defer vm.Close()

	wireOutput(cfg.Color)

	if err := runDemo(vm); err != nil {
		fmt.Fprintf(os.Stderr, "emberi: %s\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*runtimecfg.Config, error) {
	if path == "" {
		return runtimecfg.ParseConfig(nil, "<defaults>")
	}
	return runtimecfg.LoadConfig(path)
}

// wireOutput decides, per cfg.Color and (for "auto") an isatty check on
// stdout, whether print's output gets the demo's line-level ANSI
// highlighting — cyan for numeric lines, green for quoted-string reprs,
// plain otherwise.
func wireOutput(color string) {
	enable := color == "always" || (color == "auto" && isatty.IsTerminal(os.Stdout.Fd()))
	if !enable {
		return
	}
	ember.SetOutput(func(s string) { fmt.Print(highlight(s)) })
}

func highlight(s string) string {
	body := strings.TrimRight(s, "\n")
	trailer := s[len(body):]
	switch {
	case strings.HasPrefix(body, "'"):
		return "\x1b[32m" + body + "\x1b[0m" + trailer
	case isNumericLine(body):
		return "\x1b[36m" + body + "\x1b[0m" + trailer
	default:
		return s
	}
}

func isNumericLine(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		if r == '.' {
			continue
		}
		return false
	}
	return true
}

// runDemo registers and runs a generator-backed counter, printing each
// yielded value, then mints an identity tag and persists it through the
// sqlite-backed store extension so a second run can restore it — the
// round trip SPEC_FULL.md's DOMAIN STACK section assigns cmd/emberi to
// exercise on exit/start.
func runDemo(vm *embed.VM) error {
	it := vm.Interp

	counter := vm.Engine.Define(&treevm.FuncDef{
		Arity:       1,
		NLocals:     2,
		IsGenerator: true,
		Body: treevm.Seq{Stmts: []treevm.Node{
			treevm.SetLocal{Index: 1, Expr: treevm.Const{Value: ember.SmallInt(0)}},
			treevm.While{
				Cond: treevm.Compare{Op: ember.CompareLt, L: treevm.Local{Index: 1}, R: treevm.Local{Index: 0}},
				Body: treevm.Seq{Stmts: []treevm.Node{
					treevm.Yield{Expr: treevm.Local{Index: 1}},
					treevm.SetLocal{
						Index: 1,
						Expr:  treevm.BinOp{Op: ember.BinaryAdd, L: treevm.Local{Index: 1}, R: treevm.Const{Value: ember.SmallInt(1)}},
					},
				}},
			},
		}},
	})

	gen, err := it.Call(counter, ember.ArgsFromForward([]ember.Value{ember.SmallInt(5)}))
	if err != nil {
		return fmt.Errorf("starting counter generator: %w", err)
	}

	printFn, err := it.LoadName("print")
	if err != nil {
		return err
	}

	for {
		v, err := it.IterNext(gen)
		if err != nil {
			return fmt.Errorf("resuming counter generator: %w", err)
		}
		if v == ember.StopIteration {
			break
		}
		if _, err := it.Call(printFn, ember.ArgsFromForward([]ember.Value{v})); err != nil {
			return err
		}
	}

	return persistIdentity(vm)
}

// persistIdentity mints a fresh identity tag and, when the store extension
// is wired, round-trips it through persist/restore.
func persistIdentity(vm *embed.VM) error {
	it := vm.Interp

	idFn, err := it.LoadName("id")
	if err != nil {
		return nil // identity extension not wired
	}
	tag, err := it.Call(idFn, nil)
	if err != nil {
		return fmt.Errorf("minting identity tag: %w", err)
	}

	storeVal, err := it.LoadName("store")
	if err != nil {
		return nil // store extension not wired
	}

	lookup, err := it.LoadMethod(storeVal, "persist")
	if err != nil {
		return err
	}
	pair := &ember.Tuple{Items: []ember.Value{ember.NewStr("last_run_id"), tag}}
	if _, err := it.CallMethodN(lookup, ember.ArgsFromForward([]ember.Value{pair})); err != nil {
		return fmt.Errorf("persisting identity tag: %w", err)
	}

	restoreLookup, err := it.LoadMethod(storeVal, "restore")
	if err != nil {
		return err
	}
	restored, err := it.CallMethodN(restoreLookup, ember.ArgsFromForward([]ember.Value{ember.NewStr("last_run_id")}))
	if err != nil {
		return fmt.Errorf("restoring identity tag: %w", err)
	}

	printFn, err := it.LoadName("print")
	if err != nil {
		return err
	}
	_, err = it.Call(printFn, ember.ArgsFromForward([]ember.Value{restored}))
	return err
}
