// Package runtime defines tlang's value taxonomy, the
// persistent Environment, and the error-as-value kernel. It is the
// shared vocabulary the lexer-independent parts of the interpreter
// (evaluator, pipeline engine, builtins, strict-mode validator) are
// built on: a small dynamic value set with first-class Symbols, typed
// NA variants and Errors.
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/b-rodrigues/tlang-sub002/internal/ast"
)

// Value is implemented by every runtime value.
type Value interface {
	Type() string
	String() string
}

// ---- Scalars ----

type Integer int64

func (Integer) Type() string        { return "Integer" }
func (i Integer) String() string    { return strconv.FormatInt(int64(i), 10) }

type Float float64

func (Float) Type() string     { return "Float" }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

type Bool bool

func (Bool) Type() string     { return "Bool" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

type String string

func (String) Type() string     { return "String" }
func (s String) String() string { return string(s) }

// Null is tlang's unit value.
type Null struct{}

func (Null) Type() string     { return "Null" }
func (Null) String() string   { return "null" }

// NullValue is the single shared Null instance.
var NullValue = Null{}

// Symbol is an unresolved bare name, or (with a leading '$') a column
// reference. Produced by evaluating a free variable in contexts that
// permit NSE; it is not an error.
type Symbol struct {
	Name string
}

func (Symbol) Type() string     { return "Symbol" }
func (s Symbol) String() string { return s.Name }

// IsColumnRef reports whether this symbol denotes a `$col` token.
func (s Symbol) IsColumnRef() bool {
	return strings.HasPrefix(s.Name, "$")
}

// NAKind identifies which typed variant of NA a value carries.
type NAKind int

const (
	NAGeneric NAKind = iota
	NABool
	NAInt
	NAFloat
	NAString
)

func (k NAKind) String() string {
	switch k {
	case NABool:
		return "Bool"
	case NAInt:
		return "Int"
	case NAFloat:
		return "Float"
	case NAString:
		return "String"
	default:
		return "Generic"
	}
}

// NA is tlang's explicit missing value. It never propagates
// implicitly: every primitive operator that touches one produces a
// TypeError instead of a result.
type NA struct {
	Kind NAKind
}

func (NA) Type() string     { return "NA" }
func (n NA) String() string { return "NA<" + n.Kind.String() + ">" }

// ---- Compound values ----

// ListItem is one (optional name, value) pair of a List.
type ListItem struct {
	Name  *string
	Value Value
}

// List is an ordered sequence of optionally-named values. Names are
// labels for DotAccess, not a lookup key space.
type List struct {
	Items []ListItem
}

func (*List) Type() string { return "List" }
func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		if it.Name != nil {
			parts[i] = *it.Name + ": " + it.Value.String()
		} else {
			parts[i] = it.Value.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Find returns the first item labeled name, if any.
func (l *List) Find(name string) (Value, bool) {
	for _, it := range l.Items {
		if it.Name != nil && *it.Name == name {
			return it.Value, true
		}
	}
	return nil, false
}

// Reserved Dict keys implementing the partial-prefix dot-access
// carrier.
const (
	PartialDotDictKey   = "__partial_dot_dict__"
	PartialDotPrefixKey = "__partial_dot_prefix__"
)

// DictEntry is one (key, value) pair of a Dict.
type DictEntry struct {
	Key   string
	Value Value
}

// Dict is an ordered association list keyed by string. DotAccess
// resolves keys directly, and — via the partial-prefix mechanism —
// dotted-name prefix chains.
type Dict struct {
	Entries []DictEntry
}

func NewDict() *Dict { return &Dict{} }

func (*Dict) Type() string { return "Dict" }
func (d *Dict) String() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get looks up key directly (no prefix resolution — that belongs to
// the evaluator's DotAccess handling, since it needs to synthesize
// new partial-prefix carriers).
func (d *Dict) Get(key string) (Value, bool) {
	for _, e := range d.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set appends or replaces key's value, preserving insertion order for
// pre-existing keys and appending new ones — association-list
// semantics, not a Go map, so iteration order is deterministic.
func (d *Dict) Set(key string, v Value) *Dict {
	out := &Dict{Entries: make([]DictEntry, len(d.Entries))}
	copy(out.Entries, d.Entries)
	for i, e := range out.Entries {
		if e.Key == key {
			out.Entries[i].Value = v
			return out
		}
	}
	out.Entries = append(out.Entries, DictEntry{Key: key, Value: v})
	return out
}

// HasPrefix reports whether any key begins with prefix+".".
func (d *Dict) HasPrefix(prefix string) bool {
	want := prefix + "."
	for _, e := range d.Entries {
		if strings.HasPrefix(e.Key, want) {
			return true
		}
	}
	return false
}

// IsPartialDot reports whether d is a partial-prefix dot-access
// carrier, returning the accumulated prefix if so.
func (d *Dict) IsPartialDot() (string, bool) {
	v, ok := d.Get(PartialDotDictKey)
	if !ok {
		return "", false
	}
	if _, isDict := v.(*Dict); !isDict {
		return "", false
	}
	prefix, ok := d.Get(PartialDotPrefixKey)
	if !ok {
		return "", false
	}
	s, ok := prefix.(String)
	if !ok {
		return "", false
	}
	return string(s), true
}

// NewPartialDot builds a partial-prefix carrier over base, chaining
// field onto any existing prefix. If base is itself a carrier, the
// new carrier stores a direct reference to the original dict (not the
// intermediate carrier), so resolving a chain of N dotted fields is
// always a single lookup against the real dict with the fully
// accumulated "a.b.c" key, never N nested unwraps.
func NewPartialDot(base *Dict, field string) *Dict {
	prefix := field
	real := base
	if existing, ok := base.IsPartialDot(); ok {
		prefix = existing + "." + field
		if rv, ok := base.Get(PartialDotDictKey); ok {
			if rd, ok := rv.(*Dict); ok {
				real = rd
			}
		}
	}
	return &Dict{Entries: []DictEntry{
		{Key: PartialDotDictKey, Value: real},
		{Key: PartialDotPrefixKey, Value: String(prefix)},
	}}
}

// Lambda is a closure: parameters, optional annotations, body, and
// (when CapturedEnv is non-nil) a snapshot of the defining
// environment. A nil CapturedEnv marks an "unbound" lambda — used
// only for builtin-synthesized callables — which evaluates its body
// in the caller's environment instead.
type Lambda struct {
	Params      []ast.Param
	ReturnType  *ast.TypeAnnotation
	Generics    []string
	Variadic    bool
	Body        ast.Expression
	CapturedEnv *Environment
}

func (*Lambda) Type() string { return "Lambda" }
func (l *Lambda) String() string {
	names := make([]string, len(l.Params))
	for i, p := range l.Params {
		names[i] = p.Name
	}
	return "\\(" + strings.Join(names, ", ") + ") -> <lambda>"
}

// Arg is one evaluated call argument (positional or named).
type Arg struct {
	Kind  ast.ArgKind
	Name  string
	Value Value
}

// EvalCallable invokes a callable Value (Lambda, Builtin, or a Symbol
// that resolves to one) with already-evaluated args, returning its
// result. The evaluator supplies the concrete implementation; builtins
// receive it so higher-order functions like `map`/`filter` can call
// back into user code without the builtins package importing the
// evaluator package.
type EvalCallable func(env *Environment, callee Value, args []Arg) Value

// BuiltinFunc is the signature every native function implements.
type BuiltinFunc func(args []Arg, env *Environment, eval EvalCallable) Value

// Builtin is a registered native function.
type Builtin struct {
	Name     string
	Arity    int
	Variadic bool
	Fn       BuiltinFunc
}

func (*Builtin) Type() string     { return "Builtin" }
func (b *Builtin) String() string { return "<builtin " + b.Name + ">" }

// DataFrame is the opaque tabular handle the core forwards to verbs
// without interpreting. Concrete tables are provided by an external
// dataframe-backend collaborator; the core only needs enough surface
// to implement dot-access.
type DataFrame interface {
	Value
	// Column returns the vector value for an exact column name.
	Column(name string) (Value, bool)
	// HasColumnPrefix reports whether any column begins with
	// prefix+"." (for partial-prefix dotted-name resolution).
	HasColumnPrefix(prefix string) bool
	// ColumnsWithPrefix returns a Dict of every column whose name
	// begins with prefix+"." keyed by the full column name,
	// giving dot-access a real carrier to chain further fields onto.
	ColumnsWithPrefix(prefix string) *Dict
	// GroupKeys returns the active grouping columns, if any.
	GroupKeys() []string
}

// PipelineResult is the value produced by evaluating a `pipeline {
// ... }` definition.
type PipelineResult struct {
	Order  []string
	Values map[string]Value
	Exprs  map[string]ast.Expression
	Deps   map[string][]string
}

func (*PipelineResult) Type() string { return "Pipeline" }
func (p *PipelineResult) String() string {
	return "<pipeline " + strings.Join(p.Order, ", ") + ">"
}

// Node looks up a pipeline node's evaluated value by name.
func (p *PipelineResult) Node(name string) (Value, bool) {
	v, ok := p.Values[name]
	return v, ok
}

// FormulaValue is the value `~` produces; operands are never
// evaluated.
type FormulaValue struct {
	Response  []string
	Predictor []string
	RawLHS    ast.Expression
	RawRHS    ast.Expression
}

func (*FormulaValue) Type() string { return "Formula" }
func (f *FormulaValue) String() string {
	return strings.Join(f.Response, "+") + " ~ " + strings.Join(f.Predictor, "+")
}

// Intent is a record of (string key, string value) pairs.
type Intent struct {
	Fields []DictEntry
}

func (*Intent) Type() string { return "Intent" }
func (i *Intent) String() string {
	parts := make([]string, len(i.Fields))
	for idx, f := range i.Fields {
		s, _ := f.Value.(String)
		parts[idx] = f.Key + ": " + string(s)
	}
	return "intent{" + strings.Join(parts, ", ") + "}"
}

// Truthy implements truthiness rule. NA in a truthiness
// context is the caller's responsibility to reject beforehand (e.g.
// if/else and unary `!` check for NA explicitly so they can raise a
// TypeError that names the construct); Truthy itself reports NA as
// an error for any other caller that forgets to.
func Truthy(v Value) (bool, error) {
	switch x := v.(type) {
	case Bool:
		return bool(x), nil
	case Null:
		return false, nil
	case Integer:
		return x != 0, nil
	case *ErrorValue:
		return false, nil
	case NA:
		return false, fmt.Errorf("NA has no truth value")
	default:
		return true, nil
	}
}

// IsError reports whether v is an error value.
func IsError(v Value) bool {
	_, ok := v.(*ErrorValue)
	return ok
}

// IsNA reports whether v is any NA variant.
func IsNA(v Value) bool {
	_, ok := v.(NA)
	return ok
}
