package base

import (
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func newJSONRegistry() *builtins.Registry {
	r := builtins.NewRegistry()
	registerJSON(r)
	return r
}

func TestToJSONScalarsAndCollections(t *testing.T) {
	r := newJSONRegistry()
	toJSONFn, _ := r.Lookup("to_json")

	dict := &runtime.Dict{Entries: []runtime.DictEntry{
		{Key: "name", Value: runtime.String("ada")},
		{Key: "tags", Value: &runtime.List{Items: []runtime.ListItem{
			{Value: runtime.Integer(1)}, {Value: runtime.Bool(true)}, {Value: runtime.NullValue},
		}}},
	}}

	got := toJSONFn.Fn([]runtime.Arg{{Value: dict}}, nil, nil)
	s, ok := got.(runtime.String)
	if !ok {
		t.Fatalf("to_json returned %v, want a String", got)
	}

	fromJSONFn, _ := r.Lookup("from_json")
	back := fromJSONFn.Fn([]runtime.Arg{{Value: s}}, nil, nil).(*runtime.Dict)

	name, ok := back.Get("name")
	if !ok || name != runtime.String("ada") {
		t.Fatalf("round-tripped name = %v, want ada", name)
	}
	tags, ok := back.Get("tags")
	if !ok {
		t.Fatal("round-tripped dict missing tags")
	}
	lst := tags.(*runtime.List)
	if len(lst.Items) != 3 || lst.Items[0].Value != runtime.Integer(1) || lst.Items[1].Value != runtime.Bool(true) {
		t.Fatalf("round-tripped tags = %v", lst)
	}
	if _, isNull := lst.Items[2].Value.(runtime.Null); !isNull {
		t.Fatalf("round-tripped tags[2] = %v, want Null", lst.Items[2].Value)
	}
}

func TestFromJSONRejectsInvalidInput(t *testing.T) {
	r := newJSONRegistry()
	fromJSONFn, _ := r.Lookup("from_json")
	got := fromJSONFn.Fn([]runtime.Arg{{Value: runtime.String("{not json")}}, nil, nil)
	if !runtime.IsError(got) {
		t.Fatalf("from_json(invalid) = %v, want an error", got)
	}
}

func TestToJSONRejectsUnserializableValue(t *testing.T) {
	r := newJSONRegistry()
	toJSONFn, _ := r.Lookup("to_json")
	got := toJSONFn.Fn([]runtime.Arg{{Value: runtime.Symbol{Name: "x"}}}, nil, nil)
	if !runtime.IsError(got) {
		t.Fatalf("to_json(Symbol) = %v, want an error", got)
	}
}
