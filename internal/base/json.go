package base

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/b-rodrigues/tlang-sub002/internal/builtins"
	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

// registerJSON registers `to_json` and `from_json`, converting between
// tlang's Dict/List value tree and JSON text.
func registerJSON(r *builtins.Registry) {
	r.Register("to_json", 1, false, builtins.CategoryJSON, "serializes a value to a JSON String",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			doc, err := toJSON(args[0].Value)
			if err != nil {
				return err
			}
			return runtime.String(doc)
		})

	r.Register("from_json", 1, false, builtins.CategoryJSON, "parses a JSON String into a Dict/List/scalar value tree",
		func(args []runtime.Arg, env *runtime.Environment, eval runtime.EvalCallable) runtime.Value {
			s, ok := args[0].Value.(runtime.String)
			if !ok {
				return runtime.NewErrorf(runtime.TypeError, "from_json requires a String, got %s", args[0].Value.Type())
			}
			if !gjson.Valid(string(s)) {
				return runtime.NewError(runtime.ValueError, "from_json: invalid JSON")
			}
			return fromGJSON(gjson.Parse(string(s)))
		})
}

// toJSON renders v as JSON text, building it up incrementally with
// sjson rather than a reflection-based marshaler: tlang's value tree
// has no Go struct tags to drive one.
func toJSON(v runtime.Value) (string, *runtime.ErrorValue) {
	switch x := v.(type) {
	case runtime.Null:
		return "null", nil
	case runtime.NA:
		return "null", nil
	case runtime.Bool:
		if bool(x) {
			return "true", nil
		}
		return "false", nil
	case runtime.Integer:
		return strconv.FormatInt(int64(x), 10), nil
	case runtime.Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case runtime.String:
		return strconv.Quote(string(x)), nil
	case *runtime.List:
		doc := "[]"
		for _, it := range x.Items {
			child, err := toJSON(it.Value)
			if err != nil {
				return "", err
			}
			d, serr := sjson.SetRaw(doc, "-1", child)
			if serr != nil {
				return "", runtime.NewErrorf(runtime.ValueError, "to_json: %s", serr)
			}
			doc = d
		}
		return doc, nil
	case *runtime.Dict:
		doc := "{}"
		for _, e := range x.Entries {
			child, err := toJSON(e.Value)
			if err != nil {
				return "", err
			}
			d, serr := sjson.SetRaw(doc, sjsonPath(e.Key), child)
			if serr != nil {
				return "", runtime.NewErrorf(runtime.ValueError, "to_json: %s", serr)
			}
			doc = d
		}
		return doc, nil
	default:
		return "", runtime.NewErrorf(runtime.TypeError, "to_json: %s is not serializable", v.Type())
	}
}

// sjsonPath escapes a Dict key for use as an sjson path segment: a
// literal "." in a key must not be read as nesting.
func sjsonPath(key string) string {
	return strings.ReplaceAll(key, ".", "\\.")
}

// fromGJSON converts a parsed gjson.Result into the matching tlang
// value: objects become Dicts, arrays become Lists, JSON null becomes
// Null, never NA — NA has no JSON representation of its own.
func fromGJSON(r gjson.Result) runtime.Value {
	switch {
	case r.IsObject():
		var entries []runtime.DictEntry
		r.ForEach(func(key, value gjson.Result) bool {
			entries = append(entries, runtime.DictEntry{Key: key.String(), Value: fromGJSON(value)})
			return true
		})
		return &runtime.Dict{Entries: entries}
	case r.IsArray():
		var items []runtime.ListItem
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, runtime.ListItem{Value: fromGJSON(value)})
			return true
		})
		return &runtime.List{Items: items}
	default:
		switch r.Type {
		case gjson.Null:
			return runtime.NullValue
		case gjson.False:
			return runtime.Bool(false)
		case gjson.True:
			return runtime.Bool(true)
		case gjson.String:
			return runtime.String(r.String())
		case gjson.Number:
			if strings.ContainsAny(r.Raw, ".eE") {
				return runtime.Float(r.Float())
			}
			return runtime.Integer(r.Int())
		default:
			return runtime.NullValue
		}
	}
}
