package cmd

import (
	"strings"
	"testing"

	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
)

func TestExplanationTextForValue(t *testing.T) {
	got := explanationText(runtime.Integer(3))
	if got != "Integer: 3" {
		t.Fatalf("explanationText(3) = %q, want %q", got, "Integer: 3")
	}
}

func TestExplanationTextForError(t *testing.T) {
	e := runtime.NewError(runtime.DivisionByZero, "division by zero")
	got := explanationText(e)
	if got != "Error(DivisionByZero): division by zero" {
		t.Fatalf("explanationText(error) = %q", got)
	}
}

func TestExplanationJSONIncludesErrorFields(t *testing.T) {
	e := runtime.NewError(runtime.KeyError, "missing").WithContext("key", runtime.String("id"))
	doc, err := explanationJSON(e)
	if err != nil {
		t.Fatalf("explanationJSON: %v", err)
	}
	for _, want := range []string{`"type":"Error"`, `"code":"KeyError"`, `"message":"missing"`, `"context":{"key":"id"}`} {
		if !strings.Contains(doc, want) {
			t.Fatalf("explanationJSON(e) = %s, want it to contain %s", doc, want)
		}
	}
}

func TestExplanationJSONPlainValue(t *testing.T) {
	doc, err := explanationJSON(runtime.Bool(true))
	if err != nil {
		t.Fatalf("explanationJSON: %v", err)
	}
	if !strings.Contains(doc, `"type":"Bool"`) || !strings.Contains(doc, `"value":"true"`) {
		t.Fatalf("explanationJSON(true) = %s", doc)
	}
}
