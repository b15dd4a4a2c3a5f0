package runtime

import "testing"

func TestBindAndFind(t *testing.T) {
	env := NewRootEnvironment()
	env2 := env.Bind("x", Integer(1))

	if _, ok := env.Find("x"); ok {
		t.Fatalf("original environment must not see the new binding")
	}
	v, ok := env2.Find("x")
	if !ok || v != Integer(1) {
		t.Fatalf("expected x=1, got %v (ok=%v)", v, ok)
	}
}

func TestFindCrossesScopeBoundary(t *testing.T) {
	outer := NewRootEnvironment().Bind("x", Integer(10))
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Find("x")
	if !ok || v != Integer(10) {
		t.Fatalf("expected inner scope to see outer binding x=10, got %v (ok=%v)", v, ok)
	}
}

func TestIsBoundInCurrentScopeStopsAtBoundary(t *testing.T) {
	outer := NewRootEnvironment().Bind("x", Integer(10))
	inner := NewEnclosedEnvironment(outer)

	if inner.IsBoundInCurrentScope("x") {
		t.Fatalf("x is bound in the outer scope, not the inner one")
	}

	inner2 := inner.Bind("x", Integer(1))
	if !inner2.IsBoundInCurrentScope("x") {
		t.Fatalf("x should now be bound in the current (inner) scope")
	}
}

func TestClosureSnapshotSemantics(t *testing.T) {
	// make = \(n) \(x) x + n; f = make(10); n = 99; f(1) => 11
	env := NewRootEnvironment()
	env = env.Bind("n", Integer(10))
	captured := env // the lambda f would capture this snapshot

	env = env.Bind("n", Integer(99)) // shadowing rebind, e.g. via :=

	v, _ := captured.Find("n")
	if v != Integer(10) {
		t.Fatalf("captured environment must still see n=10, got %v", v)
	}
	v2, _ := env.Find("n")
	if v2 != Integer(99) {
		t.Fatalf("later environment should see n=99, got %v", v2)
	}
}

func TestNamesDeduplicatesInnermostFirst(t *testing.T) {
	env := NewRootEnvironment().Bind("a", Integer(1)).Bind("b", Integer(2)).Bind("a", Integer(3))
	names := env.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 distinct names, got %v", names)
	}
	if names[0] != "a" {
		t.Fatalf("expected most recent binding of 'a' to win positionally, got %v", names)
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Bool(false), false},
		{Bool(true), true},
		{NullValue, false},
		{Integer(0), false},
		{Integer(5), true},
		{String(""), true},
		{NewError(TypeError, "x"), false},
	}
	for _, tt := range tests {
		got, err := Truthy(tt.v)
		if err != nil {
			t.Fatalf("Truthy(%v) unexpected error: %v", tt.v, err)
		}
		if got != tt.want {
			t.Fatalf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestTruthinessRejectsNA(t *testing.T) {
	if _, err := Truthy(NA{Kind: NAGeneric}); err == nil {
		t.Fatalf("expected an error for NA truthiness")
	}
}

func TestDictPartialPrefix(t *testing.T) {
	base := NewDict().Set("Petal.Length", Float(1.5)).Set("Petal.Width", Float(0.2))
	if !base.HasPrefix("Petal") {
		t.Fatalf("expected HasPrefix(Petal) to be true")
	}
	carrier := NewPartialDot(base, "Petal")
	prefix, ok := carrier.IsPartialDot()
	if !ok || prefix != "Petal" {
		t.Fatalf("expected partial-dot prefix 'Petal', got %q (ok=%v)", prefix, ok)
	}
	chained := NewPartialDot(carrier, "Length")
	prefix2, ok := chained.IsPartialDot()
	if !ok || prefix2 != "Petal.Length" {
		t.Fatalf("expected chained prefix 'Petal.Length', got %q (ok=%v)", prefix2, ok)
	}
}
