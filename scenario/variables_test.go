package scenario

import (
	"errors"
	"testing"
)

func TestNewVariables_ComposesDefinedRequiredSpecial(t *testing.T) {
	required := RequiredVariables{"env": {Type: VariableType{Kind: VariableKindString}}}
	defined := DefinedVariables{"app": "billing"}
	special := SpecialVariables{TimestampFormat: "2006", HasTimestamp: true}

	vars, err := NewVariables(required, defined, special, map[string]string{"env": "prod"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vars["env"] != "prod" {
		t.Errorf("env = %q, want prod", vars["env"])
	}
	if vars["app"] != "billing" {
		t.Errorf("app = %q, want billing", vars["app"])
	}
	if len(vars["timestamp"]) != 4 {
		t.Errorf("timestamp = %q, want a 4-digit year", vars["timestamp"])
	}
}

func TestNewVariables_DefinedShadowsRequired(t *testing.T) {
	required := RequiredVariables{"env": {Type: VariableType{Kind: VariableKindString}}}
	defined := DefinedVariables{"env": "prod"}

	vars, err := NewVariables(required, defined, SpecialVariables{}, map[string]string{"env": "stage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vars["env"] != "prod" {
		t.Errorf("env = %q, want prod (Defined shadows Required)", vars["env"])
	}
}

func TestNewVariables_ValidationFailed(t *testing.T) {
	required := RequiredVariables{"env": {}}

	_, err := NewVariables(required, nil, SpecialVariables{}, map[string]string{"other": "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var varsErr *VariablesError
	if !errors.As(err, &varsErr) {
		t.Fatalf("error = %T, want *VariablesError", err)
	}
	var valErr *ValidationFailedError
	if !errors.As(err, &valErr) {
		t.Fatalf("wrapped error = %T, want *ValidationFailedError", err)
	}
	if len(valErr.Missing) != 1 || valErr.Missing[0] != "env" {
		t.Errorf("missing = %v, want [env]", valErr.Missing)
	}
	if len(valErr.Undeclared) != 1 || valErr.Undeclared[0] != "other" {
		t.Errorf("undeclared = %v, want [other]", valErr.Undeclared)
	}
}

func TestNewVariables_UnresolvedPlaceholder(t *testing.T) {
	defined := DefinedVariables{"a": "{b}"}

	_, err := NewVariables(nil, defined, SpecialVariables{}, nil)
	if err == nil {
		t.Fatal("expected unresolved-values error")
	}
	var unresolvedErr *UnresolvedValuesError
	if !errors.As(err, &unresolvedErr) {
		t.Fatalf("error = %T, want *UnresolvedValuesError", err)
	}
	if len(unresolvedErr.Keys) != 1 || unresolvedErr.Keys[0] != "a" {
		t.Errorf("keys = %v, want [a]", unresolvedErr.Keys)
	}
}

func TestNewVariables_FixedPointAllowsForwardReference(t *testing.T) {
	// b references c, c is defined directly: order-independent resolution.
	defined := DefinedVariables{
		"a": "{b}-{c}",
		"b": "{c}-mid",
		"c": "leaf",
	}

	vars, err := NewVariables(nil, defined, SpecialVariables{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vars["a"] != "leaf-mid-leaf" {
		t.Errorf("a = %q, want leaf-mid-leaf", vars["a"])
	}
}

func TestVariables_Resolve(t *testing.T) {
	vars := Variables{"who": "world"}

	resolved, err := vars.Resolve("echo {who}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != "echo world" {
		t.Errorf("resolved = %q, want %q", resolved, "echo world")
	}

	_, err = vars.Resolve("echo {missing}")
	if err == nil {
		t.Fatal("expected unresolved-value error")
	}
	var unresolvedErr *UnresolvedValueError
	if !errors.As(err, &unresolvedErr) {
		t.Fatalf("error = %T, want *UnresolvedValueError", err)
	}
}

func TestVariables_ResolveTwice_IsIdentity(t *testing.T) {
	vars := Variables{"who": "world"}

	once, err := vars.Resolve("echo {who}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := vars.Resolve(once)
	if err != nil {
		t.Fatalf("unexpected error resolving an already-resolved value: %v", err)
	}
	if once != twice {
		t.Errorf("resolving twice changed the value: %q != %q", once, twice)
	}
}
