package scenario

import (
	"regexp"
	"time"
)

// placeholderRe matches a `{name}` placeholder substring.
var placeholderRe = regexp.MustCompile(`\{[^}]+\}`)

// maxResolutionIterations caps the fixed-point placeholder resolution
// loop. Ten is arbitrary but adequate for practical configs; it is not
// exposed as a tuning knob.
const maxResolutionIterations = 10

// RequiredVariable describes a variable the caller must supply a value
// for at runtime.
type RequiredVariable struct {
	Type     VariableType
	Label    string
	ReadOnly bool
}

// VariableType is one of String, Path, or Timestamp(format).
type VariableType struct {
	Kind   VariableKind
	Format string // only meaningful when Kind == VariableKindTimestamp
}

type VariableKind int

const (
	VariableKindString VariableKind = iota
	VariableKindPath
	VariableKindTimestamp
)

// RequiredVariables is the declared schema of caller-supplied variables.
type RequiredVariables map[string]RequiredVariable

// DefinedVariables is the literal name→value map supplied by configuration.
type DefinedVariables map[string]string

// SpecialVariables holds the configured special bindings. Only
// "timestamp" is recognized: its value is the format string used to
// render the current local time.
type SpecialVariables struct {
	TimestampFormat string
	HasTimestamp    bool
}

// Variables is the fully composed, resolved flat variable mapping.
type Variables map[string]string

// Clone returns a shallow copy of the mapping.
func (v Variables) Clone() Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// NewVariables validates the caller-supplied required values against
// the declared schema, composes Defined ∪ supplied-Required ∪ Special,
// and resolves all placeholders to a fixed point.
func NewVariables(required RequiredVariables, defined DefinedVariables, special SpecialVariables, supplied map[string]string) (Variables, error) {
	if err := validateRequired(required, supplied); err != nil {
		return nil, &VariablesError{Op: "validate", Err: err}
	}

	composed := make(Variables, len(defined)+len(supplied)+1)
	for k, v := range supplied {
		composed[k] = v
	}
	for k, v := range defined {
		composed[k] = v
	}
	if special.HasTimestamp {
		composed["timestamp"] = time.Now().Local().Format(special.TimestampFormat)
	}

	resolved, err := resolveFixedPoint(composed)
	if err != nil {
		return nil, &VariablesError{Op: "resolve", Err: err}
	}
	return resolved, nil
}

// validateRequired checks that the supplied-key set equals the
// declared-key set exactly.
func validateRequired(required RequiredVariables, supplied map[string]string) error {
	var undeclared, missing []string

	for k := range supplied {
		if _, ok := required[k]; !ok {
			undeclared = append(undeclared, k)
		}
	}
	for k := range required {
		if _, ok := supplied[k]; !ok {
			missing = append(missing, k)
		}
	}

	if len(undeclared) > 0 || len(missing) > 0 {
		return &ValidationFailedError{Undeclared: undeclared, Missing: missing}
	}
	return nil
}

// resolveFixedPoint repeatedly substitutes `{k}` placeholders in every
// value with the current value of k, until no value changes or the
// iteration cap is reached. Values still containing a placeholder
// after the cap are reported as unresolved.
func resolveFixedPoint(vars Variables) (Variables, error) {
	current := vars.Clone()

	for i := 0; i < maxResolutionIterations; i++ {
		changed := false
		next := make(Variables, len(current))
		for k, v := range current {
			substituted := substitute(v, current)
			if substituted != v {
				changed = true
			}
			next[k] = substituted
		}
		current = next
		if !changed {
			break
		}
	}

	var unresolved []string
	for k, v := range current {
		if placeholderRe.MatchString(v) {
			unresolved = append(unresolved, k)
		}
	}
	if len(unresolved) > 0 {
		return nil, &UnresolvedValuesError{Keys: unresolved}
	}
	return current, nil
}

// substitute replaces every `{k}` occurrence in input with vars[k],
// leaving unknown keys untouched.
func substitute(input string, vars Variables) string {
	return placeholderRe.ReplaceAllStringFunc(input, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := vars[key]; ok {
			return v
		}
		return match
	})
}

// Resolve is the point-substitution primitive: every `{k}` in input is
// replaced by the current value of k. It fails if the result still
// contains a placeholder substring. This is the only way task
// executors obtain runtime command/path strings.
func (v Variables) Resolve(input string) (string, error) {
	result := substitute(input, v)
	if placeholderRe.MatchString(result) {
		return "", &UnresolvedValueError{Result: result}
	}
	return result, nil
}
