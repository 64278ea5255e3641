package cli

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// applyWhere evaluates an expr predicate against each record's canonical
// JSON shape, keeping the records for which it returns true. The program
// is compiled once per command invocation.
func applyWhere[T any](records []T, predicate string) ([]T, error) {
	program, err := expr.Compile(predicate, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid --where expression: %w", err)
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		keep, err := evalWhere(program, rec)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out, nil
}

func evalWhere[T any](program *vm.Program, rec T) (bool, error) {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("failed to encode record: %w", err)
	}
	env := map[string]any{}
	if err := json.Unmarshal(encoded, &env); err != nil {
		return false, fmt.Errorf("failed to build filter environment: %w", err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate --where expression: %w", err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("--where expression must evaluate to a boolean")
	}
	return keep, nil
}
