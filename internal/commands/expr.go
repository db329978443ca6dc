package commands

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// compileExpr compiles a selection expression once for reuse. An empty
// expression matches everything.
func compileExpr(code string) (*vm.Program, error) {
	if code == "" {
		code = "true"
	}

	return expr.Compile(code, expr.AsBool())
}

// evalCompiledExpr evaluates a pre-compiled expression with the given context.
func evalCompiledExpr(program *vm.Program, env map[string]any) (bool, error) {
	output, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("expression did not evaluate to boolean, got %T", output)
	}

	return result, nil
}
