package dotenv

import "strings"

// Evaluator resolves a file's worth of Assignments against a Provider and an
// accumulating Scope, per spec.md §4.4. It owns exactly one Scope and is not
// safe for concurrent use; the Provider it reads is treated as a pure
// function for the duration of one EvaluateFile call.
type Evaluator struct {
	// Provider is consulted by lookup but never written to; only the
	// Loader facade's Load writes back to it.
	Provider Provider
	// OverrideEnv controls both assignment short-circuiting and lookup
	// precedence; see assign and lookup.
	OverrideEnv bool

	scope    *Scope
	filename string
}

// NewEvaluator creates an Evaluator with a fresh, empty Scope.
func NewEvaluator(provider Provider, overrideEnv bool) *Evaluator {
	return &Evaluator{Provider: provider, OverrideEnv: overrideEnv, scope: NewScope()}
}

// Scope returns the evaluator's accumulated bindings.
func (e *Evaluator) Scope() *Scope {
	return e.scope
}

// SetFilename attaches a filename to any EvaluationError this evaluator
// raises from now on.
func (e *Evaluator) SetFilename(name string) {
	e.filename = name
}

// EvaluateFile processes assignments in order, mutating e's Scope. An error
// aborts immediately; bindings already made by earlier assignments in this
// (or a prior) file remain in the Scope.
func (e *Evaluator) EvaluateFile(assignments []Assignment) error {
	for _, a := range assignments {
		if err := e.assign(a); err != nil {
			return err
		}
	}

	return nil
}

// assign implements spec.md §4.4's assignment semantics: override_env=true
// always evaluates the expression; override_env=false lets an existing
// Provider binding short-circuit evaluation entirely, so side-effectful
// operators and errors in expr never fire.
func (e *Evaluator) assign(a Assignment) error {
	if !e.OverrideEnv {
		if v, ok := e.Provider.Get(a.Name); ok {
			e.scope.Set(a.Name, v)
			return nil
		}
	}

	value, err := e.evalExpr(a.Value)
	if err != nil {
		return err
	}

	e.scope.Set(a.Name, value)

	return nil
}

// lookup implements spec.md §4.4's name resolution: which of Scope/Provider
// wins is determined by OverrideEnv, so that values assigned earlier in
// this run take precedence exactly when override_env says source files
// should win over the ambient environment.
func (e *Evaluator) lookup(name string) (value string, present bool) {
	if e.OverrideEnv {
		if v, ok := e.scope.Get(name); ok {
			return v, true
		}

		return e.Provider.Get(name)
	}

	if v, ok := e.Provider.Get(name); ok {
		return v, true
	}

	return e.scope.Get(name)
}

func (e *Evaluator) evalExpr(exprs []Expression) (string, error) {
	var b strings.Builder

	for _, expr := range exprs {
		s, err := e.evalOne(expr)
		if err != nil {
			return "", err
		}

		b.WriteString(s)
	}

	return b.String(), nil
}

func (e *Evaluator) evalOne(expr Expression) (string, error) {
	switch v := expr.(type) {
	case Characters:
		return v.Text, nil
	case Expansion:
		return e.evalExpansion(v)
	default:
		return "", nil
	}
}

// evalExpansion implements the eight-operator table of spec.md §4.4.
func (e *Evaluator) evalExpansion(exp Expansion) (string, error) {
	v, present := e.lookup(exp.Name)
	absent := !present
	empty := present && v == ""

	switch exp.Operator {
	case OpIfUnset:
		if absent {
			return e.evalExpr(exp.RHS)
		}

		if empty {
			return "", nil
		}

		return v, nil

	case OpIfUnsetOrNull:
		if absent || empty {
			return e.evalExpr(exp.RHS)
		}

		return v, nil

	case OpIfSet:
		if absent {
			return "", nil
		}

		return e.evalExpr(exp.RHS)

	case OpIfSetAndNotNull:
		if absent || empty {
			return "", nil
		}

		return e.evalExpr(exp.RHS)

	case OpAssignIfUnset:
		if absent {
			return e.assignRHS(exp)
		}

		if empty {
			return "", nil
		}

		return v, nil

	case OpAssignIfUnsetOrNull:
		if absent || empty {
			return e.assignRHS(exp)
		}

		return v, nil

	case OpErrorIfUnset:
		if absent {
			return "", e.undefinedError(exp, ErrUndefinedVariable)
		}

		if empty {
			return "", nil
		}

		return v, nil

	case OpErrorIfUnsetOrNull:
		if absent {
			return "", e.undefinedError(exp, ErrUndefinedVariable)
		}

		if empty {
			return "", e.undefinedError(exp, ErrEmptyValue)
		}

		return v, nil

	default:
		return "", &ParseError{Kind: ErrUnknownOperator, Filename: e.filename}
	}
}

// assignRHS evaluates exp's rhs and assigns it into scope under exp.Name,
// per the AssignIfUnset*/AssignIfUnsetOrNull* side effect. The write lands
// only in the in-evaluator Scope, never back to the Provider (spec.md
// §4.4), and is immediately visible to subsequent expansions via lookup.
func (e *Evaluator) assignRHS(exp Expansion) (string, error) {
	result, err := e.evalExpr(exp.RHS)
	if err != nil {
		return "", err
	}

	e.scope.Set(exp.Name, result)

	return result, nil
}

func (e *Evaluator) undefinedError(exp Expansion, kind EvaluationErrorKind) error {
	msg, err := e.evalExpr(exp.RHS)
	if err != nil {
		return err
	}

	return &EvaluationError{Kind: kind, Name: exp.Name, Message: msg, Filename: e.filename}
}
