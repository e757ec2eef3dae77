// Package brain implements the evaluation engine of a desk calculator. A Brain
// keeps a postfix stack of tokens entered one at a time and re-evaluates the
// whole stack after every push.
package brain

import (
	"fmt"
	"strings"
)

// Brain is a calculator engine with its own registry, stack and variables.
// This is not thread-safe and should only be accessed by a single goroutine.
type Brain struct {
	registry  *Registry
	variables *Variables
	stack     []Token
}

// Option customises the registry of a Brain while it is being constructed.
type Option func(*Registry)

// WithOperator registers an additional unary or binary operator.
func WithOperator(op Token) Option {
	return func(r *Registry) {
		r.learn(op)
	}
}

// WithConstant registers an additional named constant.
func WithConstant(name string, value float64) Option {
	return func(r *Registry) {
		r.learnConstant(name, value)
	}
}

func New(opts ...Option) *Brain {
	registry := newRegistry()
	for _, opt := range opts {
		opt(registry)
	}

	return &Brain{
		registry:  registry,
		variables: newVariables(),
	}
}

func (b *Brain) Registry() *Registry {
	return b.registry
}

// Variables exposes the variable store for direct assignment.
func (b *Brain) Variables() *Variables {
	return b.variables
}

// Len returns the number of tokens on the stack.
func (b *Brain) Len() int {
	return len(b.stack)
}

func (b *Brain) PushOperand(v float64) (float64, bool) {
	b.stack = append(b.stack, Operand{Value: v})
	return b.Evaluate()
}

// PushSymbol pushes a constant if symbol is a registered constant and a
// variable otherwise. When a variable was pushed and the stack evaluates, the
// variable is bound to the result.
func (b *Brain) PushSymbol(symbol string) (float64, bool) {
	if _, ok := b.registry.Constant(symbol); ok {
		b.stack = append(b.stack, Constant{Name: symbol})
		return b.Evaluate()
	}

	b.stack = append(b.stack, Variable{Name: symbol})
	result, ok := b.Evaluate()
	if ok {
		b.variables.Set(symbol, result)
	}

	return result, ok
}

// PerformOperation pushes the operator registered under symbol. Unknown
// symbols leave the stack untouched.
func (b *Brain) PerformOperation(symbol string) (float64, bool) {
	if op, ok := b.registry.Operator(symbol); ok {
		b.stack = append(b.stack, op)
	}
	return b.Evaluate()
}

// Push resolves a raw input token: operators are performed, numeric literals
// pushed as operands and anything else pushed as a symbol. Blank tokens only
// re-evaluate the stack.
func (b *Brain) Push(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return b.Evaluate()
	}

	if _, ok := b.registry.Operator(token); ok {
		return b.PerformOperation(token)
	}

	if v, ok := parseOperand(token); ok {
		return b.PushOperand(v)
	}

	return b.PushSymbol(token)
}

func (b *Brain) ClearStack() {
	b.stack = nil
}

func (b *Brain) ClearVariables() {
	b.variables.Clear()
}

// Clear empties both the stack and the variable store.
func (b *Brain) Clear() {
	b.ClearStack()
	b.ClearVariables()
}

// Evaluate reduces the stack to a single value. Tokens below the topmost
// complete expression are ignored. The boolean is false when the stack is
// empty, an operator lacks operands or a variable is unbound.
func (b *Brain) Evaluate() (float64, bool) {
	result, ok, _ := b.evaluate(b.stack)
	return result, ok
}

// evaluate consumes tokens from the end of ops and returns the value of the
// topmost expression together with the tokens it did not consume. ops itself
// is never modified.
func (b *Brain) evaluate(ops []Token) (float64, bool, []Token) {
	if len(ops) == 0 {
		return 0, false, ops
	}

	last := len(ops) - 1
	remaining := ops[:last:last]

	switch op := ops[last].(type) {
	case Operand:
		return op.Value, true, remaining
	case Constant:
		v, ok := b.registry.Constant(op.Name)
		if !ok {
			panic(fmt.Sprintf("brain: constant %q is not registered", op.Name))
		}
		return v, true, remaining
	case Variable:
		v, ok := b.variables.Get(op.Name)
		return v, ok, remaining
	case UnaryOperator:
		operand, ok, rest := b.evaluate(remaining)
		if !ok {
			return 0, false, rest
		}
		return op.Fn(operand), true, rest
	case BinaryOperator:
		operand1, ok, rest := b.evaluate(remaining)
		if !ok {
			return 0, false, rest
		}
		operand2, ok, rest := b.evaluate(rest)
		if !ok {
			return 0, false, rest
		}
		return op.Fn(operand1, operand2), true, rest
	default:
		panic(fmt.Sprintf("brain: unknown token type %T", op))
	}
}
