package brain

import (
	"math"
	"sort"
)

// Registry maps operator symbols to operator tokens and constant symbols to
// their values. A registry is filled while its Brain is constructed and is
// read-only afterwards.
type Registry struct {
	ops       map[string]Token
	constants map[string]float64
}

func newRegistry() *Registry {
	r := &Registry{
		ops:       make(map[string]Token),
		constants: make(map[string]float64),
	}

	r.learnConstant("π", math.Pi)

	r.learn(BinaryOperator{Name: "×", Fn: func(a, b float64) float64 { return a * b }})
	r.learn(BinaryOperator{Name: "÷", Fn: func(a, b float64) float64 { return b / a }})
	r.learn(BinaryOperator{Name: "+", Fn: func(a, b float64) float64 { return a + b }})
	r.learn(BinaryOperator{Name: "−", Fn: func(a, b float64) float64 { return b - a }})
	r.learn(UnaryOperator{Name: "√", Fn: math.Sqrt})
	r.learn(UnaryOperator{Name: "sin", Fn: math.Sin})
	r.learn(UnaryOperator{Name: "cos", Fn: math.Cos})

	return r
}

// learn registers an operator under its symbol, replacing any operator
// already registered with the same symbol. Tokens other than UnaryOperator
// and BinaryOperator are ignored.
func (r *Registry) learn(op Token) {
	switch op.(type) {
	case UnaryOperator, BinaryOperator:
		r.ops[op.Symbol()] = op
	}
}

// learnConstant registers a named constant, last write wins.
func (r *Registry) learnConstant(name string, value float64) {
	r.constants[name] = value
}

func (r *Registry) Operator(symbol string) (Token, bool) {
	op, ok := r.ops[symbol]
	return op, ok
}

func (r *Registry) Constant(symbol string) (float64, bool) {
	v, ok := r.constants[symbol]
	return v, ok
}

// Operators returns the registered operator symbols in sorted order.
func (r *Registry) Operators() []string {
	symbols := make([]string, 0, len(r.ops))
	for symbol := range r.ops {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Constants returns the registered constant symbols in sorted order.
func (r *Registry) Constants() []string {
	names := make([]string, 0, len(r.constants))
	for name := range r.constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
