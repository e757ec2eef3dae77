package brain

import "strconv"

// Token is one entry of the expression stack. The set of implementations is
// closed: Operand, Constant, Variable, UnaryOperator and BinaryOperator.
type Token interface {
	Symbol() string
	isToken()
}

// Operand is a literal number.
type Operand struct {
	Value float64
}

// Constant is a named value resolved through the registry.
type Constant struct {
	Name string
}

// Variable is a named value resolved through the variable store when the
// stack is evaluated.
type Variable struct {
	Name string
}

type UnaryOperator struct {
	Name string
	Fn   func(float64) float64
}

type BinaryOperator struct {
	Name string
	// Fn receives the value nearest the operator first.
	Fn func(float64, float64) float64
}

func (o Operand) Symbol() string        { return formatOperand(o.Value) }
func (c Constant) Symbol() string       { return c.Name }
func (v Variable) Symbol() string       { return v.Name }
func (u UnaryOperator) Symbol() string  { return u.Name }
func (b BinaryOperator) Symbol() string { return b.Name }

func (Operand) isToken()        {}
func (Constant) isToken()       {}
func (Variable) isToken()       {}
func (UnaryOperator) isToken()  {}
func (BinaryOperator) isToken() {}

func formatOperand(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseOperand(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
