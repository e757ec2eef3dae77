package brain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrain(t *testing.T) {
	t.Run("binaryOperators", func(t *testing.T) {
		testCases := []struct {
			name       string
			operands   []float64
			operators  []string
			wantResult float64
		}{
			{
				name:       "add",
				operands:   []float64{10, 2},
				operators:  []string{"+"},
				wantResult: 12,
			},
			{
				name:       "subtract",
				operands:   []float64{10, 2},
				operators:  []string{"−"},
				wantResult: 8,
			},
			{
				name:       "multiply",
				operands:   []float64{10, 2},
				operators:  []string{"×"},
				wantResult: 20,
			},
			{
				name:       "divide",
				operands:   []float64{10, 2},
				operators:  []string{"÷"},
				wantResult: 5,
			},
			{
				name:       "multiply_subtract_add",
				operands:   []float64{10, 2, 5, 9},
				operators:  []string{"+", "−", "×"},
				wantResult: -120,
			},
			{
				name:       "leadingOperandIgnored",
				operands:   []float64{1, 2, 3},
				operators:  []string{"+"},
				wantResult: 5,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				b := New()
				for _, v := range tc.operands {
					_, ok := b.PushOperand(v)
					require.True(t, ok)
				}

				var haveResult float64
				var ok bool
				for _, op := range tc.operators {
					haveResult, ok = b.PerformOperation(op)
				}

				require.True(t, ok)
				require.Equal(t, tc.wantResult, haveResult)
			})
		}
	})

	t.Run("unaryAfterBinary", func(t *testing.T) {
		b := New()
		b.PushOperand(3)
		b.PushOperand(4)

		result, ok := b.PerformOperation("+")
		require.True(t, ok)
		require.Equal(t, 7.0, result)

		result, ok = b.PerformOperation("√")
		require.True(t, ok)
		require.InDelta(t, 2.6458, result, 1e-4)
	})

	t.Run("trigonometry", func(t *testing.T) {
		b := New()
		b.PushSymbol("π")
		result, ok := b.PerformOperation("cos")
		require.True(t, ok)
		require.InDelta(t, -1, result, 1e-12)

		result, ok = b.PerformOperation("sin")
		require.True(t, ok)
		require.InDelta(t, math.Sin(-1), result, 1e-12)
	})

	t.Run("missingOperand", func(t *testing.T) {
		b := New()
		_, ok := b.PushOperand(0)
		require.True(t, ok)

		_, ok = b.PerformOperation("÷")
		require.False(t, ok)

		b.ClearStack()
		_, ok = b.PerformOperation("√")
		require.False(t, ok)
	})

	t.Run("nonFiniteResults", func(t *testing.T) {
		b := New()
		b.PushOperand(1)
		b.PushOperand(0)
		result, ok := b.PerformOperation("÷")
		require.True(t, ok)
		require.True(t, math.IsInf(result, 1))

		b.ClearStack()
		b.PushOperand(-1)
		result, ok = b.PerformOperation("√")
		require.True(t, ok)
		require.True(t, math.IsNaN(result))
	})

	t.Run("unknownOperation", func(t *testing.T) {
		b := New()
		b.PushOperand(3)
		before := b.Program()

		result, ok := b.PerformOperation("?")
		require.True(t, ok)
		require.Equal(t, 3.0, result)
		require.Equal(t, before, b.Program())
	})

	t.Run("constantShadowsVariable", func(t *testing.T) {
		b := New()
		b.Variables().Set("π", 3)

		result, ok := b.PushSymbol("π")
		require.True(t, ok)
		require.Equal(t, math.Pi, result)
		require.Equal(t, []string{"π"}, b.Program())
	})

	t.Run("unboundVariable", func(t *testing.T) {
		b := New()
		_, ok := b.PushSymbol("r")
		require.False(t, ok)

		_, bound := b.Variables().Get("r")
		require.False(t, bound)
	})

	t.Run("variableBoundOnSuccess", func(t *testing.T) {
		b := New()
		b.Variables().Set("x", 2)
		b.PushOperand(3)

		result, ok := b.PushSymbol("x")
		require.True(t, ok)
		require.Equal(t, 2.0, result)

		v, bound := b.Variables().Get("x")
		require.True(t, bound)
		require.Equal(t, 2.0, v)

		result, ok = b.PerformOperation("×")
		require.True(t, ok)
		require.Equal(t, 6.0, result)
	})

	t.Run("clearStack", func(t *testing.T) {
		b := New()
		b.PushOperand(3)
		b.ClearStack()

		_, ok := b.Evaluate()
		require.False(t, ok)
		require.Zero(t, b.Len())
	})

	t.Run("clearVariables", func(t *testing.T) {
		b := New()
		b.Variables().Set("m", 42)
		result, ok := b.PushSymbol("m")
		require.True(t, ok)
		require.Equal(t, 42.0, result)

		b.ClearVariables()
		_, ok = b.Evaluate()
		require.False(t, ok)
		require.Equal(t, []string{"m"}, b.Program())
	})

	t.Run("clear", func(t *testing.T) {
		b := New()
		b.Variables().Set("m", 1)
		b.PushSymbol("m")
		b.Clear()

		require.Zero(t, b.Len())
		require.Zero(t, b.Variables().Len())
	})

	t.Run("push", func(t *testing.T) {
		b := New()
		for _, tok := range []string{"3", " 4 ", "+", "", "π", "×"} {
			b.Push(tok)
		}

		result, ok := b.Evaluate()
		require.True(t, ok)
		require.InDelta(t, 7*math.Pi, result, 1e-12)
		require.Equal(t, []string{"3", "4", "+", "π", "×"}, b.Program())

		_, ok = b.Push("z")
		require.False(t, ok)
		require.Equal(t, "z", b.Program()[b.Len()-1])
	})

	t.Run("options", func(t *testing.T) {
		b := New(
			WithConstant("e", math.E),
			WithOperator(UnaryOperator{Name: "±", Fn: func(v float64) float64 { return -v }}),
			WithOperator(BinaryOperator{Name: "+", Fn: func(a, b float64) float64 { return b - a }}),
			WithOperator(Operand{Value: 1}),
		)

		result, ok := b.PushSymbol("e")
		require.True(t, ok)
		require.Equal(t, math.E, result)

		result, ok = b.PerformOperation("±")
		require.True(t, ok)
		require.Equal(t, -math.E, result)

		b.ClearStack()
		b.PushOperand(10)
		b.PushOperand(4)
		result, ok = b.PerformOperation("+")
		require.True(t, ok)
		require.Equal(t, 6.0, result)

		require.NotContains(t, b.Registry().Operators(), "1")
		require.Equal(t, []string{"e", "π"}, b.Registry().Constants())
	})

	t.Run("registriesAreIndependent", func(t *testing.T) {
		extended := New(WithConstant("τ", 2*math.Pi))
		plain := New()

		_, ok := extended.Registry().Constant("τ")
		require.True(t, ok)
		_, ok = plain.Registry().Constant("τ")
		require.False(t, ok)
	})
}

func TestEvaluateRemaining(t *testing.T) {
	b := New()
	add, _ := b.Registry().Operator("+")
	sqrt, _ := b.Registry().Operator("√")

	testCases := []struct {
		name          string
		ops           []Token
		wantOK        bool
		wantResult    float64
		wantRemaining []Token
	}{
		{
			name:          "empty",
			ops:           []Token{},
			wantRemaining: []Token{},
		},
		{
			name:          "leftover",
			ops:           []Token{Operand{Value: 1}, Operand{Value: 2}, Operand{Value: 3}, add},
			wantOK:        true,
			wantResult:    5,
			wantRemaining: []Token{Operand{Value: 1}},
		},
		{
			name:          "unboundVariable",
			ops:           []Token{Operand{Value: 1}, Variable{Name: "x"}},
			wantRemaining: []Token{Operand{Value: 1}},
		},
		{
			name:          "binaryFailsOnFirstOperand",
			ops:           []Token{Operand{Value: 5}, Variable{Name: "x"}, add},
			wantRemaining: []Token{Operand{Value: 5}},
		},
		{
			name:          "binaryFailsOnSecondOperand",
			ops:           []Token{Operand{Value: 5}, add},
			wantRemaining: []Token{},
		},
		{
			name:          "unaryPropagatesFailure",
			ops:           []Token{Operand{Value: 5}, Variable{Name: "x"}, sqrt},
			wantRemaining: []Token{Operand{Value: 5}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := append([]Token(nil), tc.ops...)

			haveResult, ok, remaining := b.evaluate(tc.ops)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.wantResult, haveResult)
			}
			require.Equal(t, symbols(tc.wantRemaining), symbols(remaining))
			require.Equal(t, symbols(before), symbols(tc.ops))
		})
	}
}

func symbols(ops []Token) []string {
	s := make([]string, len(ops))
	for i, op := range ops {
		s[i] = op.Symbol()
	}
	return s
}
