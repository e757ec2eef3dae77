package brain

import "strings"

const (
	precedenceAdditive = iota + 1
	precedenceMultiplicative
	precedenceAtom
)

// missingOperand stands in for an operand the stack does not provide.
const missingOperand = "?"

// HistoryText renders the stack in infix notation. Independent expressions
// left on the stack are separated by commas, oldest first.
func (b *Brain) HistoryText() string {
	var exprs []string
	remaining := b.stack
	for len(remaining) > 0 {
		var text string
		text, _, remaining = describe(remaining)
		exprs = append(exprs, text)
	}

	for i, j := 0, len(exprs)-1; i < j; i, j = i+1, j-1 {
		exprs[i], exprs[j] = exprs[j], exprs[i]
	}
	return strings.Join(exprs, ", ")
}

func describe(ops []Token) (string, int, []Token) {
	if len(ops) == 0 {
		return missingOperand, precedenceAtom, ops
	}

	last := len(ops) - 1
	remaining := ops[:last:last]

	switch op := ops[last].(type) {
	case UnaryOperator:
		operand, _, rest := describe(remaining)
		return op.Name + "(" + operand + ")", precedenceAtom, rest
	case BinaryOperator:
		right, rightPrec, rest := describe(remaining)
		left, leftPrec, rest := describe(rest)

		prec := binaryPrecedence(op.Name)
		if leftPrec < prec {
			left = "(" + left + ")"
		}
		if rightPrec < prec || (rightPrec == prec && !associative(op.Name)) {
			right = "(" + right + ")"
		}
		return left + op.Name + right, prec, rest
	default:
		return op.Symbol(), precedenceAtom, remaining
	}
}

func binaryPrecedence(symbol string) int {
	switch symbol {
	case "×", "÷":
		return precedenceMultiplicative
	default:
		return precedenceAdditive
	}
}

func associative(symbol string) bool {
	return symbol == "+" || symbol == "×"
}
