package brain

import "strings"

// Program returns the symbols of the stack from bottom to top.
func (b *Brain) Program() []string {
	program := make([]string, len(b.stack))
	for i, tok := range b.stack {
		program[i] = tok.Symbol()
	}
	return program
}

// SetProgram replaces the stack with the tokens described by program.
// Operator and constant symbols and numeric literals are recognised; any other
// symbol is dropped.
func (b *Brain) SetProgram(program []string) {
	stack := make([]Token, 0, len(program))
	for _, symbol := range program {
		if op, ok := b.registry.Operator(symbol); ok {
			stack = append(stack, op)
			continue
		}

		if _, ok := b.registry.Constant(symbol); ok {
			stack = append(stack, Constant{Name: symbol})
			continue
		}

		if v, ok := parseOperand(symbol); ok {
			stack = append(stack, Operand{Value: v})
		}
	}

	b.stack = stack
}

// ProgramText joins the program symbols with spaces.
func (b *Brain) ProgramText() string {
	return strings.Join(b.Program(), " ")
}
