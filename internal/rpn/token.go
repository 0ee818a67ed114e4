package rpn

import "fmt"

// Token is a single whitespace-delimited piece of an expression together
// with the category it was classified into while scanning.
type Token struct {
	Kind   TokenKind
	Op     Op
	Lexeme string
}

func newOperatorToken(op Op, lexeme string) *Token {
	return &Token{Kind: Operator, Op: op, Lexeme: lexeme}
}

func newOperandToken(lexeme string) *Token {
	return &Token{Kind: Operand, Lexeme: lexeme}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s", t.Kind.String(), t.Lexeme)
}

const (
	// Operand is any token that is not one of the operators. It still has to
	// parse as a number when it is evaluated.
	Operand TokenKind = iota
	Operator
)

// TokenKind tells operators apart from operand candidates
type TokenKind uint

func (k TokenKind) String() string {
	switch k {
	case Operand:
		return "OPERAND"
	case Operator:
		return "OPERATOR"
	}
	return ""
}

const (
	// Plus is the zero value so an operand token never carries a meaningful
	// Op; check Kind first.
	Plus Op = iota
	Minus
	Star
	Slash
)

// Op is one of the four binary arithmetic operators
type Op uint

func (op Op) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	}
	return ""
}

// lookupOperator reports whether lexeme is exactly one of the operator
// literals.
func lookupOperator(lexeme string) (Op, bool) {
	switch lexeme {
	case "+":
		return Plus, true
	case "-":
		return Minus, true
	case "*":
		return Star, true
	case "/":
		return Slash, true
	}
	return 0, false
}
