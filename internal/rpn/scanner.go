package rpn

import "strings"

// Scanner splits an expression on whitespace and classifies every piece as
// either an operator or an operand candidate. Numbers are not parsed here;
// that is left to the evaluator since it depends on the numeric type.
type Scanner struct {
	source string
	tokens []*Token
}

// NewScanner creates a new scanner over the given source
func NewScanner(source string) *Scanner {
	scanner := new(Scanner)
	scanner.source = source
	scanner.tokens = nil
	return scanner
}

// Scan collects all the tokens found in the source. Calling it again returns
// the tokens from the first call.
func (scanner *Scanner) Scan() []*Token {
	if scanner.tokens != nil {
		return scanner.tokens
	}

	fields := strings.Fields(scanner.source)
	scanner.tokens = make([]*Token, 0, len(fields))
	for _, field := range fields {
		lexeme := strings.TrimSpace(field)
		if op, isOperator := lookupOperator(lexeme); isOperator {
			scanner.tokens = append(scanner.tokens, newOperatorToken(op, lexeme))
		} else {
			scanner.tokens = append(scanner.tokens, newOperandToken(lexeme))
		}
	}
	return scanner.tokens
}
