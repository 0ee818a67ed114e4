/*
Package rpn evaluates arithmetic expressions written in Reverse Polish
Notation.

Grammar

	expr     --> token* ;
	token    --> operator | operand ;
	operator --> "+" | "-" | "*" | "/" ;
	operand  --> NUMBER ;

Tokens are separated by any amount of whitespace. An operator pops the right
operand first and the left operand second, so "10 4 -" is 6. After the last
token exactly one value must be left on the stack.

Errors

	InvalidOperator   token is neither an operator nor a number
	InvalidRightSide  operator applied to an empty stack
	InvalidLeftSide   operator applied to a stack holding one value
	EvaluationError   stack does not end with exactly one value, the float
	                  result is infinite or NaN, or an integer division by zero

The first error stops the evaluation.
*/
package rpn
