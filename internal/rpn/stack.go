package rpn

// stack holds intermediate values of a single evaluation
type stack[T Number] []T

func (s *stack[T]) depth() int {
	return len(*s)
}

func (s *stack[T]) push(v T) {
	*s = append(*s, v)
}

// pop removes the value at the top. ok is false when the stack is empty.
func (s *stack[T]) pop() (v T, ok bool) {
	if len(*s) == 0 {
		return v, false
	}
	*s, v = (*s)[0:len(*s)-1], (*s)[len(*s)-1]
	return v, true
}
