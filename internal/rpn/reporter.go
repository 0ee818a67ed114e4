package rpn

import (
	"fmt"
	"io"
)

// Reporter shows evaluation failures to whoever invoked the calculator and
// remembers that one happened, so the caller can pick an exit status.
type Reporter interface {
	Report(err error)
	HadError() bool
}

// LineReporter prints every reported error on its own line
type LineReporter struct {
	out    io.Writer
	failed bool
}

func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

func (r *LineReporter) Report(err error) {
	r.failed = true
	fmt.Fprintln(r.out, err)
}

func (r *LineReporter) HadError() bool {
	return r.failed
}
