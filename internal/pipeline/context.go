package pipeline

import (
	"github.com/funvibe/radixquest/internal/rpn"
	"github.com/funvibe/radixquest/internal/token"
	"github.com/funvibe/radixquest/internal/value"
)

// PipelineContext carries the state of one evaluation call through the
// stages. It is created per call and never shared.
type PipelineContext struct {
	Source  string
	Options value.Options

	Tokens  []token.Token
	Program *rpn.Program
	Result  *value.Result

	Errors []error
}

func NewPipelineContext(source string, opts value.Options) *PipelineContext {
	return &PipelineContext{Source: source, Options: opts}
}

// Fail records a terminal error.
func (c *PipelineContext) Fail(err error) *PipelineContext {
	c.Errors = append(c.Errors, err)
	return c
}

// Err returns the first recorded error, or nil.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}
