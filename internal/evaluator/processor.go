package evaluator

import (
	"github.com/funvibe/radixquest/internal/pipeline"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	res, err := Evaluate(ctx.Program, ctx.Options)
	if err != nil {
		return ctx.Fail(err)
	}
	ctx.Result = &res
	return ctx
}
