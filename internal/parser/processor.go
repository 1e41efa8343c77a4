package parser

import "github.com/funvibe/radixquest/internal/pipeline"

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, err := Parse(ctx.Tokens)
	if err != nil {
		return ctx.Fail(err)
	}
	ctx.Program = prog
	return ctx
}
