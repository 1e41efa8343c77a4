package lexer

import "github.com/funvibe/radixquest/internal/pipeline"

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	toks, err := Tokenize(ctx.Source)
	if err != nil {
		return ctx.Fail(err)
	}
	ctx.Tokens = toks
	return ctx
}
