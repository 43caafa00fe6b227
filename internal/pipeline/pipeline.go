package pipeline

import (
	"github.com/doyoubi/minimoe/internal/diagnostics"
	"github.com/doyoubi/minimoe/internal/lexer"
	"github.com/doyoubi/minimoe/internal/parser"
)

// Pipeline is a sequence of Processors run in order over one
// PipelineContext.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given processors, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run drives every stage in order, threading ctx through each.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}

// LexerProcessor tokenizes ctx.SourceCode into ctx.CodeFile, appending any
// lexer diagnostics to ctx.Diagnostics.
type LexerProcessor struct{}

func (LexerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	ctx.CodeFile = lexer.Scan(ctx.SourceCode)
	ctx.Diagnostics = append(ctx.Diagnostics, ctx.CodeFile.Diagnostics...)
	return ctx
}

// ParserProcessor runs the declaration parser over ctx.CodeFile into
// ctx.Module, appending any parser diagnostics to ctx.Diagnostics. It is a
// no-op when the lexer stage hasn't populated ctx.CodeFile.
type ParserProcessor struct{}

func (ParserProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.CodeFile == nil {
		return ctx
	}
	sink := diagnostics.FromItems(ctx.Diagnostics)
	ctx.Module = parser.ParseModule(ctx.CodeFile.Lines, sink)
	ctx.Diagnostics = sink.Items
	return ctx
}

// Run is the single convenience entry point tests and cmd/minimoe call: it
// builds a fresh PipelineContext for one file's source, runs the lexer and
// parser stages, and returns the populated context.
func Run(source, filename string) *PipelineContext {
	ctx := NewPipelineContext(source, filename)
	p := New(LexerProcessor{}, ParserProcessor{})
	return p.Run(ctx)
}
