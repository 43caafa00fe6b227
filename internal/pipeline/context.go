package pipeline

import (
	"github.com/doyoubi/minimoe/internal/ast"
	"github.com/doyoubi/minimoe/internal/diagnostics"
	"github.com/doyoubi/minimoe/internal/lexer"
	"github.com/google/uuid"
)

// PipelineContext holds the data shared by the two front-end stages:
// lexing and declaration/expression parsing.
type PipelineContext struct {
	SourceCode string
	Filename   string

	CodeFile *lexer.CodeFile
	Module   *ast.Module

	Diagnostics []diagnostics.Diagnostic

	// SessionID is minted once per context and has no effect on parsing
	// semantics. It exists purely so a caller fanning out over many files
	// concurrently (as cmd/minimoe does) can correlate a
	// diagnostic back to the file/goroutine that produced it without the
	// core tracking any cross-file state itself.
	SessionID uuid.UUID
}

// NewPipelineContext creates a fresh context for one file's worth of
// source. Every call gets its own SessionID and starts with no symbol
// stack state carried over from any other run.
func NewPipelineContext(source, filename string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Filename:   filename,
		SessionID:  uuid.New(),
	}
}
