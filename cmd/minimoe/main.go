// Command minimoe is a thin CLI around the lexer/parser pipeline:
//
//	minimoe check file1.moe file2.moe ...
//
// Each file is processed independently (no shared mutable state between
// files), diagnostics are printed per file in input order, and the
// process exits non-zero if any file produced a diagnostic.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doyoubi/minimoe/internal/config"
	"github.com/doyoubi/minimoe/internal/pipeline"
	"github.com/doyoubi/minimoe/internal/report"
)

func main() {
	if len(os.Args) < 3 || os.Args[1] != "check" {
		fmt.Fprintln(os.Stderr, "usage: minimoe check <file.moe> [file.moe ...]")
		os.Exit(2)
	}
	files := os.Args[2:]
	contexts := checkFiles(files)

	color := report.IsTerminal(os.Stdout)
	anyDiagnostics := false
	for _, ctx := range contexts {
		report.Format(ctx, os.Stdout, color)
		if len(ctx.Diagnostics) > 0 {
			anyDiagnostics = true
		}
	}
	fmt.Println(report.Summary(contexts))

	if anyDiagnostics {
		os.Exit(1)
	}
}

// checkFiles runs the pipeline over each file from an independent
// goroutine and returns the resulting contexts in input order, so
// concurrent processing never reorders the CLI's output.
func checkFiles(paths []string) []*pipeline.PipelineContext {
	contexts := make([]*pipeline.PipelineContext, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			contexts[i] = checkFile(path)
		}(i, path)
	}
	wg.Wait()
	return contexts
}

func hasSourceExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range config.SourceFileExtensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func checkFile(path string) *pipeline.PipelineContext {
	if !hasSourceExtension(path) {
		fmt.Fprintf(os.Stderr, "minimoe: %s: warning: expected a %s source file\n", path, config.SourceFileExt)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		ctx := pipeline.NewPipelineContext("", path)
		ctx.Diagnostics = nil
		fmt.Fprintf(os.Stderr, "minimoe: %s: %v\n", path, err)
		return ctx
	}
	return pipeline.Run(string(data), path)
}
