package pipeline

// Processor is one stage in a Pipeline: it consumes a PipelineContext and
// returns the (possibly mutated) context for the next stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
