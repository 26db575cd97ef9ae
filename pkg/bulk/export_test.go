package bulk

import "context"

// Process exposes the unexported process method to external tests.
func (e *Engine) Process(ctx context.Context, id string) { e.process(ctx, id) }
