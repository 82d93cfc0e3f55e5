package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/techwell/techwell/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// telemetry log, including an estimated USD cost.
type LoggingProvider struct {
	inner Provider
	logs  store.LLMLogRepo
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logs store.LLMLogRepo) Provider {
	return &LoggingProvider{inner: p, logs: logs}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		if cost := LookupCost(resp.Model); cost != nil {
			data.CostUSD = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Telemetry must never fail the request.
	if logErr := l.logs.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
