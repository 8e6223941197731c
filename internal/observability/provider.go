package observability

import (
	"time"

	"lastomo-app/internal/llm"
)

// InstrumentedProvider wraps a completion provider and records call latency
// and failures.
type InstrumentedProvider struct {
	next    llm.Provider
	metrics *Metrics
}

var _ llm.Provider = (*InstrumentedProvider)(nil)

func NewInstrumentedProvider(next llm.Provider, metrics *Metrics) *InstrumentedProvider {
	return &InstrumentedProvider{next: next, metrics: metrics}
}

func (p *InstrumentedProvider) Complete(messages []llm.Message) (string, error) {
	start := time.Now()
	response, err := p.next.Complete(messages)
	p.metrics.ObserveProviderLatency(time.Since(start))
	if err != nil {
		p.metrics.ProviderErrors.Inc()
	}
	return response, err
}
