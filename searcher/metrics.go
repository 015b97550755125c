package searcher

import (
	"time"
)

// SearchMetric summarizes one Search call.
type SearchMetric struct {
	Simulations    int
	Expansions     int
	TerminalLeaves int
	PriorFallbacks int
	Duration       time.Duration
}

// Collector gathers search metrics. The zero-cost dummy is the default;
// experiments swap in a real collector.
type Collector interface {
	Start()
	AddSimulation()
	AddExpansion()
	AddTerminalLeaf()
	AddPriorFallback()
	Complete() SearchMetric
}

type collector struct {
	startTime      time.Time
	simulations    int
	expansions     int
	terminalLeaves int
	priorFallbacks int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	*c = collector{startTime: time.Now()}
}

func (c *collector) AddSimulation()    { c.simulations++ }
func (c *collector) AddExpansion()     { c.expansions++ }
func (c *collector) AddTerminalLeaf()  { c.terminalLeaves++ }
func (c *collector) AddPriorFallback() { c.priorFallbacks++ }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Simulations:    c.simulations,
		Expansions:     c.expansions,
		TerminalLeaves: c.terminalLeaves,
		PriorFallbacks: c.priorFallbacks,
		Duration:       time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()                 {}
func (dummyCollector) AddSimulation()         {}
func (dummyCollector) AddExpansion()          {}
func (dummyCollector) AddTerminalLeaf()       {}
func (dummyCollector) AddPriorFallback()      {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
