package events

import "github.com/atomicstack/navshell/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Query(query string, matches int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Filter(active string, results int) {
	logging.Trace("search.filter", map[string]interface{}{"filter": active, "results": results})
}

func (SearchTracer) Reset() {
	logging.Trace("search.reset", nil)
}
