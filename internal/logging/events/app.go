package events

import "github.com/atomicstack/navshell/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Navigate(id, label string) {
	logging.Trace("app.navigate", map[string]interface{}{"id": id, "label": label})
}

func (AppTracer) Exit(selected string, err error) {
	payload := map[string]interface{}{"selected": selected}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
