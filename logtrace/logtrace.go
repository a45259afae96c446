// Package logtrace connects the parse engine's trace hook to commonlog.
package logtrace

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parc/parse"
)

// New returns an observer that logs every trace event at debug level on
// the named commonlog logger. The caller is responsible for configuring
// a commonlog backend; without one the events go nowhere.
func New(name string) parse.Observer {
	return &observer{log: commonlog.GetLogger(name)}
}

type observer struct {
	log commonlog.Logger
}

func (o *observer) Observe(e parse.TraceEvent) {
	if e.Outcome == parse.Success {
		o.log.Debugf("%s: matched %q, rest %q", e.Label, e.Input[:len(e.Input)-len(e.Rest)], e.Rest)
		return
	}
	o.log.Debugf("%s: %s at %q", e.Label, e.Err, e.Input)
}
