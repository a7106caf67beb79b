package drc

import "github.com/Jimyzzp/LibrePCB/pkg/drcmsg"

// Reporter receives progress and result notifications during a run,
// replacing the dynamic connect/signal dispatch described in §9 with a
// small capability interface (§4.I, §4.M).
type Reporter interface {
	Started()
	Status(text string)
	Progress(percent int)
	Finished(cancelled bool)
	Message(m drcmsg.Message)
}

// NopReporter discards every notification. Embed it, or use it
// directly, when a caller only wants the returned RunOutcome.
type NopReporter struct{}

func (NopReporter) Started()                  {}
func (NopReporter) Status(string)              {}
func (NopReporter) Progress(int)               {}
func (NopReporter) Finished(bool)              {}
func (NopReporter) Message(drcmsg.Message)     {}

// RunOutcome is everything a run produces, independent of what the
// Reporter was also told along the way.
type RunOutcome struct {
	Messages  []drcmsg.Message
	Cancelled bool
	StatusLog []string
}
