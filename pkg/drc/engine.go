// Package drc is the design rule check engine (§4.G): it orchestrates
// every check against a board.Model under a drcsettings.Settings, in a
// fixed order, emitting progress and drcmsg.Message records through a
// Reporter.
package drc

import (
	"context"
	"log"

	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/drcsettings"
	"github.com/Jimyzzp/LibrePCB/pkg/geom"
)

// MaxArcTolerance bounds the chord error when arcs are flattened into
// line segments for every check in this package. Kept as a compile-
// time constant rather than a per-run parameter, matching the
// reference implementation's unqualified maxArcTolerance() calls (§9
// Open Questions).
const MaxArcTolerance = geom.DefaultArcTolerance

// run holds the mutable state threaded through a single Run call. It
// is never shared outside the owner goroutine except across the
// worker-pool barrier inside a pairwise check phase (§5).
type run struct {
	ctx      context.Context
	model    *board.Model
	settings drcsettings.Settings
	quick    bool
	reporter Reporter
	logger   *log.Logger

	gen   *board.PathGenerator
	cache *copperCache

	messages  []drcmsg.Message
	statusLog []string
	progress  int
}

func (r *run) emit(m drcmsg.Message) {
	r.messages = append(r.messages, m)
	r.reporter.Message(m)
}

func (r *run) status(text string) {
	r.statusLog = append(r.statusLog, text)
	r.reporter.Status(text)
}

func (r *run) setProgress(percent int) {
	if percent > r.progress {
		r.progress = percent
	}
	r.reporter.Progress(r.progress)
}

func (r *run) cancelled() bool {
	return r.ctx.Err() != nil
}

func (r *run) logSkip(format string, args ...any) {
	r.logger.Printf("drc: skipping degenerate feature: "+format, args...)
}

// Option configures a Run call beyond its required arguments.
type Option func(*run)

// WithLogger overrides the *log.Logger used for skipped-feature
// diagnostics (§4.M). The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(r *run) { r.logger = l }
}

type checkStep struct {
	name       string
	checkpoint int
	quickSafe  bool
	fn         func(*run)
}

// checklist is the fixed execution order from §4.G, with the fixed
// checkpoint percentages from §4.I. Method names mirror the reference
// implementation's checkXxx methods one-to-one; here each is a
// package-level function taking *run, since Go has no private-method
// equivalent worth inventing for a single-use receiver.
var checklist = []checkStep{
	{"Checking copper widths...", 2, true, checkMinimumCopperWidth},
	{"Checking copper clearances...", 12, true, checkCopperCopperClearance},
	{"Checking board clearances...", 14, true, checkCopperBoardClearance},
	{"Checking copper/hole clearances...", 24, true, checkCopperHoleClearance},
	{"Checking drill/drill clearances...", 34, false, checkDrillDrillClearance},
	{"Checking drill/board clearances...", 44, false, checkDrillBoardClearance},
	{"Checking minimum annular rings...", 49, false, checkMinimumPthAnnularRing},
	{"Checking minimum drill diameters...", 54, false, checkMinimumDrillDiameters},
	{"Checking minimum slot widths...", 64, false, checkMinimumSlotWidths},
	{"Checking allowed slots...", 66, false, checkAllowedSlots},
	{"Checking pad connections...", 68, false, checkInvalidPadConnections},
	{"Checking courtyard clearances...", 70, false, checkCourtyardClearances},
	{"Checking board outline...", 72, false, checkBoardOutline},
	{"Checking for unplaced components...", 74, false, checkUnplacedComponents},
	{"Checking default devices...", 76, false, checkCircuitDefaultDevices},
	{"Checking for missing connections...", 78, false, checkMissingConnections},
	{"Checking for stale objects...", 88, false, checkStaleObjects},
}

// Run executes the full check suite (or, when quick is true, only the
// quick-safe prefix) against model under settings, reporting progress
// and messages through reporter. Cancellation is observed between
// checks via ctx, mirroring pkg/reveng.DiscoverNetlist's signature and
// cancellation pattern in the teacher.
func Run(ctx context.Context, model *board.Model, settings drcsettings.Settings,
	quick bool, reporter Reporter, opts ...Option) (outcome *RunOutcome, err error) {

	if reporter == nil {
		reporter = NopReporter{}
	}
	r := &run{
		ctx:      ctx,
		model:    model,
		settings: settings,
		quick:    quick,
		reporter: reporter,
		logger:   log.Default(),
		gen:      board.NewPathGenerator(model),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = newCopperCache(r.gen)

	// Single top-level recover boundary (§4.G, §9): the idiomatic Go
	// analogue of the reference implementation's C++ try/catch, since
	// the polygon package panics on an exhausted/degenerate Clipper
	// input rather than returning an error.
	defer func() {
		if p := recover(); p != nil {
			outcome = &RunOutcome{Messages: r.messages, StatusLog: r.statusLog}
			err = newRuntimeError("recovered panic: %v", p)
		}
	}()

	if model == nil {
		return nil, newLogicError("model is nil")
	}

	r.reporter.Started()

	if !quick {
		if rebuildErr := model.RebuildPlanes(); rebuildErr != nil {
			r.reporter.Finished(false)
			return &RunOutcome{Messages: r.messages, StatusLog: r.statusLog},
				newRuntimeError("rebuild planes: %v", rebuildErr)
		}
	}

	for _, step := range checklist {
		if !step.quickSafe && quick {
			continue
		}
		if r.cancelled() {
			r.reporter.Finished(true)
			return &RunOutcome{Messages: r.messages, Cancelled: true, StatusLog: r.statusLog}, nil
		}
		r.status(step.name)
		step.fn(r)
		r.setProgress(step.checkpoint)
	}

	// The 17 checks above consume the first 17 checkpoints in §4.I's
	// fixed list exactly, one each, in order. The remaining checkpoints
	// (91, 92, 93, 95, 97, 100) cover report finalization — sorting is
	// not performed here (approval resolution, §4.H, does that on its
	// own copy) but the steps still advance progress without adding to
	// StatusLog, preserving "exactly one status entry per check that
	// ran" (§8.8).
	for _, cp := range []int{91, 92, 93, 95, 97, 100} {
		r.setProgress(cp)
	}
	r.reporter.Finished(false)
	return &RunOutcome{Messages: r.messages, StatusLog: r.statusLog}, nil
}
