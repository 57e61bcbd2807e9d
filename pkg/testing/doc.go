// Package testing provides deterministic test helpers for neoui painters
// and animations.
//
// # Recording
//
// Record runs a painter against a recording canvas and returns every
// canvas call as a [DisplayOp] with rounded, comparable parameters:
//
//	ops := neotest.Record(size, func(c graphics.Canvas) {
//	    led.Render(c, overlay)
//	})
//	strokes := neotest.Filter(ops, "drawPath")
//
// # Snapshot Testing
//
// Compare a recording against a golden JSON file:
//
//	neotest.Capture(size, paint).MatchesFile(t, "testdata/button.snapshot.json")
//
// Update golden files with:
//
//	NEOUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Install a FakeClock so frame deltas are exact:
//
//	clk := neotest.InstallFakeClock(t)
//	clk.Advance(16 * time.Millisecond)
//	scheduler.Frame()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import neotest "github.com/cgsoftware/neoui/pkg/testing"
package testing
