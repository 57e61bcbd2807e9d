// Package widgets provides the neumorphic controls of the kit.
//
// Widgets are plain values. Each one paints itself onto a
// [graphics.Canvas] for a given size and maps pointer input to its value;
// the host owns layout, hit testing and the frame loop.
//
// # Painting
//
// Raised and sunken bodies come from [neumorphic.PaintSurface]. Widgets
// that carry an LED border take the current [led.State] from a driver the
// host advances every frame:
//
//	drv := arena.Mount("play", led.DefaultTiming())
//	b := widgets.Button{State: uistate.Active}
//	b.Binding().Apply(drv, theme.LedBreath, theme.LedSweep, theme.LedPulse)
//	b.LED = drv.Update(dt)
//	b.Paint(canvas, size)
//
// # Input
//
// Values are normalized to [0, 1]. Disabled widgets ignore input and
// report false from their input methods.
package widgets
