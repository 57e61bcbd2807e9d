package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cgsoftware/neoui/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Float returns a numeric parameter, or NaN when it is absent.
func (d DisplayOp) Float(key string) float64 {
	if v, ok := d.Params[key].(float64); ok {
		return v
	}
	return math.NaN()
}

// Str returns a string parameter, or "" when it is absent.
func (d DisplayOp) Str(key string) string {
	s, _ := d.Params[key].(string)
	return s
}

// Alpha returns the alpha of the op's color parameter in [0, 1],
// rounded to two decimals.
func (d DisplayOp) Alpha() float64 {
	var c uint32
	if _, err := fmt.Sscanf(d.Str("color"), "0x%08X", &c); err != nil {
		return math.NaN()
	}
	return round2(float64(c>>24) / 255)
}

// Describe formats the op on one line with parameters in key order,
// for test failure messages.
func (d DisplayOp) Describe() string {
	var sb strings.Builder
	sb.WriteString(d.Op)
	for _, k := range sortedKeys(d.Params) {
		fmt.Fprintf(&sb, " %s=%v", k, d.Params[k])
	}
	return sb.String()
}

// Record paints with fn onto a recording canvas of the given size and
// returns the serialized operations.
func Record(size graphics.Size, fn func(graphics.Canvas)) []DisplayOp {
	var recorder graphics.PictureRecorder
	fn(recorder.BeginRecording(size))
	return serializeDisplayList(recorder.EndRecording())
}

// Filter returns the ops named op, in recording order.
func Filter(ops []DisplayOp, op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingCanvas) Rotate(radians float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotate",
		Params: sortedMap("radians", round2(radians)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) ClipRRect(rrect graphics.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: sortedMap("rect", serializeRect(rrect.Rect), "radius", round2(rrect.Radius.X)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(sortedMap("rect", serializeRect(rect)), paint),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: withPaint(sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", round2(rrect.Radius.X),
		), paint),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		), paint),
	})
}

func (c *serializingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: withPaint(sortedMap(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
		), paint),
	})
}

func (c *serializingCanvas) DrawArc(center graphics.Offset, radius, startAngle, sweepAngle float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawArc",
		Params: withPaint(sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"start", round2(startAngle),
			"sweep", round2(sweepAngle),
		), paint),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := sortedMap("commands", len(path.Commands))
	if contours := path.Flatten(1); len(contours) > 0 {
		var bounds graphics.Rect
		for i, ct := range contours {
			for j, p := range ct.Points {
				pr := graphics.Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}
				if i == 0 && j == 0 {
					bounds = pr
				} else {
					bounds = bounds.Union(pr)
				}
			}
		}
		params["bounds"] = serializeRect(bounds)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: withPaint(params, paint)})
}

func (c *serializingCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRectShadow",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", round2(rrect.Radius.X),
			"color", serializeColor(shadow.Color),
			"dx", round2(shadow.Offset.X),
			"dy", round2(shadow.Offset.Y),
			"blur", round2(shadow.BlurRadius),
			"style", shadow.BlurStyle.String(),
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func withPaint(params map[string]any, p graphics.Paint) map[string]any {
	params["color"] = serializeColor(p.Color)
	params["style"] = p.Style.String()
	if p.Style == graphics.PaintStyleStroke {
		params["strokeWidth"] = round2(p.StrokeWidth)
		params["cap"] = p.StrokeCap.String()
	}
	if p.Dash != nil {
		intervals := make([]float64, len(p.Dash.Intervals))
		for i, v := range p.Dash.Intervals {
			intervals[i] = round2(v)
		}
		params["dash"] = intervals
		params["phase"] = round2(p.Dash.Phase)
	}
	if p.Gradient != nil {
		params["gradient"] = p.Gradient.Type.String()
	}
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// JSON marshaling emits map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
