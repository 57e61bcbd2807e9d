package widgets

import (
	"github.com/cgsoftware/neoui/pkg/graphics"
	"github.com/cgsoftware/neoui/pkg/neumorphic"
	"github.com/cgsoftware/neoui/pkg/theme"
)

// Panel is a sunken tray that groups other controls.
type Panel struct {
	Theme *theme.ThemeData
}

// Content returns the area left for children inside size.
func (p Panel) Content(size graphics.Size) graphics.Rect {
	pad := themeOf(p.Theme).Defaults().PanelPadding()
	r := graphics.RectFromSize(size).Inflate(-pad)
	return r.Normalize()
}

// Paint draws the panel body into size.
func (p Panel) Paint(c graphics.Canvas, size graphics.Size) {
	td := themeOf(p.Theme)
	d := td.Defaults()
	neumorphic.PaintSurface(c, neumorphic.Surface{
		Size:         size,
		CornerRadius: d.PanelRadius(),
		Elevation:    d.PanelElevation(),
		Style:        neumorphic.Sunken,
		LightColor:   td.Colors.LightShadow,
		DarkColor:    td.Colors.DarkShadow,
		FillColor:    td.Colors.Background,
	})
}
