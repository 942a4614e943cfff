package common

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Размеры картинки дашборда
const (
	dashboardWidth  = 640
	dashboardHeight = 360
	ringRadius      = 120.0
	ringWidth       = 36.0
	legendX         = 340.0
	legendTop       = 90.0
	legendStep      = 34.0
	legendMarker    = 14.0
)

// Цветовая схема дашборда
var (
	dashboardBgColor = color.RGBA{245, 246, 248, 255}
	occupiedColor    = color.RGBA{255, 120, 100, 255}
	freeColor        = color.RGBA{133, 193, 85, 255}
	serviceColor     = color.RGBA{158, 158, 158, 255}
	dashboardText    = color.RGBA{60, 64, 70, 255}
)

// ringSegment доля кольца
type ringSegment struct {
	label string
	value float64
	color color.Color
}

// GenerateOccupancyImage рисует кольцевую диаграмму загрузки номеров.
// Встроенный шрифт поддерживает только латиницу, подписи на русском идут в caption.
func GenerateOccupancyImage(metrics model.Metrics) ([]byte, error) {
	dc := gg.NewContext(dashboardWidth, dashboardHeight)
	dc.SetColor(dashboardBgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	segments := occupancySegments(metrics)
	cx, cy := 170.0, float64(dashboardHeight)/2

	drawRing(dc, cx, cy, segments)

	dc.SetColor(dashboardText)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", clampPercent(metrics.Occupancy)), cx, cy-8, 0.5, 0.5)
	dc.DrawStringAnchored("occupancy", cx, cy+10, 0.5, 0.5)

	drawLegend(dc, segments, metrics)

	return encodePNG(dc)
}

// occupancySegments делит кольцо на занятые, свободные и закрытые на обслуживание номера.
// Загрузка приходит в процентах, поэтому занятые считаются от неё, а не от количества.
func occupancySegments(metrics model.Metrics) []ringSegment {
	occupied := clampPercent(metrics.Occupancy)
	rest := 100 - occupied

	free := float64(metrics.FreeRooms)
	service := float64(metrics.RoomsUnderMaintenance)
	freeShare, serviceShare := rest, 0.0
	if total := free + service; total > 0 {
		freeShare = rest * free / total
		serviceShare = rest * service / total
	}

	return []ringSegment{
		{label: "occupied", value: occupied, color: occupiedColor},
		{label: "free", value: freeShare, color: freeColor},
		{label: "maintenance", value: serviceShare, color: serviceColor},
	}
}

func clampPercent(value float64) float64 {
	switch {
	case math.IsNaN(value) || value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return value
	}
}

// drawRing рисует сегменты по часовой стрелке начиная сверху
func drawRing(dc *gg.Context, cx, cy float64, segments []ringSegment) {
	dc.SetLineWidth(ringWidth)
	dc.SetLineCapButt()

	angle := -math.Pi / 2
	for _, seg := range segments {
		if seg.value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * seg.value / 100
		dc.NewSubPath()
		dc.DrawArc(cx, cy, ringRadius, angle, angle+sweep)
		dc.SetColor(seg.color)
		dc.Stroke()
		angle += sweep
	}
}

// drawLegend рисует легенду и ключевые показатели справа от кольца
func drawLegend(dc *gg.Context, segments []ringSegment, metrics model.Metrics) {
	y := legendTop
	for _, seg := range segments {
		dc.SetColor(seg.color)
		dc.DrawRectangle(legendX, y-legendMarker/2, legendMarker, legendMarker)
		dc.Fill()

		dc.SetColor(dashboardText)
		dc.DrawStringAnchored(fmt.Sprintf("%s  %.1f%%", seg.label, seg.value), legendX+legendMarker+10, y, 0, 0.35)
		y += legendStep
	}

	y += legendStep / 2
	lines := []string{
		fmt.Sprintf("free rooms: %d", metrics.FreeRooms),
		fmt.Sprintf("maintenance: %d", metrics.RoomsUnderMaintenance),
		fmt.Sprintf("current bookings: %d", metrics.CurrentBookings),
	}
	for _, line := range lines {
		dc.DrawStringAnchored(line, legendX, y, 0, 0.35)
		y += legendStep * 0.7
	}
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
