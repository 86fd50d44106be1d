//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"biome-painter/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type currentMaskProvider interface {
	CurrentMasks() (warm, cold []float32)
}

type shadowMaskProvider interface {
	ShadowMasks() (windward, leeward []float32)
}

type oceanWindMaskProvider interface {
	OceanWindMask() []float32
}

type windFieldProvider interface {
	WindVectorAt(x, y float64) (float64, float64)
}

type distanceFieldProvider interface {
	DistanceField() []float32
}

type inspector interface {
	Inspect(x, y int) (label, name string)
}

type brushProvider interface {
	BrushRadius() int
}

// latitudeLines are the parallels drawn over the map, in degrees.
var latitudeLines = []float64{-60, -30, 0, 30, 60}

// Overlay draws latitude lines, the brush outline, the hover inspector and
// optional climate layer visuals on top of the map.
type Overlay struct {
	sim         core.Sim
	scale       int
	showCurrent bool
	showShadow  bool
	showWind    bool
	showDist    bool
	showOcean   bool
	maskImg     *ebiten.Image
	maskBuf     []byte

	distanceImg *ebiten.Image
	distanceBuf []byte

	hoverX, hoverY int
	hovering       bool

	pixel          *ebiten.Image
	windSamples    []windSample
	windCacheW     int
	windCacheH     int
	windCacheScale int
	windPixelSpan  float64
}

type windSample struct {
	cx float64
	cy float64
	sx float64
	sy float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layer visuals and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCurrent = !o.showCurrent
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showShadow = !o.showShadow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showWind = !o.showWind
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showDist = !o.showDist
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit5) {
		o.showOcean = !o.showOcean
	}

	size := o.sim.Size()
	scale := max(o.scale, 1)
	mx, my := ebiten.CursorPosition()
	o.hoverX, o.hoverY = mx/scale, my/scale
	o.hovering = mx >= 0 && my >= 0 && o.hoverX < size.W && o.hoverY < size.H
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := max(o.scale, 1)

	if o.showDist {
		if provider, ok := o.sim.(distanceFieldProvider); ok {
			o.drawDistance(screen, provider.DistanceField(), size, scale)
		}
	}

	total := size.W * size.H
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	if o.showCurrent {
		if provider, ok := o.sim.(currentMaskProvider); ok {
			warm, cold := provider.CurrentMasks()
			o.drawMask(screen, warm, color.RGBA{R: 255, G: 110, B: 60})
			o.drawMask(screen, cold, color.RGBA{R: 70, G: 150, B: 255})
		}
	}
	if o.showShadow {
		if provider, ok := o.sim.(shadowMaskProvider); ok {
			windward, leeward := provider.ShadowMasks()
			o.drawMask(screen, windward, color.RGBA{R: 64, G: 164, B: 223})
			o.drawMask(screen, leeward, color.RGBA{R: 230, G: 170, B: 60})
		}
	}
	if o.showOcean {
		if provider, ok := o.sim.(oceanWindMaskProvider); ok {
			o.drawMask(screen, provider.OceanWindMask(), color.RGBA{R: 120, G: 220, B: 230})
		}
	}
	if o.showWind {
		if provider, ok := o.sim.(windFieldProvider); ok {
			o.drawWindField(screen, provider, size, scale)
		}
	}

	o.drawLatitudeLines(screen, size, scale)
	if o.hovering {
		o.drawBrushPreview(screen, scale)
		o.drawInspector(screen, size, scale)
	}
}

func (o *Overlay) drawLatitudeLines(screen *ebiten.Image, size core.Size, scale int) {
	face := basicfont.Face7x13
	width := float64(size.W * scale)
	for _, lat := range latitudeLines {
		row := size.RowForLatitude(lat)
		y := (float64(row) + 0.5) * float64(scale)
		o.drawLine(screen, 0, y, width, y, 1, color.RGBA{R: 46, G: 46, B: 46, A: 46})
		text.Draw(screen, fmt.Sprintf("%d°", int(lat)), face, 6, int(y)-3, color.RGBA{R: 191, G: 191, B: 191, A: 191})
	}
}

func (o *Overlay) drawBrushPreview(screen *ebiten.Image, scale int) {
	provider, ok := o.sim.(brushProvider)
	if !ok {
		return
	}
	const segments = 48
	r := float64(provider.BrushRadius()*scale) + 0.5
	cx := (float64(o.hoverX) + 0.5) * float64(scale)
	cy := (float64(o.hoverY) + 0.5) * float64(scale)
	col := color.RGBA{R: 128, G: 128, B: 128, A: 128}
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		o.drawLine(screen, cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), 1, col)
	}
}

func (o *Overlay) drawInspector(screen *ebiten.Image, size core.Size, scale int) {
	provider, ok := o.sim.(inspector)
	if !ok {
		return
	}
	label, name := provider.Inspect(o.hoverX, o.hoverY)
	lat := size.Latitude(o.hoverY)
	line := fmt.Sprintf("%s: %s  (%.1f°)", label, name, lat)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	x := o.hoverX*scale + 14
	y := o.hoverY*scale + 24
	if x+bounds.Dx()+8 > size.W*scale {
		x = o.hoverX*scale - bounds.Dx() - 14
	}
	if y+4 > size.H*scale {
		y = o.hoverY*scale - 10
	}
	bg := image.Rect(x-4, y-bounds.Dy()-2, x+bounds.Dx()+4, y+4)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bg.Dx()), float64(bg.Dy()))
	op.GeoM.Translate(float64(bg.Min.X), float64(bg.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 10, G: 12, B: 16, A: 220})
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, line, face, x, y, color.RGBA{R: 230, G: 230, B: 235, A: 255})
}

func (o *Overlay) drawWindField(screen *ebiten.Image, provider windFieldProvider, size core.Size, scale int) {
	if o.pixel == nil {
		return
	}
	if !o.ensureWindSamples(size, scale) {
		return
	}

	const (
		calmThreshold    = 0.05
		maxSpeedEstimate = 1.1
		headAngle        = math.Pi / 6
		calmDotScale     = 0.18
		minThickness     = 0.65
		maxThickness     = 1.05
	)

	baseSpan := o.windPixelSpan
	if baseSpan <= 0 {
		baseSpan = float64(scale) * 4
	}
	minLength := baseSpan * 0.35
	maxLength := baseSpan * 0.7
	if maxLength < minLength {
		maxLength = minLength
	}

	calmDotSize := baseSpan * calmDotScale
	if calmDotSize < float64(scale)*0.75 {
		calmDotSize = float64(scale) * 0.75
	}

	for _, sample := range o.windSamples {
		vx, vy := provider.WindVectorAt(sample.cx, sample.cy)
		speed := math.Hypot(vx, vy)
		if speed < calmThreshold {
			o.drawPoint(screen, sample.sx, sample.sy, calmDotSize, color.RGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}

		nx := vx / speed
		ny := vy / speed
		normalized := clamp01(speed / maxSpeedEstimate)
		length := minLength + (maxLength-minLength)*math.Sqrt(normalized)
		headLength := math.Min(length*0.3, float64(scale)*4.5)
		tailLength := length * 0.4
		tipX := sample.sx + nx*(length-tailLength)
		tipY := sample.sy + ny*(length-tailLength)
		tailX := sample.sx - nx*tailLength
		tailY := sample.sy - ny*tailLength
		bodyEndX := tipX - nx*headLength
		bodyEndY := tipY - ny*headLength

		thickness := float64(scale) * (minThickness + (maxThickness-minThickness)*normalized)
		if thickness < 1 {
			thickness = 1
		}

		col := interpolateColor(normalized)
		o.drawLine(screen, tailX, tailY, bodyEndX, bodyEndY, thickness, col)

		angle := math.Atan2(ny, nx)
		leftX := tipX - math.Cos(angle+headAngle)*headLength
		leftY := tipY - math.Sin(angle+headAngle)*headLength
		rightX := tipX - math.Cos(angle-headAngle)*headLength
		rightY := tipY - math.Sin(angle-headAngle)*headLength
		o.drawLine(screen, tipX, tipY, leftX, leftY, thickness*0.85, col)
		o.drawLine(screen, tipX, tipY, rightX, rightY, thickness*0.85, col)
	}
}

func (o *Overlay) ensureWindSamples(size core.Size, scale int) bool {
	if size.W <= 0 || size.H <= 0 {
		return false
	}
	if scale <= 0 {
		scale = 1
	}
	if o.windCacheW == size.W && o.windCacheH == size.H && o.windCacheScale == scale && len(o.windSamples) > 0 {
		return true
	}

	const (
		targetSamples = 360.0
		minSpacing    = 6
		maxSpacing    = 20
	)

	area := float64(size.W * size.H)
	spacing := int(math.Sqrt(area / targetSamples))
	if spacing < minSpacing {
		spacing = minSpacing
	}
	if spacing > maxSpacing {
		spacing = maxSpacing
	}
	if spacing <= 0 {
		spacing = minSpacing
	}

	countX := (size.W + spacing - 1) / spacing
	if countX <= 0 {
		countX = 1
	}
	countY := (size.H + spacing - 1) / spacing
	if countY <= 0 {
		countY = 1
	}

	totalSpanX := (countX - 1) * spacing
	totalSpanY := (countY - 1) * spacing
	startX := 0
	startY := 0
	if size.W > 0 {
		startX = (size.W - 1 - totalSpanX) / 2
		if startX < 0 {
			startX = 0
		}
	}
	if size.H > 0 {
		startY = (size.H - 1 - totalSpanY) / 2
		if startY < 0 {
			startY = 0
		}
	}

	o.windSamples = o.windSamples[:0]
	for yi := 0; yi < countY; yi++ {
		cellY := startY + yi*spacing
		if cellY >= size.H {
			cellY = size.H - 1
		}
		cy := float64(cellY) + 0.5
		for xi := 0; xi < countX; xi++ {
			cellX := startX + xi*spacing
			if cellX >= size.W {
				cellX = size.W - 1
			}
			cx := float64(cellX) + 0.5
			sx := cx * float64(scale)
			sy := cy * float64(scale)
			o.windSamples = append(o.windSamples, windSample{cx: cx, cy: cy, sx: sx, sy: sy})
		}
	}

	o.windCacheW = size.W
	o.windCacheH = size.H
	o.windCacheScale = scale
	o.windPixelSpan = float64(spacing) * float64(scale)
	return len(o.windSamples) > 0
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if len(mask) != total || len(o.maskBuf) != 4*total {
		return
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i := 0; i < total; i++ {
		base := i * 4
		intensity := float64(mask[i])
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawDistance(screen *ebiten.Image, field []float32, size core.Size, scale int) {
	total := size.W * size.H
	if len(field) != total || total == 0 {
		return
	}
	if o.distanceImg == nil || o.distanceImg.Bounds().Dx() != size.W || o.distanceImg.Bounds().Dy() != size.H {
		o.distanceImg = ebiten.NewImage(size.W, size.H)
		o.distanceBuf = make([]byte, 4*total)
	}

	for i, v := range field {
		base := i * 4
		if v <= 0 {
			o.distanceBuf[base+0] = 0
			o.distanceBuf[base+1] = 0
			o.distanceBuf[base+2] = 0
			o.distanceBuf[base+3] = 0
			continue
		}
		col := distanceColor(float64(v))
		o.distanceBuf[base+0] = col.R
		o.distanceBuf[base+1] = col.G
		o.distanceBuf[base+2] = col.B
		o.distanceBuf[base+3] = col.A
	}

	o.distanceImg.WritePixels(o.distanceBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.distanceImg, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// distanceColor ramps from coastal blue to deep-interior sand.
func distanceColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
