//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"biome-painter/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel and legend to the right of the map.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	boolSetter   core.BoolParameterSetter
	legend       core.LegendProvider
	chips        []legendChip
	headings     []legendHeading
	panelOffsetX int
	title        string
	status       string

	pixel *ebiten.Image
}

type legendChip struct {
	entry core.LegendEntry
	rect  image.Rectangle
}

type legendHeading struct {
	title string
	y     int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	if provider, ok := sim.(core.LegendProvider); ok {
		h.legend = provider
	}
	h.layout()
	return h
}

// Height reports the panel height needed to show every control and the
// legend.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	bottom := controlsTop + len(h.controls)*lineHeight
	for _, c := range h.chips {
		bottom = max(bottom, c.rect.Max.Y)
	}
	return bottom + panelPadding + statusHeight
}

// SetStatus replaces the status line drawn at the bottom of the panel.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the cached parameter snapshot from the simulation and
// handles HUD clicks. It reports whether the click was consumed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
	} else {
		h.snapshot = provider.Parameters()
		h.refreshControlValues()
	}
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the map view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawLegend()
	if h.status != "" {
		text.Draw(h.panel, h.status, basicfont.Face7x13, panelPadding, height-panelPadding, color.RGBA{R: 170, G: 190, B: 210, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if state.control.Type == core.ParamTypeBool {
			if pointInRect(px, my, state.toggleRect()) {
				h.applyToggle(state)
				return true
			}
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return true
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return true
		}
	}
	if h.legend != nil {
		for _, c := range h.chips {
			if pointInRect(px, my, c.rect) {
				h.legend.ToggleFocus(c.entry.Name)
				return true
			}
		}
	}
	return true
}

func (h *HUD) applyToggle(state *hudControlState) {
	if h.boolSetter == nil {
		return
	}
	target := !state.boolValue
	if h.boolSetter.SetBoolParameter(state.control.Key, target) {
		state.boolValue = target
		state.value = onOff(target)
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if state == nil || direction == 0 || h.intSetter == nil {
		return
	}
	target, ok := h.adjustTarget(state, direction)
	if !ok || target == state.intValue {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

// adjustTarget steps an int control, clamping to its bounds. It reports false
// when the control is already pinned at the bound in that direction.
func (h *HUD) adjustTarget(state *hudControlState, direction int) (int, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin && target < state.control.Min {
		if state.intValue <= state.control.Min {
			return state.intValue, false
		}
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		if state.intValue >= state.control.Max {
			return state.intValue, false
		}
		target = state.control.Max
	}
	return target, true
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		if state.control.Type == core.ParamTypeBool {
			h.drawButton(state.toggleRect(), state.value, state.hasValue && h.boolSetter != nil)
			continue
		}

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) drawLegend() {
	if h.legend == nil || len(h.chips) == 0 {
		return
	}
	face := basicfont.Face7x13
	for _, hd := range h.headings {
		text.Draw(h.panel, hd.title, face, panelPadding, hd.y, color.RGBA{R: 150, G: 160, B: 175, A: 255})
	}
	focus := h.legend.Focus()
	for _, c := range h.chips {
		swatch := image.Rect(c.rect.Min.X, c.rect.Min.Y+2, c.rect.Min.X+swatchSize, c.rect.Min.Y+2+swatchSize)
		h.fillRect(h.panel, swatch, c.entry.Color)
		fg := color.RGBA{R: 210, G: 210, B: 220, A: 255}
		switch {
		case focus == c.entry.Name:
			fg = color.RGBA{R: 255, G: 235, B: 140, A: 255}
		case focus != "":
			fg = color.RGBA{R: 110, G: 110, B: 120, A: 255}
		}
		text.Draw(h.panel, c.entry.Name, face, swatch.Max.X+4, c.rect.Min.Y+legendBaseline, fg)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || h.intSetter == nil {
		return false
	}
	_, ok := h.adjustTarget(state, direction)
	return ok
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(h.panel, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
	if h.legend == nil {
		return
	}

	// Legend entries flow in two columns under each group heading.
	colWidth := (h.width - 2*panelPadding) / 2
	y := controlsTop + len(h.controls)*lineHeight + legendGap
	for _, group := range h.legend.Legend() {
		h.headings = append(h.headings, legendHeading{title: group.Title, y: y + legendBaseline})
		y += legendRow
		for i, entry := range group.Entries {
			col := i % 2
			if col == 0 && i > 0 {
				y += legendRow
			}
			x := panelPadding + col*colWidth
			h.chips = append(h.chips, legendChip{
				entry: entry,
				rect:  image.Rect(x, y, x+colWidth, y+legendRow),
			})
		}
		y += legendRow
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue  int
	boolValue bool
	hasValue  bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func (s *hudControlState) toggleRect() image.Rectangle {
	return image.Rect(s.minusRect.Min.X, s.minusRect.Min.Y, s.plusRect.Max.X, s.plusRect.Max.Y)
}

const (
	panelPadding   = 12
	lineHeight     = 28
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 18
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 10

	legendGap      = 8
	legendRow      = 16
	legendBaseline = 12
	swatchSize     = 11
	statusHeight   = 16
)
