package ui

import (
	"image"
	"math"
	"strconv"

	"mad-sand/internal/core"
)

// ParameterSource is what the HUD reads and adjusts.
type ParameterSource interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []hudControlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

func refreshControlValues(states []hudControlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok || state.control.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

// adjustTarget returns the value one step in direction, and false when the
// control's bounds forbid the move.
func adjustTarget(state *hudControlState, direction int) (int, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin && target < int(math.Round(state.control.Min)) {
		return 0, false
	}
	if state.control.HasMax && target > int(math.Round(state.control.Max)) {
		return 0, false
	}
	return target, true
}

func applyAdjustment(setter core.IntParameterSetter, state *hudControlState, direction int) bool {
	target, ok := adjustTarget(state, direction)
	if !ok || setter == nil {
		return false
	}
	if !setter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

// hitControl finds the button under (x, y) in panel coordinates.
func hitControl(states []hudControlState, x, y int) (int, int) {
	for i := range states {
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1
		}
	}
	return -1, 0
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// statusLines lists the read-only parameters shown under the controls.
func statusLines(snap core.ParameterSnapshot, controls []hudControlState) []string {
	skip := make(map[string]bool, len(controls))
	for _, c := range controls {
		skip[c.control.Key] = true
	}
	var lines []string
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
