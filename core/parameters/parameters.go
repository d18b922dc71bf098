// Package parameters holds the typesetting registers of the layout engine.
//
// Registers carry the page-global quantities of a grid layout: cell size,
// banxin (gutter column) geometry, body font size, rule thickness. They
// support grouped scoping: values pushed inside a group are popped when the
// group ends, like register assignments in a TeX group.
package parameters

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/fukeben/guji/core/dimen"
)

type TypesettingParameter int

//go:generate stringer -type=TypesettingParameter
const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_SCRIPT
	P_TEXTDIRECTION
	P_GRIDWIDTH
	P_GRIDHEIGHT
	P_BANXINWIDTH
	P_BANXININTERVAL
	P_BODYFONTSIZE
	P_RULETHICKNESS
	P_STOPPER
)

type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "zh_TW"               // a string
	p[P_SCRIPT] = "Hant"                  // a string
	p[P_TEXTDIRECTION] = bidi.RightToLeft // column progression
	p[P_GRIDWIDTH] = 21 * dimen.PT        // width of an ordinary column
	p[P_GRIDHEIGHT] = 21 * dimen.PT       // height of a cell
	p[P_BANXINWIDTH] = dimen.Zero         // 0 = no gutter column
	p[P_BANXININTERVAL] = 0               // ordinary columns between gutters (int)
	p[P_BODYFONTSIZE] = 18 * dimen.PT     // reference size for right-alignment
	p[P_RULETHICKNESS] = dimen.PT / 2     // thickness of column rules
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= 0 || key == P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.DU {
	return regs.Get(key).(dimen.DU)
}
