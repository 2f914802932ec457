package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for physical lengths.
// Layout works in PDF points; the CLI accepts board sizes in any supported unit.

// Unit represents the unit of a length value as given on the command line.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers, read as inches for board sizes
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt, in and mm.
const (
	PtPerInch = 72.0
	MmPerInch = 25.4
	PtToMm    = MmPerInch / PtPerInch
	MmToPt    = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// To converts this length to the target unit. UnitNone is read as inches on both sides.
func (l Length) To(target Unit) float64 {
	var pt float64
	switch l.Unit {
	case UnitMM:
		pt = l.Value * MmToPt
	case UnitCM:
		pt = l.Value * 10 * MmToPt
	case UnitPT:
		pt = l.Value
	default:
		pt = l.Value * PtPerInch
	}
	switch target {
	case UnitMM:
		return pt * PtToMm
	case UnitCM:
		return pt * PtToMm / 10
	case UnitPT:
		return pt
	default:
		return pt / PtPerInch
	}
}

func (l Length) ToPT() float64 { return l.To(UnitPT) }
func (l Length) ToIN() float64 { return l.To(UnitIN) }

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + UnitToString(l.Unit)
}

// ParseLength parses strings such as "4.75", "4.75in", "120mm", "12cm" or "342pt".
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("长度为空")
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("无法解析长度 %q: %w", value, err)
	}
	return Length{Value: f, Unit: unit}, nil
}
