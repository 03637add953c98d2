package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// SpecRow is one labelled attribute line shown for a component
type SpecRow struct {
	Label string
	Value string
	Unit  string
}

// Display returns the value with its unit, e.g. "65 W"
func (r SpecRow) Display() string {
	if r.Unit == "" {
		return r.Value
	}
	return r.Value + " " + r.Unit
}

type rowKind int

const (
	rowText rowKind = iota
	rowNumber
	rowList
)

type rowDef struct {
	label string
	key   string
	unit  string
	kind  rowKind
}

var specDefs = map[ComponentType][]rowDef{
	TypeCPU: {
		{label: "Socket", key: AttrSocket},
		{label: "TDP", key: AttrTDP, unit: "W", kind: rowNumber},
	},
	TypeMotherboard: {
		{label: "Socket", key: AttrSocket},
		{label: "RAM", key: AttrRAMType},
		{label: "Max RAM Speed", key: AttrRAMSpeed, unit: "MT/s", kind: rowNumber},
		{label: "Form Factor", key: AttrFormFactor},
	},
	TypeRAM: {
		{label: "Type", key: AttrRAMType},
		{label: "Speed", key: AttrRAMSpeed, unit: "MT/s", kind: rowNumber},
	},
	TypeGPU: {
		{label: "TDP", key: AttrTDP, unit: "W", kind: rowNumber},
		{label: "Length", key: AttrGPULengthMM, unit: "mm", kind: rowNumber},
	},
	TypeStorage: {
		{label: "Interface(s)", key: AttrStorageInterfaces, kind: rowList},
	},
	TypePSU: {
		{label: "Wattage", key: AttrPSUWattage, unit: "W", kind: rowNumber},
		{label: "Type", key: AttrPSUType},
	},
	TypeCase: {
		{label: "Form Factor", key: AttrFormFactor},
		{label: "Max GPU", key: AttrCaseGPUMaxLengthMM, unit: "mm", kind: rowNumber},
		{label: "Max Cooler", key: AttrCaseCoolerMaxMM, unit: "mm", kind: rowNumber},
	},
	TypeCooler: {
		{label: "Height", key: AttrCoolerHeightMM, unit: "mm", kind: rowNumber},
		{label: "TDP Rating", key: AttrCoolerTDPRating, unit: "W", kind: rowNumber},
	},
}

// SpecRows projects the type-specific attributes of c into display rows.
// Rows whose attribute is absent or empty are omitted. The row set is chosen
// by c.Type; components of an unknown type have no rows.
func SpecRows(c Component) []SpecRow {
	return SpecRowsAs(c, c.Type)
}

// SpecRowsAs is SpecRows using t instead of the component's own type
func SpecRowsAs(c Component, t ComponentType) []SpecRow {
	defs := specDefs[t]
	rows := make([]SpecRow, 0, len(defs))
	for _, d := range defs {
		value, ok := d.value(c)
		if !ok {
			continue
		}
		rows = append(rows, SpecRow{Label: d.label, Value: value, Unit: d.unit})
	}
	return rows
}

func (d rowDef) value(c Component) (string, bool) {
	switch d.kind {
	case rowNumber:
		if n, ok := c.Number(d.key); ok {
			return FormatNumber(n), true
		}
		// Non-numeric values are still shown verbatim
		return c.Text(d.key)
	case rowList:
		items, ok := c.List(d.key)
		if !ok {
			return "", false
		}
		return strings.Join(items, ", "), true
	default:
		return c.Text(d.key)
	}
}

// FormatNumber renders a number without trailing zeros
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatPrice renders a price with two decimals, e.g. "$700.00"
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// FormatWatts renders a power figure, e.g. "450 W"
func FormatWatts(w float64) string {
	return FormatNumber(w) + " W"
}
