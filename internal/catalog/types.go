package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownComponentType is returned when a string does not name a ComponentType
var ErrUnknownComponentType = errors.New("unknown component type")

// ComponentType tags which slot of a build a component fills
type ComponentType string

const (
	TypeCPU         ComponentType = "CPU"
	TypeMotherboard ComponentType = "Motherboard"
	TypeRAM         ComponentType = "RAM"
	TypeGPU         ComponentType = "GPU"
	TypeStorage     ComponentType = "Storage"
	TypePSU         ComponentType = "PSU"
	TypeCase        ComponentType = "Case"
	TypeCooler      ComponentType = "Cooler"
)

// typeOrder is the canonical display and iteration order
var typeOrder = []ComponentType{
	TypeCPU,
	TypeMotherboard,
	TypeRAM,
	TypeGPU,
	TypeStorage,
	TypePSU,
	TypeCase,
	TypeCooler,
}

// AllTypes returns every component type in canonical order.
// The returned slice is a copy and may be modified by the caller.
func AllTypes() []ComponentType {
	out := make([]ComponentType, len(typeOrder))
	copy(out, typeOrder)
	return out
}

// Index returns the position of t in the canonical order, or -1
func (t ComponentType) Index() int {
	for i, ct := range typeOrder {
		if ct == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the eight known types
func (t ComponentType) Valid() bool {
	return t.Index() >= 0
}

func (t ComponentType) String() string {
	return string(t)
}

// ParseComponentType resolves a type name case-insensitively
func ParseComponentType(s string) (ComponentType, error) {
	s = strings.TrimSpace(s)
	for _, ct := range typeOrder {
		if strings.EqualFold(string(ct), s) {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComponentType, s)
}

// Attribute keys used by catalog records
const (
	AttrSocket             = "socket"
	AttrTDP                = "tdp"
	AttrRAMType            = "ram_type"
	AttrRAMSpeed           = "ram_speed"
	AttrFormFactor         = "form_factor"
	AttrGPULengthMM        = "gpu_length_mm"
	AttrStorageInterfaces  = "storage_interfaces"
	AttrPSUWattage         = "psu_wattage"
	AttrPSUType            = "psu_type"
	AttrCaseGPUMaxLengthMM = "case_gpu_max_length_mm"
	AttrCaseCoolerMaxMM    = "case_cooler_max_height_mm"
	AttrCoolerHeightMM     = "cooler_height_mm"
	AttrCoolerTDPRating    = "cooler_tdp_rating"
)

// EvaluationResult is the verdict returned by the evaluation service
type EvaluationResult struct {
	IsValid         bool     `json:"is_valid"`
	Issues          []string `json:"issues"`
	EstimatedPowerW float64  `json:"estimated_power_w"`
	TotalPrice      float64  `json:"total_price"`
}

// UnreachableIssue is the single issue reported when the evaluation service cannot be used
const UnreachableIssue = "Could not contact backend."

// UnreachableResult returns the fallback verdict used when evaluation fails
func UnreachableResult() EvaluationResult {
	return EvaluationResult{
		IsValid:         false,
		Issues:          []string{UnreachableIssue},
		EstimatedPowerW: 0,
		TotalPrice:      0,
	}
}

// IsUnreachable reports whether r is the fallback verdict
func (r EvaluationResult) IsUnreachable() bool {
	return !r.IsValid &&
		len(r.Issues) == 1 &&
		r.Issues[0] == UnreachableIssue &&
		r.EstimatedPowerW == 0
}
