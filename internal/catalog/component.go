package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Component is a purchasable part from the catalog.
// Type-specific fields live in Attributes, keyed by their wire names.
type Component struct {
	ID         string
	Name       string
	Brand      string
	Type       ComponentType
	Price      float64
	Attributes map[string]any
}

// reserved keys are decoded into struct fields instead of Attributes
var reservedKeys = map[string]bool{
	"_id":   true,
	"name":  true,
	"brand": true,
	"type":  true,
	"price": true,
}

// UnmarshalJSON decodes a catalog record, keeping unknown keys as attributes
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("component record is null")
	}

	var out Component
	if v, ok := raw["_id"]; ok {
		out.ID = decodeID(v)
	}
	if v, ok := raw["name"]; ok {
		if err := decodeOptional(v, &out.Name); err != nil {
			return fmt.Errorf("name: %w", err)
		}
	}
	if v, ok := raw["brand"]; ok {
		if err := decodeOptional(v, &out.Brand); err != nil {
			return fmt.Errorf("brand: %w", err)
		}
	}
	if v, ok := raw["type"]; ok {
		var t string
		if err := decodeOptional(v, &t); err != nil {
			return fmt.Errorf("type: %w", err)
		}
		out.Type = ComponentType(t)
	}
	if v, ok := raw["price"]; ok {
		if err := decodeOptional(v, &out.Price); err != nil {
			return fmt.Errorf("price: %w", err)
		}
	}

	for k, v := range raw {
		if reservedKeys[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if out.Attributes == nil {
			out.Attributes = make(map[string]any)
		}
		out.Attributes[k] = val
	}

	*c = out
	return nil
}

// MarshalJSON flattens attributes next to the fixed fields
func (c Component) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(c.Attributes)+len(reservedKeys))
	maps.Copy(flat, c.Attributes)
	flat["_id"] = c.ID
	flat["name"] = c.Name
	flat["brand"] = c.Brand
	flat["type"] = string(c.Type)
	flat["price"] = c.Price
	return json.Marshal(flat)
}

// decodeID accepts string or numeric identifiers
func decodeID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}

// decodeOptional decodes v into dst, treating null as the zero value
func decodeOptional(v json.RawMessage, dst any) error {
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil
	}
	return json.Unmarshal(v, dst)
}

// Text returns a string attribute
func (c Component) Text(key string) (string, bool) {
	v, ok := c.Attributes[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, s != ""
	case []any, []string:
		items, ok := c.List(key)
		return strings.Join(items, ", "), ok
	default:
		return fmt.Sprint(s), true
	}
}

// Number returns a numeric attribute.
// Values decoded from JSON are float64; values from YAML fixtures may be ints.
func (c Component) Number(key string) (float64, bool) {
	v, ok := c.Attributes[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// List returns a list attribute. A scalar string is returned as a one-element list.
func (c Component) List(key string) ([]string, bool) {
	v, ok := c.Attributes[key]
	if !ok || v == nil {
		return nil, false
	}
	switch s := v.(type) {
	case []string:
		return s, len(s) > 0
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out, len(out) > 0
	case string:
		if s == "" {
			return nil, false
		}
		return []string{s}, true
	default:
		return nil, false
	}
}

// ComponentFromRecord builds a Component from a generic decoded record,
// as produced by YAML or JSON decoding into map[string]any.
func ComponentFromRecord(rec map[string]any) (Component, error) {
	var out Component
	for k, v := range rec {
		switch k {
		case "_id", "id":
			if v != nil {
				out.ID = fmt.Sprint(v)
			}
		case "name":
			out.Name = toString(v)
		case "brand":
			out.Brand = toString(v)
		case "type":
			t, err := ParseComponentType(toString(v))
			if err != nil {
				return Component{}, err
			}
			out.Type = t
		case "price":
			tmp := Component{Attributes: map[string]any{"price": v}}
			p, ok := tmp.Number("price")
			if !ok && v != nil {
				return Component{}, fmt.Errorf("price: not a number: %v", v)
			}
			out.Price = p
		default:
			if out.Attributes == nil {
				out.Attributes = make(map[string]any)
			}
			out.Attributes[k] = v
		}
	}
	return out, nil
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
