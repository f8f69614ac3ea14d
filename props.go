package stage

import "sort"

// Properties is a named property bag shared by all actors. Values are
// resolved once at construction (defaults first, then overrides) and can be
// changed afterward with Set.
type Properties struct {
	values map[string]any
}

// newProperties builds a bag from defaults overlaid by each overrides map in
// order. Later maps win. Nil maps are skipped.
func newProperties(defaults map[string]any, overrides ...map[string]any) *Properties {
	p := &Properties{values: make(map[string]any, len(defaults)+8)}
	for k, v := range defaults {
		p.values[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			p.values[k] = v
		}
	}
	return p
}

// Prop returns the value stored under name, or nil if name was never set.
func (p *Properties) Prop(name string) any {
	return p.values[name]
}

// Lookup returns the value stored under name and whether it was set at all.
// A property explicitly set to nil reports ok == true.
func (p *Properties) Lookup(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Set stores value under name, replacing any previous value.
func (p *Properties) Set(name string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[name] = value
}

// String returns the named property as a string. Missing or non-string
// values read as "".
func (p *Properties) String(name string) string {
	s, _ := p.values[name].(string)
	return s
}

// Float returns the named property as a float64. Any Go numeric type is
// accepted; missing or non-numeric values read as 0.
func (p *Properties) Float(name string) float64 {
	f, _ := toFloat(p.values[name])
	return f
}

// Bool returns the named property as a bool. Missing or non-bool values read
// as false.
func (p *Properties) Bool(name string) bool {
	b, _ := p.values[name].(bool)
	return b
}

// Names returns the property names in sorted order.
func (p *Properties) Names() []string {
	names := make([]string, 0, len(p.values))
	for k := range p.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
