package component

// String returns a string property, or def if absent or of another type.
func String(h Handle, name, def string) string {
	if v, ok := h.Property(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Float returns a numeric property as float64, or def if absent or not
// numeric.
func Float(h Handle, name string, def float64) float64 {
	v, ok := h.Property(name)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// Bool returns a boolean property, or def if absent or of another type.
func Bool(h Handle, name string, def bool) bool {
	if v, ok := h.Property(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}
