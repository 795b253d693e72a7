package core

import "strconv"

// The helpers below read sketch options from a factory's string map. Missing
// keys fall back to def silently; unparsable values and values outside the
// accepted range fall back to def with a warning.

func ignored(key, v string) {
	Logger().Warn("ignoring option", "key", key, "value", v)
}

// IntOption reads an integer of at least lo.
func IntOption(cfg map[string]string, key string, def, lo int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < lo {
		ignored(key, v)
		return def
	}
	return parsed
}

// FloatOption reads a float in [lo, hi].
func FloatOption(cfg map[string]string, key string, def, lo, hi float64) float64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || parsed < lo || parsed > hi {
		ignored(key, v)
		return def
	}
	return parsed
}

// BoolOption reads a boolean in any form strconv.ParseBool accepts.
func BoolOption(cfg map[string]string, key string, def bool) bool {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		ignored(key, v)
		return def
	}
	return parsed
}

// StringOption reads a non-empty string accepted by valid. A nil valid accepts
// anything.
func StringOption(cfg map[string]string, key, def string, valid func(string) bool) string {
	v, ok := cfg[key]
	if !ok || v == "" {
		return def
	}
	if valid != nil && !valid(v) {
		ignored(key, v)
		return def
	}
	return v
}
