package uci

import (
	"strconv"
	"strings"
)

// Option is one tunable parameter advertised by the engine during the
// handshake, e.g. "option name Hash type spin default 16 min 1 max 33554432".
type Option struct {
	Name    string
	Type    string
	Default string
	Min     int
	Max     int
	// HasBounds is true when the engine declared min/max (spin options).
	HasBounds bool
}

// Clamp forces v into the option's declared range. Options without bounds
// pass the value through.
func (o Option) Clamp(v int) int {
	if !o.HasBounds {
		return v
	}
	if v < o.Min {
		v = o.Min
	}
	if v > o.Max {
		v = o.Max
	}
	return v
}

// Capabilities is the engine's advertised option table, keyed by exact
// option name. Engines vary in vocabulary; always look up by name and
// handle absence.
type Capabilities map[string]Option

// Get returns the named option and whether the engine advertised it.
func (c Capabilities) Get(name string) (Option, bool) {
	opt, ok := c[name]
	return opt, ok
}

// parseOptionLine parses one "option name ... type ..." handshake line.
// Option names may contain spaces (e.g. "Skill Level", "Use NNUE").
func parseOptionLine(line string) (Option, bool) {
	parts := strings.Fields(line)
	if len(parts) < 4 || parts[0] != "option" || parts[1] != "name" {
		return Option{}, false
	}

	var opt Option
	nameEnd := -1
	for i := 2; i < len(parts); i++ {
		if parts[i] == "type" {
			nameEnd = i
			break
		}
	}
	if nameEnd <= 2 || nameEnd+1 >= len(parts) {
		return Option{}, false
	}
	opt.Name = strings.Join(parts[2:nameEnd], " ")
	opt.Type = parts[nameEnd+1]

	var hasMin, hasMax bool
	for i := nameEnd + 2; i < len(parts); i++ {
		switch parts[i] {
		case "default":
			if i+1 < len(parts) {
				opt.Default = parts[i+1]
				i++
			}
		case "min":
			if i+1 < len(parts) {
				if v, err := strconv.Atoi(parts[i+1]); err == nil {
					opt.Min = v
					hasMin = true
				}
				i++
			}
		case "max":
			if i+1 < len(parts) {
				if v, err := strconv.Atoi(parts[i+1]); err == nil {
					opt.Max = v
					hasMax = true
				}
				i++
			}
		}
	}
	opt.HasBounds = hasMin && hasMax
	return opt, true
}
