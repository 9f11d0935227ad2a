package chip

import "fmt"

var kindColors = map[Kind]string{
	Mover:   "\x1b[33m", // yellow
	Stacker: "\x1b[32m", // green
	Drawer:  "\x1b[31m", // red
	Binder:  "\x1b[34m", // blue
}

const colorReset = "\x1b[0m"

// Render returns the chip padded for tabular output, optionally colored by kind
func Render(c *Chip, color bool) string {
	var s string
	if c.hidden {
		s = fmt.Sprintf("[%-7s]", c.Kind)
	} else {
		s = fmt.Sprintf(" %-7s ", c.Kind)
	}

	if !color {
		return s
	}

	return kindColors[c.Kind] + s + colorReset
}
