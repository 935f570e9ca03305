package color

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToANSI converts a hex color code to an ANSI escape sequence.
func HexToANSI(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return hex
	}

	hex = strings.TrimPrefix(hex, "#")

	i, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", (i>>16)&0xFF, (i>>8)&0xFF, i&0xFF)
}

// HexRGB creates a new ColorFn that can be used to create Color instances
// with the specified hex color.
func HexRGB(hex string) ColorFn {
	return func(arg ...any) *Color {
		return &Color{
			text:   join(arg...),
			color:  HexToANSI(hex),
			styles: []string{},
		}
	}
}
