package tag

import (
	"image/color"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// namesByColor maps every CSS color to its alphabetically first name, so
// aliases such as aqua and cyan resolve the same way every time.
var namesByColor = func() map[color.RGBA]string {
	names := slices.Sorted(maps.Keys(colornames.Map))
	m := make(map[color.RGBA]string, len(names))
	for _, name := range names {
		c := colornames.Map[name]
		if _, ok := m[c]; !ok {
			m[c] = name
		}
	}
	return m
}()

// NormalizeColor turns a hex value (#rgb or #rrggbb) into its CSS color name.
// A known color name is returned lower-cased.
func NormalizeColor(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := colornames.Map[s]; ok {
		return s, true
	}
	c, ok := parseHex(s)
	if !ok {
		return "", false
	}
	name, ok := namesByColor[c]
	return name, ok
}

func parseHex(s string) (color.RGBA, bool) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
