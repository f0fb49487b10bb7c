// Package chatcolor handles Minecraft chat color codes: translating the
// alternate '&' markup used in config files and rendering codes on terminals.
package chatcolor

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Char is the section sign that prefixes every chat code.
const Char = '§'

const codes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// Translate replaces alt followed by a valid code with the section sign and
// the lower-cased code. Anything else is kept as is.
func Translate(alt rune, s string) string {
	if !strings.ContainsRune(s, alt) {
		return s
	}
	r := []rune(s)
	for i := 0; i < len(r)-1; i++ {
		if r[i] == alt && strings.ContainsRune(codes, r[i+1]) {
			r[i] = Char
			r[i+1] = []rune(strings.ToLower(string(r[i+1])))[0]
		}
	}
	return string(r)
}

// Strip removes every chat code from s.
func Strip(s string) string {
	if !strings.ContainsRune(s, Char) {
		return s
	}
	var b strings.Builder
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if r[i] == Char && i+1 < len(r) && strings.ContainsRune(codes, r[i+1]) {
			i++
			continue
		}
		b.WriteRune(r[i])
	}
	return b.String()
}

// Colorizer translates '&' markup into chat codes.
type Colorizer struct {
	Alt rune
}

func NewColorizer() *Colorizer {
	return &Colorizer{Alt: '&'}
}

func (c *Colorizer) Colorize(s string) string {
	return Translate(c.Alt, s)
}

// Console translates '&' markup and renders it with ANSI escapes.
type Console struct {
	Alt rune
}

func NewConsole() *Console {
	return &Console{Alt: '&'}
}

func (c *Console) Colorize(s string) string {
	return ANSI(Translate(c.Alt, s))
}

var foreground = map[rune]color.Attribute{
	'0': color.FgBlack,
	'1': color.FgBlue,
	'2': color.FgGreen,
	'3': color.FgCyan,
	'4': color.FgRed,
	'5': color.FgMagenta,
	'6': color.FgYellow,
	'7': color.FgWhite,
	'8': color.FgHiBlack,
	'9': color.FgHiBlue,
	'a': color.FgHiGreen,
	'b': color.FgHiCyan,
	'c': color.FgHiRed,
	'd': color.FgHiMagenta,
	'e': color.FgHiYellow,
	'f': color.FgHiWhite,
}

var formats = map[rune]color.Attribute{
	'k': color.BlinkSlow,
	'l': color.Bold,
	'm': color.CrossedOut,
	'n': color.Underline,
	'o': color.Italic,
}

// style is the color state between two codes.
type style struct {
	fg      color.Attribute
	rgb     []int
	formats []color.Attribute
}

func (s style) plain() bool {
	return s.fg == 0 && s.rgb == nil && len(s.formats) == 0
}

func (s style) render(text string) string {
	if text == "" || s.plain() {
		return text
	}
	var c *color.Color
	if s.rgb != nil {
		c = color.RGB(s.rgb[0], s.rgb[1], s.rgb[2])
	} else {
		c = color.New()
		if s.fg != 0 {
			c.Add(s.fg)
		}
	}
	c.Add(s.formats...)
	return c.Sprint(text)
}

// ANSI renders chat codes with terminal escapes. As in game, a color code
// clears active formats and 'r' clears everything. With color output disabled
// the codes are simply removed.
func ANSI(s string) string {
	if !strings.ContainsRune(s, Char) {
		return s
	}
	if color.NoColor {
		return Strip(s)
	}
	var (
		out  strings.Builder
		text strings.Builder
		cur  style
	)
	flush := func() {
		out.WriteString(cur.render(text.String()))
		text.Reset()
	}

	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if r[i] != Char || i+1 >= len(r) {
			text.WriteRune(r[i])
			continue
		}
		code := []rune(strings.ToLower(string(r[i+1])))[0]
		if rgb, n := hexColor(r[i:]); n > 0 {
			flush()
			cur = style{rgb: rgb}
			i += n - 1
			continue
		}
		if fg, ok := foreground[code]; ok {
			flush()
			cur = style{fg: fg}
			i++
			continue
		}
		if f, ok := formats[code]; ok {
			flush()
			cur.formats = append(append([]color.Attribute(nil), cur.formats...), f)
			i++
			continue
		}
		if code == 'r' {
			flush()
			cur = style{}
			i++
			continue
		}
		text.WriteRune(r[i])
	}
	flush()
	return out.String()
}

// hexColor parses the §x§R§R§G§G§B§B form and returns the color and the
// number of runes consumed, or 0 when r does not start with that form.
func hexColor(r []rune) ([]int, int) {
	const n = 14
	if len(r) < n || (r[1] != 'x' && r[1] != 'X') {
		return nil, 0
	}
	digits := make([]rune, 0, 6)
	for i := 2; i < n; i += 2 {
		if r[i] != Char {
			return nil, 0
		}
		digits = append(digits, r[i+1])
	}
	v, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return nil, 0
	}
	return []int{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, n
}
