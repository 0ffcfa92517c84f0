// Package icon renders the static vector icons as standalone SVG documents.
package icon

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"dexinfo.com/internal/domain/entity"
)

const (
	DefaultWidth = "20px"
	DefaultColor = "text"
)

// palette resolves theme colour keys, light theme
var palette = map[string]string{
	"text":         "#280D5F",
	"textSubtle":   "#7A6EAA",
	"textDisabled": "#BDC2C4",
	"primary":      "#1FC7D4",
	"secondary":    "#7645D9",
	"success":      "#31D0AA",
	"failure":      "#ED4B9E",
	"warning":      "#FFB237",
}

var (
	widthPattern   = regexp.MustCompile(`^\d*\.?\d+(px|em|rem|%)?$`)
	hexPattern     = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern     = regexp.MustCompile(`^rgba?\(\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*(,\s*(0|1|0?\.\d+)\s*)?\)$`)
	wordPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	viewBoxPattern = regexp.MustCompile(`^-?\d*\.?\d+([ ,]+-?\d*\.?\d+){3}$`)
)

// Props are the rendering options of an icon. Zero values take the defaults.
type Props struct {
	Width   string
	Color   string
	ViewBox string
	Spin    bool
}

// Names lists the available icons
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the icon registered under name
func Lookup(name string) (Icon, error) {
	icon, ok := registry[name]
	if !ok {
		return Icon{}, fmt.Errorf("%w: %q", entity.ErrUnknownIcon, name)
	}
	return icon, nil
}

// Render draws the named icon
func Render(name string, props Props) ([]byte, error) {
	icon, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return icon.Render(props)
}

// resolve checks props and fills in the defaults of the icon
func (p Props) resolve(icon Icon) (Props, error) {
	if p.Width == "" {
		p.Width = DefaultWidth
	}
	if !validWidth(p.Width) {
		return p, fmt.Errorf("%w: width %q", entity.ErrInvalidIconProps, p.Width)
	}

	if p.Color == "" {
		p.Color = DefaultColor
	}
	color, err := resolveColor(p.Color)
	if err != nil {
		return p, err
	}
	p.Color = color

	if p.ViewBox == "" {
		p.ViewBox = icon.ViewBox
	}
	if !viewBoxPattern.MatchString(strings.TrimSpace(p.ViewBox)) {
		return p, fmt.Errorf("%w: viewBox %q", entity.ErrInvalidIconProps, p.ViewBox)
	}
	p.ViewBox = strings.TrimSpace(p.ViewBox)

	return p, nil
}

func validWidth(width string) bool {
	m := widthPattern.FindStringSubmatch(width)
	if m == nil {
		return false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(width, m[1]), 64)
	return err == nil && n > 0
}

func resolveColor(color string) (string, error) {
	if c, ok := palette[color]; ok {
		return c, nil
	}
	if hexPattern.MatchString(color) || rgbPattern.MatchString(color) || wordPattern.MatchString(color) {
		return color, nil
	}
	return "", fmt.Errorf("%w: color %q", entity.ErrInvalidIconProps, color)
}

// Render draws the icon as an SVG document
func (i Icon) Render(props Props) ([]byte, error) {
	p, err := props.resolve(i)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" width="%s" fill="%s"`,
		attr(p.ViewBox), attr(p.Width), attr(p.Color))
	if p.Spin {
		buf.WriteString(` style="animation: spin 2s linear infinite"`)
	}
	buf.WriteString(">")
	if p.Spin {
		buf.WriteString(`<style>@keyframes spin{from{transform:rotate(0deg)}to{transform:rotate(360deg)}}</style>`)
	}
	for _, path := range i.Paths {
		buf.WriteString("<path")
		if path.FillRule != "" {
			fmt.Fprintf(&buf, ` fill-rule="%s"`, attr(path.FillRule))
		}
		if path.ClipRule != "" {
			fmt.Fprintf(&buf, ` clip-rule="%s"`, attr(path.ClipRule))
		}
		fmt.Fprintf(&buf, ` d="%s"/>`, attr(path.D))
	}
	buf.WriteString("</svg>")

	return buf.Bytes(), nil
}

func attr(s string) string {
	return html.EscapeString(s)
}
