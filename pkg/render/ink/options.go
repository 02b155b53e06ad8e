package ink

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Format is an output format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg or png)", s)
}

// ParseFormats splits a comma separated list such as "svg,png".
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

// Options sizes the rendered image. Zero values are not sent.
type Options struct {
	Width  int
	Height int
	Scale  float64
}

// Validate checks the sizing combination.
func (o Options) Validate() error {
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height cannot be negative")
	}
	return errors.ValidateScale(o.Scale, o.Width, o.Height)
}

// Query returns the URL query for the set values.
func (o Options) Query() url.Values {
	q := url.Values{}
	if o.Width > 0 {
		q.Set("width", strconv.Itoa(o.Width))
	}
	if o.Height > 0 {
		q.Set("height", strconv.Itoa(o.Height))
	}
	if o.Scale > 0 {
		q.Set("scale", strconv.FormatFloat(o.Scale, 'f', -1, 64))
	}
	return q
}

// Encode returns the URL-safe base64 form of script.
func Encode(script string) string {
	return base64.URLEncoding.EncodeToString([]byte(script))
}

// Position aligns an SVG embedded in HTML.
type Position string

const (
	PositionNone   Position = "none"
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

// ParsePosition accepts left, right, center or none. Empty means none.
func ParsePosition(s string) (Position, error) {
	switch p := Position(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PositionNone, nil
	case PositionNone, PositionLeft, PositionCenter, PositionRight:
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown position %q", s)
}

// WrapHTML wraps svg in a div aligned by pos. [PositionNone] and unknown
// positions return svg unchanged.
func WrapHTML(svg string, pos Position) string {
	switch pos {
	case PositionLeft, PositionCenter, PositionRight:
		return `<div style="text-align:` + string(pos) + `">` + svg + `</div>`
	}
	return svg
}
