package ink

import (
	"encoding/base64"
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

func TestEncode(t *testing.T) {
	script := "---\ntitle: t\n---\nflowchart TB\n\ta[\"?>\"]\n"
	enc := Encode(script)
	dec, err := base64.URLEncoding.DecodeString(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(dec) != script {
		t.Errorf("round trip = %q, want %q", dec, script)
	}
	for _, r := range enc {
		if r == '+' || r == '/' {
			t.Fatalf("Encode produced non URL-safe output %q", enc)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"empty", Options{}, false},
		{"width", Options{Width: 800}, false},
		{"scale with height", Options{Height: 600, Scale: 2}, false},
		{"scale bounds", Options{Width: 1, Scale: 3}, false},

		{"scale alone", Options{Scale: 2}, true},
		{"scale too big", Options{Width: 800, Scale: 4}, true},
		{"scale too small", Options{Width: 800, Scale: 0.5}, true},
		{"negative width", Options{Width: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("Validate() code = %v, want validation", errors.GetCode(err))
			}
		})
	}
}

func TestOptionsQuery(t *testing.T) {
	if q := (Options{}).Query(); len(q) != 0 {
		t.Errorf("empty options query = %v", q)
	}
	q := Options{Width: 800, Scale: 1.5}.Query()
	if q.Get("width") != "800" || q.Get("scale") != "1.5" || q.Has("height") {
		t.Errorf("Query() = %v", q)
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("svg, PNG")
	if err != nil || len(got) != 2 || got[0] != FormatSVG || got[1] != FormatPNG {
		t.Errorf("ParseFormats = %v, %v", got, err)
	}
	if _, err := ParseFormats("svg,pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormats(pdf) error = %v", err)
	}
	if _, err := ParseFormats(" , "); err == nil {
		t.Error("ParseFormats of nothing should fail")
	}
}

func TestWrapHTML(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{PositionNone, "<svg/>"},
		{"", "<svg/>"},
		{PositionLeft, `<div style="text-align:left"><svg/></div>`},
		{PositionCenter, `<div style="text-align:center"><svg/></div>`},
		{PositionRight, `<div style="text-align:right"><svg/></div>`},
	}
	for _, tt := range tests {
		if got := WrapHTML("<svg/>", tt.pos); got != tt.want {
			t.Errorf("WrapHTML(%q) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	if p, err := ParsePosition(""); err != nil || p != PositionNone {
		t.Errorf("ParsePosition(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePosition("Center"); err != nil || p != PositionCenter {
		t.Errorf("ParsePosition(Center) = %q, %v", p, err)
	}
	if _, err := ParsePosition("top"); !errors.IsValidation(err) {
		t.Errorf("ParsePosition(top) error = %v", err)
	}
}
