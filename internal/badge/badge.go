// Package badge renders the ARA certification seal as a standalone SVG.
//
// Rendering is a pure function of Options. Element ids inside the SVG are
// prefixed with a namespace token so several badges can be inlined into one
// page without their gradient and arc ids colliding.
package badge

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/google/uuid"

	id "ara/pkg/domain"
	pstrings "ara/pkg/platform/strings"
)

// Defaults and bounds applied by Normalize.
const (
	DefaultLevel           = 1
	DefaultCertificationID = "ARA-0000-PENDING"
	DefaultSize            = 160
	MinSize                = 48
	MaxSize                = 1024
	NamespacePrefix        = "ara-badge-"
)

// Variant selects the badge colour scheme.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantGold     Variant = "gold"
	VariantMidnight Variant = "midnight"
	VariantMono     Variant = "mono"
)

// Variants lists every colour scheme.
var Variants = []Variant{VariantStandard, VariantGold, VariantMidnight, VariantMono}

// ParseVariant matches s case-insensitively, falling back to the standard
// scheme for anything unrecognized.
func ParseVariant(s string) Variant {
	for _, v := range Variants {
		if pstrings.EqualFold(s, string(v)) {
			return v
		}
	}
	return VariantStandard
}

type palette struct {
	Ring       string
	Accent     string
	Background string
	Inner      string
	Text       string
}

var palettes = map[Variant]palette{
	VariantStandard: {Ring: "#1F4E79", Accent: "#4A90C2", Background: "#0B1F33", Inner: "#163A5C", Text: "#FFFFFF"},
	VariantGold:     {Ring: "#B8860B", Accent: "#E6C15A", Background: "#3B2A05", Inner: "#6B4E0E", Text: "#FFF8E1"},
	VariantMidnight: {Ring: "#3A3F58", Accent: "#8C9EFF", Background: "#0A0C14", Inner: "#1C2033", Text: "#E8EAF6"},
	VariantMono:     {Ring: "#222222", Accent: "#777777", Background: "#FFFFFF", Inner: "#F2F2F2", Text: "#111111"},
}

var levelNames = map[int]string{
	1: "FOUNDATIONAL",
	2: "OPERATIONAL",
	3: "AUTONOMOUS",
}

// Options are the badge inputs. Zero values select defaults.
type Options struct {
	Level           int
	CertificationID string
	Size            int
	Variant         Variant
	Namespace       string
}

// Normalize replaces invalid or missing inputs with defaults. A missing
// namespace is filled with a fresh random token.
func (o Options) Normalize() Options {
	if _, ok := levelNames[o.Level]; !ok {
		o.Level = DefaultLevel
	}
	o.CertificationID = strings.TrimSpace(o.CertificationID)
	if o.CertificationID == "" {
		o.CertificationID = DefaultCertificationID
	}
	if r := []rune(o.CertificationID); len(r) > id.MaxCertificationIDLength {
		o.CertificationID = string(r[:id.MaxCertificationIDLength])
	}
	switch {
	case o.Size == 0:
		o.Size = DefaultSize
	case o.Size < MinSize:
		o.Size = MinSize
	case o.Size > MaxSize:
		o.Size = MaxSize
	}
	if _, ok := palettes[o.Variant]; !ok {
		o.Variant = ParseVariant(string(o.Variant))
	}
	o.Namespace = sanitizeNamespace(o.Namespace)
	if o.Namespace == "" {
		o.Namespace = NewNamespace()
	}
	return o
}

// NewNamespace returns a random id namespace.
func NewNamespace() string {
	return NamespacePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// sanitizeNamespace keeps only characters valid in an XML id.
func sanitizeNamespace(ns string) string {
	var b strings.Builder
	for _, r := range ns {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out != "" && !unicode.IsLetter(rune(out[0])) {
		out = "ns-" + out
	}
	return out
}

type view struct {
	Options
	Palette    palette
	LevelLabel string
	Label      string
}

var tmpl = template.Must(template.New("badge").Funcs(template.FuncMap{"xml": escape, "levelName": LevelName}).Parse(badgeSVG))

// Render returns the SVG document for o after normalization.
func Render(o Options) string {
	o = o.Normalize()
	v := view{
		Options:    o,
		Palette:    palettes[o.Variant],
		LevelLabel: fmt.Sprintf("LEVEL %d", o.Level),
		Label:      fmt.Sprintf("ARA Certified Level %d (%s): %s", o.Level, strings.ToLower(levelNames[o.Level]), o.CertificationID),
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		// unreachable: the template is parsed at init and the view has no methods
		panic(fmt.Sprintf("badge: render: %v", err))
	}
	return buf.String()
}

// LevelName is the tier name printed on the lower arc.
func LevelName(level int) string {
	return levelNames[level]
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

const badgeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 200 200" role="img" aria-label="{{xml .Label}}">
<title>{{xml .Label}}</title>
<defs>
<radialGradient id="{{.Namespace}}-fill" cx="50%" cy="40%" r="65%">
<stop offset="0%" stop-color="{{.Palette.Inner}}"/>
<stop offset="100%" stop-color="{{.Palette.Background}}"/>
</radialGradient>
<path id="{{.Namespace}}-top" d="M 22,100 A 78,78 0 0 1 178,100"/>
<path id="{{.Namespace}}-bottom" d="M 14,100 A 86,86 0 0 0 186,100"/>
</defs>
<circle cx="100" cy="100" r="96" fill="url(#{{.Namespace}}-fill)" stroke="{{.Palette.Ring}}" stroke-width="4"/>
<circle cx="100" cy="100" r="64" fill="none" stroke="{{.Palette.Accent}}" stroke-width="2"/>
<text fill="{{.Palette.Text}}" font-family="Helvetica, Arial, sans-serif" font-size="11" font-weight="700" letter-spacing="2">
<textPath href="#{{.Namespace}}-top" startOffset="50%" text-anchor="middle">AUTONOMOUS RELIABILITY ASSURANCE</textPath>
</text>
<text fill="{{.Palette.Accent}}" font-family="Helvetica, Arial, sans-serif" font-size="10" font-weight="700" letter-spacing="3">
<textPath href="#{{.Namespace}}-bottom" startOffset="50%" text-anchor="middle">{{xml (levelName .Level)}} · CERTIFIED</textPath>
</text>
<text x="100" y="104" fill="{{.Palette.Text}}" font-family="Helvetica, Arial, sans-serif" font-size="40" font-weight="800" text-anchor="middle">ARA</text>
<text x="100" y="126" fill="{{.Palette.Accent}}" font-family="Helvetica, Arial, sans-serif" font-size="12" font-weight="700" text-anchor="middle" letter-spacing="1">{{xml .LevelLabel}}</text>
<text x="100" y="142" fill="{{.Palette.Text}}" font-family="Menlo, Consolas, monospace" font-size="7" text-anchor="middle" opacity="0.8">{{xml .CertificationID}}</text>
</svg>
`
