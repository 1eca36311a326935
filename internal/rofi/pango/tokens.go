package pango

import "fmt"

// FontFamily selects a generic font face.
type FontFamily int

const (
	FamilyNormal FontFamily = iota
	FamilySans
	FamilySerif
	FamilyMonospace
	fontFamilyCount
)

var fontFamilyTokens = map[FontFamily]string{
	FamilyNormal:    "normal",
	FamilySans:      "sans",
	FamilySerif:     "serif",
	FamilyMonospace: "monospace",
}

func (f FontFamily) String() string { return token(fontFamilyTokens, f) }

// FontSize is an absolute or relative font size.
type FontSize int

const (
	SizeVeryTiny FontSize = iota
	SizeTiny
	SizeSmall
	SizeNormal
	SizeLarge
	SizeHuge
	SizeVeryHuge
	SizeSmaller
	SizeLarger
	fontSizeCount
)

var fontSizeTokens = map[FontSize]string{
	SizeVeryTiny: "xx-small",
	SizeTiny:     "x-small",
	SizeSmall:    "small",
	SizeNormal:   "medium",
	SizeLarge:    "large",
	SizeHuge:     "x-large",
	SizeVeryHuge: "xx-large",
	SizeSmaller:  "smaller",
	SizeLarger:   "larger",
}

func (s FontSize) String() string { return token(fontSizeTokens, s) }

// SlantStyle is the font slant.
type SlantStyle int

const (
	SlantNormal SlantStyle = iota
	SlantOblique
	SlantItalic
	slantStyleCount
)

var slantStyleTokens = map[SlantStyle]string{
	SlantNormal:  "normal",
	SlantOblique: "oblique",
	SlantItalic:  "italic",
}

func (s SlantStyle) String() string { return token(slantStyleTokens, s) }

// Weight is the font weight, from 100 (thin) to 1000 (ultra heavy).
type Weight int

const (
	WeightThin Weight = iota
	WeightUltraLight
	WeightLight
	WeightNormal
	WeightMedium
	WeightSemiBold
	WeightBold
	WeightUltraBold
	WeightHeavy
	WeightUltraHeavy
	weightCount
)

var weightTokens = map[Weight]string{
	WeightThin:       "100",
	WeightUltraLight: "ultralight",
	WeightLight:      "light",
	WeightNormal:     "normal",
	WeightMedium:     "500",
	WeightSemiBold:   "600",
	WeightBold:       "bold",
	WeightUltraBold:  "ultrabold",
	WeightHeavy:      "heavy",
	WeightUltraHeavy: "1000",
}

func (w Weight) String() string { return token(weightTokens, w) }

// FontStretch is the horizontal letter spacing.
type FontStretch int

const (
	StretchUltraCondensed FontStretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
	fontStretchCount
)

var fontStretchTokens = map[FontStretch]string{
	StretchUltraCondensed: "ultracondensed",
	StretchExtraCondensed: "extracondensed",
	StretchCondensed:      "condensed",
	StretchSemiCondensed:  "semicondensed",
	StretchNormal:         "normal",
	StretchSemiExpanded:   "semiexpanded",
	StretchExpanded:       "expanded",
	StretchExtraExpanded:  "extraexpanded",
	StretchUltraExpanded:  "ultraexpanded",
}

func (s FontStretch) String() string { return token(fontStretchTokens, s) }

// Underline is the underline mode. UnderlineLow draws only the lower line
// of UnderlineDouble.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineLow
	underlineCount
)

var underlineTokens = map[Underline]string{
	UnderlineNone:   "none",
	UnderlineSingle: "single",
	UnderlineDouble: "double",
	UnderlineLow:    "low",
}

func (u Underline) String() string { return token(underlineTokens, u) }

// token panics on a level missing from its table; every declared level has
// an entry.
func token[K ~int](table map[K]string, level K) string {
	value, ok := table[level]
	if !ok {
		panic(fmt.Sprintf("pango: no token for %T(%d)", level, int(level)))
	}
	return value
}
