package renderer

import (
	"strings"

	"github.com/matzehuels/pumlrender/pkg/errors"
)

// Format is an output format understood by PlantUML's -t flag.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Format selectors accepted on the command line.
const (
	SelectorPNG  = "png"
	SelectorSVG  = "svg"
	SelectorBoth = "both"
	SelectorAll  = "all"

	DefaultSelector = SelectorBoth
)

// Selectors lists every accepted selector, in help-text order.
var Selectors = []string{SelectorPNG, SelectorSVG, SelectorBoth, SelectorAll}

// ParseSelector expands a --format selector into the formats to render.
// "both" and "all" are synonyms for png followed by svg.
func ParseSelector(s string) ([]Format, error) {
	switch s {
	case SelectorPNG:
		return []Format{FormatPNG}, nil
	case SelectorSVG:
		return []Format{FormatSVG}, nil
	case SelectorBoth, SelectorAll:
		return []Format{FormatPNG, FormatSVG}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of %s)", s, strings.Join(Selectors, ", "))
	}
}
