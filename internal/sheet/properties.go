package sheet

import "strings"

// PropertyKind describes whether a CSS property accepts the px lengths the
// generator emits.
type PropertyKind string

const (
	KindLength    PropertyKind = "length"
	KindNonLength PropertyKind = "non-length"
	KindUnknown   PropertyKind = "unknown"
)

// propertyKinds maps CSS property names to kinds
var propertyKinds = map[string]PropertyKind{
	// Box
	"width":          KindLength,
	"height":         KindLength,
	"min-width":      KindLength,
	"max-width":      KindLength,
	"min-height":     KindLength,
	"max-height":     KindLength,
	"inline-size":    KindLength,
	"block-size":     KindLength,
	"flex-basis":     KindLength,
	"gap":            KindLength,
	"row-gap":        KindLength,
	"column-gap":     KindLength,
	"inset":          KindLength,
	"top":            KindLength,
	"right":          KindLength,
	"bottom":         KindLength,
	"left":           KindLength,
	"margin":         KindLength,
	"padding":        KindLength,
	"border-width":   KindLength,
	"border-radius":  KindLength,
	"outline-width":  KindLength,
	"outline-offset": KindLength,

	// Typography
	"font-size":      KindLength,
	"line-height":    KindLength,
	"letter-spacing": KindLength,
	"word-spacing":   KindLength,
	"text-indent":    KindLength,

	// Values that never take a length
	"color":            KindNonLength,
	"background-color": KindNonLength,
	"border-color":     KindNonLength,
	"display":          KindNonLength,
	"position":         KindNonLength,
	"opacity":          KindNonLength,
	"z-index":          KindNonLength,
	"font-weight":      KindNonLength,
	"font-family":      KindNonLength,
	"font-style":       KindNonLength,
	"text-align":       KindNonLength,
	"visibility":       KindNonLength,
	"flex-grow":        KindNonLength,
	"flex-shrink":      KindNonLength,
	"order":            KindNonLength,
}

// ClassifyProperty determines the kind of a CSS property. Custom properties
// accept anything and count as lengths.
func ClassifyProperty(name string) PropertyKind {
	name = strings.ToLower(strings.TrimSpace(name))

	if strings.HasPrefix(name, "--") {
		return KindLength
	}

	// Vendor prefixes share the unprefixed property's values
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if trimmed, ok := strings.CutPrefix(name, prefix); ok {
			name = trimmed
			break
		}
	}

	if kind, exists := propertyKinds[name]; exists {
		return kind
	}

	// margin-*, padding-*, inset-*, scroll-margin-*, ...
	for _, prefix := range []string{"margin-", "padding-", "inset-", "scroll-margin", "scroll-padding"} {
		if strings.HasPrefix(name, prefix) {
			return KindLength
		}
	}

	// border-top-width, border-start-end-radius, ...
	if strings.HasPrefix(name, "border-") {
		switch {
		case strings.HasSuffix(name, "-width"), strings.HasSuffix(name, "-radius"):
			return KindLength
		case strings.HasSuffix(name, "-color"), strings.HasSuffix(name, "-style"):
			return KindNonLength
		}
	}

	return KindUnknown
}
