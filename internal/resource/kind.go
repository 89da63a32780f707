package resource

import (
	"fmt"
	"strings"
)

// Kind is the category of a resource entry
type Kind string

const (
	// KindString is a text resource
	KindString Kind = "string"

	// KindColor is an ARGB color resource
	KindColor Kind = "color"

	// KindDrawable is a binary asset such as an icon or banner art
	KindDrawable Kind = "drawable"
)

// Kinds lists every supported kind in id order
var Kinds = []Kind{KindString, KindColor, KindDrawable}

// ParseKind converts a user supplied name into a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindString:
		return KindString, nil
	case KindColor:
		return KindColor, nil
	case KindDrawable:
		return KindDrawable, nil
	default:
		return "", fmt.Errorf("unsupported resource kind: %q", s)
	}
}

func (k Kind) id() uint8 {
	switch k {
	case KindString:
		return 0x01
	case KindColor:
		return 0x02
	case KindDrawable:
		return 0x03
	default:
		return 0
	}
}

func kindFromID(b uint8) Kind {
	switch b {
	case 0x01:
		return KindString
	case 0x02:
		return KindColor
	case 0x03:
		return KindDrawable
	default:
		return ""
	}
}
