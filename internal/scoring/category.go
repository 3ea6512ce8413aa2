// Package scoring provides the IP security posture scoring engine.
// It defines the closed set of assessed categories and practices, an immutable
// score board, and the fixed deduction rules used to derive category and total scores.
package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// Error definitions for identifier parsing
var (
	// ErrUnknownCategory is returned when a category identifier is not recognized
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownFlag is returned when a flag identifier is not recognized
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrFlagCategoryMismatch is returned when a flag is qualified with a category it does not belong to
	ErrFlagCategoryMismatch = errors.New("flag does not belong to category")
)

// Category identifies one of the five assessed security dimensions
type Category int

const (
	// Communication covers messengers and e-mail
	Communication Category = iota
	// ContentSharing covers file and code sharing
	ContentSharing
	// Development covers developer tooling and environments
	Development
	// Runtime covers where workloads run
	Runtime
	// Hardware covers the physical platform
	Hardware

	numCategories = int(Hardware) + 1
)

// Category identifier strings used in profiles, command arguments and JSON output.
const (
	CommunicationID  = "communication"
	ContentSharingID = "contentSharing"
	DevelopmentID    = "development"
	RuntimeID        = "runtime"
	HardwareID       = "hardware"
)

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{Communication, ContentSharing, Development, Runtime, Hardware}
}

// String returns the category identifier
func (c Category) String() string {
	switch c {
	case Communication:
		return CommunicationID
	case ContentSharing:
		return ContentSharingID
	case Development:
		return DevelopmentID
	case Runtime:
		return RuntimeID
	case Hardware:
		return HardwareID
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Title returns the human readable heading of the category
func (c Category) Title() string {
	switch c {
	case Communication:
		return "Communication Security"
	case ContentSharing:
		return "Content Sharing Security"
	case Development:
		return "Development Systems Security"
	case Runtime:
		return "Runtime Systems Security"
	case Hardware:
		return "Hardware Security"
	default:
		panic(invalidCategory(c))
	}
}

// Valid reports whether c is one of the defined categories
func (c Category) Valid() bool {
	return c >= Communication && c <= Hardware
}

// Flags returns the flags of the category in display order
func (c Category) Flags() []Flag {
	if !c.Valid() {
		panic(invalidCategory(c))
	}
	var flags []Flag
	for f := Flag(0); int(f) < numFlags; f++ {
		if flagTable[f].category == c {
			flags = append(flags, f)
		}
	}
	return flags
}

// ParseCategory converts a category identifier to a Category.
// Matching is case-insensitive so that "contentsharing" and "contentSharing" are equivalent.
func ParseCategory(s string) (Category, error) {
	id := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(c.String(), id) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func invalidCategory(c Category) string {
	return fmt.Sprintf("scoring: invalid category %d", int(c))
}
