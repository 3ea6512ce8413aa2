package scoring

import (
	"fmt"
	"strings"
)

// Flag identifies a single security practice. Every flag belongs to exactly one category.
type Flag int

const (
	// UseOSSMessenger is set when an open source messenger app is used
	UseOSSMessenger Flag = iota
	// SelfHostMessenger is set when the open source messenger is self-hosted
	SelfHostMessenger
	// EncryptFirstEmail is set when an encrypt-first e-mail provider is used
	EncryptFirstEmail
	// UseThirdPartyCloud is set when content is shared through a third party cloud provider
	UseThirdPartyCloud
	// SelfHostRepo is set when the code repository is self-hosted
	SelfHostRepo
	// UseOSSIDE is set when open source IDEs and tools are used
	UseOSSIDE
	// SelfHostDev is set when the development environment is self-hosted
	SelfHostDev
	// UseThirdPartyCloudRuntime is set when workloads run on a third party cloud provider
	UseThirdPartyCloudRuntime
	// SelfHostRuntime is set when the runtime environment is self-hosted
	SelfHostRuntime
	// BuildOwnHardware is set when the hardware is built in-house
	BuildOwnHardware
	// UseOSSHardware is set when open source hardware or operating systems are used
	UseOSSHardware

	numFlags = int(UseOSSHardware) + 1
)

type flagInfo struct {
	category Category
	id       string
	label    string
}

// flagTable is indexed by Flag and lists flags in display order.
var flagTable = [numFlags]flagInfo{
	UseOSSMessenger:           {Communication, "useOSSMessenger", "Using OSS Messenger App"},
	SelfHostMessenger:         {Communication, "selfHostMessenger", "Self-hosting OSS Messenger"},
	EncryptFirstEmail:         {Communication, "encryptFirstEmail", "Using Encrypt-first Email"},
	UseThirdPartyCloud:        {ContentSharing, "useThirdPartyCloud", "Using 3rd Party Cloud Provider"},
	SelfHostRepo:              {ContentSharing, "selfHostRepo", "Self-hosting Code Repository"},
	UseOSSIDE:                 {Development, "useOSSIDE", "Using OSS IDE/Tools"},
	SelfHostDev:               {Development, "selfHostDev", "Self-hosting Development Environment"},
	UseThirdPartyCloudRuntime: {Runtime, "useThirdPartyCloudRuntime", "Using 3rd Party Cloud Provider"},
	SelfHostRuntime:           {Runtime, "selfHostRuntime", "Self-hosting Runtime Environment"},
	BuildOwnHardware:          {Hardware, "buildOwnHardware", "Building Own Hardware"},
	UseOSSHardware:            {Hardware, "useOSSHardware", "Using OSS Hardware/OS"},
}

// AllFlags returns every flag in display order
func AllFlags() []Flag {
	flags := make([]Flag, numFlags)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

// Valid reports whether f is one of the defined flags
func (f Flag) Valid() bool {
	return f >= 0 && int(f) < numFlags
}

// Category returns the category the flag belongs to
func (f Flag) Category() Category {
	return f.info().category
}

// String returns the flag identifier
func (f Flag) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Flag(%d)", int(f))
	}
	return flagTable[f].id
}

// QualifiedName returns the flag identifier prefixed with its category, e.g. "hardware.useOSSHardware"
func (f Flag) QualifiedName() string {
	return f.Category().String() + "." + f.String()
}

// Label returns the human readable description of the practice
func (f Flag) Label() string {
	return f.info().label
}

func (f Flag) info() flagInfo {
	if !f.Valid() {
		panic(fmt.Sprintf("scoring: invalid flag %d", int(f)))
	}
	return flagTable[f]
}

// ParseFlag converts a flag identifier to a Flag within the given category.
// Flag identifiers are matched case-insensitively.
func ParseFlag(c Category, s string) (Flag, error) {
	id := strings.TrimSpace(s)
	for _, f := range AllFlags() {
		if !strings.EqualFold(flagTable[f].id, id) {
			continue
		}
		if flagTable[f].category != c {
			return 0, fmt.Errorf("%w: %s is a %s flag, not %s", ErrFlagCategoryMismatch, flagTable[f].id, flagTable[f].category, c)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q in category %s", ErrUnknownFlag, s, c)
}

// ParseQualifiedFlag parses a "category.flag" reference as used on the command line
func ParseQualifiedFlag(s string) (Flag, error) {
	categoryID, flagID, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return 0, fmt.Errorf("%w: %q (expected category.flag)", ErrUnknownFlag, s)
	}
	c, err := ParseCategory(categoryID)
	if err != nil {
		return 0, err
	}
	return ParseFlag(c, flagID)
}
