package logging

import "github.com/oklog/ulid/v2"

// GenerateRunID returns a new lexically sortable run identifier
func GenerateRunID() string {
	return ulid.Make().String()
}
