package kernel

import (
	"strings"
	"unicode/utf8"

	"trippy/internal/pkg/errs"
	"trippy/internal/pkg/guard"
)

// DestinationMaxLength bounds the length of a destination name in runes.
const DestinationMaxLength = 100

// ErrDestinationIsNotConstructed is returned when a zero-value Destination is used.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination")

// Destination is the place tag shared by packages, hotels and restaurants.
// Matching is exact on the trimmed name, the same way the catalog stores it.
//
// Example:
//
//	dest, err := kernel.NewDestination(" Bali ")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dest) // Bali
type Destination struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewDestination trims surrounding whitespace and validates the name.
// Empty names and names longer than DestinationMaxLength are rejected.
func NewDestination(name string) (Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Destination{}, errs.NewValueIsRequiredError("destination")
	}
	if n := utf8.RuneCountInString(name); n > DestinationMaxLength {
		return Destination{}, errs.NewValueIsOutOfRangeError("destination length", n, 1, DestinationMaxLength)
	}
	return Destination{name: name, guard: guard.NewConstructorGuard()}, nil
}

// String returns the normalized name.
func (d Destination) String() string {
	return d.name
}

// Matches reports whether the raw catalog value names this destination.
func (d Destination) Matches(raw string) bool {
	return d.name == strings.TrimSpace(raw)
}

// Validate fails for a Destination that was not built by NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}
