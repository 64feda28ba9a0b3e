// Package uuid implements convenience functions on top of github.com/google/uuid to create and validate UUIDs.
package uuid

import (
	"strings"

	"github.com/dkinzler/respkit/errors"

	"github.com/google/uuid"
)

// Returns a new random UUID (version 4)
func NewUUID() (string, error) {
	uuid, err := uuid.NewRandom()
	if err != nil {
		return "", errors.New(err, "uuid", errors.Internal).WithInternalMessage("could not generate uuid")
	}
	return uuid.String(), nil
}

// Returns a new random UUID prefixed with the given string.
// The prefix and UUID are separated by a "-" character.
func NewUUIDWithPrefix(prefix string) (string, error) {
	u, err := NewUUID()
	if err != nil {
		return "", err
	}
	return prefix + "-" + u, nil
}

// Validate checks that id is a UUID in its canonical string form, e.g. "f47ac10b-58cc-4372-a567-0e02b2c3d479".
// Returns an error with code InvalidArgument and the given parameter name otherwise,
// it can e.g. be converted to a BadInput response with response.FromError.
func Validate(id string, param string) error {
	if len(id) != 36 {
		return invalidUUID(nil, param)
	}
	if _, err := uuid.Parse(id); err != nil {
		return invalidUUID(err, param)
	}
	return nil
}

// ValidateWithPrefix checks that id consists of the given prefix, a "-" character and a UUID, see NewUUIDWithPrefix.
func ValidateWithPrefix(id string, prefix string, param string) error {
	if !strings.HasPrefix(id, prefix+"-") {
		return invalidUUID(nil, param)
	}
	return Validate(strings.TrimPrefix(id, prefix+"-"), param)
}

func invalidUUID(inner error, param string) error {
	return errors.New(inner, "uuid", errors.InvalidArgument).
		WithParam(param).
		WithPublicMessage("invalid id")
}
