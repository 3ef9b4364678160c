package model

import "github.com/cockroachdb/errors"

// Errors returned by the artifact loaders. Use errors.Is to test for them;
// the returned error carries the file path and the failing detail.
var (
	// ErrInvalidArtifact means a file decoded but does not describe a usable model
	ErrInvalidArtifact = errors.New("invalid model artifact")

	// ErrUnsupportedType means the artifact names a model type this service cannot run
	ErrUnsupportedType = errors.New("unsupported artifact type")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArtifact, format, args...)
}
