package codec

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors forming the codec's error taxonomy. Callers compare
// with errors.Is; the codec attaches context with errors.Wrapf and, for
// PostDatedError, a typed wrapper, so the sentinel survives through a
// chain of causes.
var (
	// ErrIncorrectFormat is returned when the post-v135 magic number's low
	// 56 bits don't spell "relogic".
	ErrIncorrectFormat = errors.New("not a Re-Logic save file")

	// ErrIncorrectFileType is returned when the magic number's file-type
	// byte isn't the player discriminant.
	ErrIncorrectFileType = errors.New("file is not a player save")

	// ErrCorrupted covers PKCS#7 unpadding failures and any short read
	// inside a scheduled field.
	ErrCorrupted = errors.New("save data is corrupted")

	// ErrOnlyIDOrInternalName is a programmer-contract violation in the
	// item codec: exactly one of id/internalName must be requested.
	ErrOnlyIDOrInternalName = errors.New("item codec requires exactly one of id or internal name")

	// ErrInvalidBitIndex is returned by BoolByte when addressed at an
	// index outside [0,8).
	ErrInvalidBitIndex = errors.New("bit index out of range")

	// errPostDatedSentinel is the identity PostDatedError.Is compares
	// against, so callers can write errors.Is(err, ErrPostDated) without
	// needing to know about the typed wrapper.
	errPostDatedSentinel = errors.New("save is from a newer game version than this codec supports")
)

// ErrPostDated is the sentinel callers match against with errors.Is when a
// load fails because the file's version exceeds CurrentVersion.
var ErrPostDated error = errPostDatedSentinel

// PostDatedError carries the offending version alongside the ErrPostDated
// identity.
type PostDatedError struct {
	Version int32
}

func (e *PostDatedError) Error() string {
	return errors.Wrapf(errPostDatedSentinel, "file version %d, current version %d", e.Version, CurrentVersion).Error()
}

// Is lets errors.Is(err, ErrPostDated) succeed for a *PostDatedError.
func (e *PostDatedError) Is(target error) bool {
	return target == errPostDatedSentinel
}
