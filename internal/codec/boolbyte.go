package codec

import "github.com/cockroachdb/errors"

// BoolByte packs 8 booleans into a single byte, bit i holding flag i. It is
// used throughout the body schedule for condensed flag groups (hide-visual
// masks, temporary-slot presence, loadout visibility) instead of one byte
// per flag on the wire.
type BoolByte struct {
	value uint8
}

// NewBoolByte wraps a raw byte already read from the wire.
func NewBoolByte(v uint8) BoolByte { return BoolByte{value: v} }

// Byte returns the packed representation to write back to the wire.
func (b BoolByte) Byte() uint8 { return b.value }

func checkBitIndex(i int) error {
	if i < 0 || i >= 8 {
		return errors.Wrapf(ErrInvalidBitIndex, "index %d", i)
	}
	return nil
}

// Get reports whether bit i is set. i must be in [0,8).
func (b BoolByte) Get(i int) (bool, error) {
	if err := checkBitIndex(i); err != nil {
		return false, err
	}
	return b.value&(1<<uint(i)) != 0, nil
}

// Set assigns bit i. i must be in [0,8).
func (b *BoolByte) Set(i int, v bool) error {
	if err := checkBitIndex(i); err != nil {
		return err
	}
	if v {
		b.value |= 1 << uint(i)
	} else {
		b.value &^= 1 << uint(i)
	}
	return nil
}

func (r *reader) readBoolByte() (BoolByte, error) {
	v, err := r.readU8()
	if err != nil {
		return BoolByte{}, err
	}
	return NewBoolByte(v), nil
}

func (w *writer) writeBoolByte(b BoolByte) error {
	return w.writeU8(b.Byte())
}
