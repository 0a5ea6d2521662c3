package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// reader wraps an io.Reader with the primitive decode operations the body
// schedule needs: fixed-width little-endian ints/floats, one-byte bools,
// RGB triples, and ULEB128 length-prefixed strings. Every method returns
// ErrCorrupted (wrapped with the underlying cause) on a short read.
type reader struct {
	r io.Reader
}

func newReader(r io.Reader) *reader { return &reader{r: bufio.NewReader(r)} }

func (r *reader) fill(buf []byte) error {
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return errors.Wrap(ErrCorrupted, err.Error())
	}
	return nil
}

func (r *reader) readU8() (uint8, error) {
	var buf [1]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *reader) readBool() (bool, error) {
	b, err := r.readU8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *reader) readI32() (int32, error) {
	var buf [4]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func (r *reader) readU32() (uint32, error) {
	var buf [4]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (r *reader) readI64() (int64, error) {
	var buf [8]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func (r *reader) readU64() (uint64, error) {
	var buf [8]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (r *reader) readU16() (uint16, error) {
	var buf [2]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (r *reader) readF32() (float32, error) {
	bits, err := r.readU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *reader) readRGB() (RGB, error) {
	var buf [3]byte
	if err := r.fill(buf[:]); err != nil {
		return RGB{}, err
	}
	return RGB{R: buf[0], G: buf[1], B: buf[2]}, nil
}

// readULEB128 reads an unsigned LEB128 varint, 7 bits per byte, low-order
// first, high bit set on every byte but the last.
func (r *reader) readULEB128() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.readU8()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return result, nil
}

// readLPString reads a ULEB128-length-prefixed UTF-8 string. The body is
// read in a loop because a single underlying Read call is not guaranteed
// to return the full requested length.
func (r *reader) readLPString() (string, error) {
	length, err := r.readULEB128()
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if err := r.fill(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// writer is the mirror image of reader: every scheduled field the body
// writes goes through one of these methods so the write order can be
// visually diffed against the read order in player.go.
type writer struct {
	w io.Writer
}

func newWriter(w io.Writer) *writer { return &writer{w: w} }

func (w *writer) writeU8(v uint8) error {
	_, err := w.w.Write([]byte{v})
	return err
}

func (w *writer) writeBool(v bool) error {
	if v {
		return w.writeU8(1)
	}
	return w.writeU8(0)
}

func (w *writer) writeI32(v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *writer) writeU32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

func (w *writer) writeI64(v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *writer) writeU64(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

func (w *writer) writeU16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

func (w *writer) writeF32(v float32) error {
	return w.writeU32(math.Float32bits(v))
}

func (w *writer) writeRGB(v RGB) error {
	_, err := w.w.Write([]byte{v.R, v.G, v.B})
	return err
}

// writeULEB128 writes an unsigned LEB128 varint with no redundant trailing
// 0x80 byte; a value of 0 encodes as a single 0x00 byte.
func (w *writer) writeULEB128(v uint64) error {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := w.writeU8(b); err != nil {
			return err
		}
		if v == 0 {
			break
		}
	}
	return nil
}

// writeLPString writes a ULEB128-length-prefixed UTF-8 string. An empty
// string encodes as exactly one 0x00 byte (the ULEB128 encoding of 0),
// never a padded two-byte form.
func (w *writer) writeLPString(s string) error {
	if err := w.writeULEB128(uint64(len(s))); err != nil {
		return err
	}
	_, err := w.w.Write([]byte(s))
	return err
}

// RGB is a three-byte color triple in R, G, B order.
type RGB struct {
	R, G, B uint8
}
