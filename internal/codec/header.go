package codec

import "github.com/cockroachdb/errors"

// Header is the L3 framed header every player save begins with.
type Header struct {
	Version    int32
	Revision   uint32
	Favourited uint64
	Name       string
}

// readHeader consumes the framed header from r, validating the version
// ceiling and (for version >= 135) the magic number and file-type
// discriminant.
func readHeader(r *reader) (Header, error) {
	version, err := r.readI32()
	if err != nil {
		return Header{}, err
	}
	if version > CurrentVersion {
		return Header{}, errors.WithStack(&PostDatedError{Version: version})
	}

	h := Header{Version: version}

	if version >= 135 {
		magic, err := r.readU64()
		if err != nil {
			return Header{}, err
		}
		low := magic & magicMask
		fileType := FileType(magic >> 56)
		if low != magicNumber {
			return Header{}, errors.Wrapf(ErrIncorrectFormat, "magic low bits 0x%014x", low)
		}
		if fileType != FileTypePlayer {
			return Header{}, errors.Wrapf(ErrIncorrectFileType, "file type %d", fileType)
		}

		revision, err := r.readU32()
		if err != nil {
			return Header{}, err
		}
		favourited, err := r.readU64()
		if err != nil {
			return Header{}, err
		}
		h.Revision = revision
		h.Favourited = favourited
	}

	name, err := r.readLPString()
	if err != nil {
		return Header{}, err
	}
	h.Name = name

	return h, nil
}

// writeHeader emits the framed header, reproducing the exact on-disk
// layout for h.Version (the version that was read, never up-converted).
func writeHeader(w *writer, h Header) error {
	if err := w.writeI32(h.Version); err != nil {
		return err
	}

	if h.Version >= 135 {
		magic := magicNumber | (uint64(FileTypePlayer) << 56)
		if err := w.writeU64(magic); err != nil {
			return err
		}
		if err := w.writeU32(h.Revision); err != nil {
			return err
		}
		if err := w.writeU64(h.Favourited); err != nil {
			return err
		}
	}

	return w.writeLPString(h.Name)
}
