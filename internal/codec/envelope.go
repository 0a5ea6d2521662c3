package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// blockSize is the AES block size; PKCS#7 padding is always computed
// against it regardless of key size.
const blockSize = aes.BlockSize

// Decrypt reads an AES-128-CBC encrypted player save from r, strips its
// PKCS#7 padding, and returns the plaintext framed body. The key and IV
// are both the game's hard-coded encryption key; callers never supply
// their own.
func Decrypt(r io.Reader) ([]byte, error) {
	ciphertext, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(ErrCorrupted, err.Error())
	}
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, errors.Wrapf(ErrCorrupted, "ciphertext length %d is not a nonzero multiple of the block size", len(ciphertext))
	}

	block, err := aes.NewCipher(encryptionKey[:])
	if err != nil {
		return nil, errors.Wrap(err, "constructing AES cipher")
	}
	mode := cipher.NewCBCDecrypter(block, encryptionKey[:])
	plaintext := make([]byte, len(ciphertext))
	mode.CryptBlocks(plaintext, ciphertext)

	return unpadPKCS7(plaintext)
}

// Encrypt pads plaintext with PKCS#7 to a block boundary and writes the
// AES-128-CBC ciphertext to w. Unlike a minimal PKCS#7 implementation, a
// plaintext whose length is already a multiple of the block size still
// receives one full block of padding — this mirrors the envelope the host
// game itself produces and is required for byte-identical round-tripping.
func Encrypt(w io.Writer, plaintext []byte) error {
	block, err := aes.NewCipher(encryptionKey[:])
	if err != nil {
		return errors.Wrap(err, "constructing AES cipher")
	}

	padded := padPKCS7(plaintext, blockSize)
	mode := cipher.NewCBCEncrypter(block, encryptionKey[:])
	ciphertext := make([]byte, len(padded))
	mode.CryptBlocks(ciphertext, padded)

	if _, err := w.Write(ciphertext); err != nil {
		return errors.Wrap(err, "writing ciphertext")
	}
	return nil
}

func padPKCS7(data []byte, size int) []byte {
	padLen := size - len(data)%size
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func unpadPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrCorrupted, "empty plaintext after decryption")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.Wrapf(ErrCorrupted, "invalid PKCS#7 padding length %d", padLen)
	}
	if !bytes.Equal(data[len(data)-padLen:], bytes.Repeat([]byte{byte(padLen)}, padLen)) {
		return nil, errors.Wrap(ErrCorrupted, "malformed PKCS#7 padding bytes")
	}
	return data[:len(data)-padLen], nil
}

// DecryptFile decrypts the player save at path and returns its plaintext
// framed body.
func DecryptFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return Decrypt(f)
}

// EncryptFile encrypts plaintext and writes it to path, creating or
// truncating the file as needed.
func EncryptFile(path string, plaintext []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := Encrypt(f, plaintext); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
