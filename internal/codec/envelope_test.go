package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("a terraria player body, in miniature")

	var buf bytes.Buffer
	require.NoError(t, Encrypt(&buf, plaintext))

	got, err := Decrypt(&buf)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptPadsEvenOnBlockAlignedInput(t *testing.T) {
	plaintext := bytes.Repeat([]byte{0x42}, blockSize*2)

	var buf bytes.Buffer
	require.NoError(t, Encrypt(&buf, plaintext))
	assert.Equal(t, blockSize*3, buf.Len(), "a full extra block of padding is always added")

	got, err := Decrypt(&buf)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecryptRejectsNonBlockMultiple(t *testing.T) {
	_, err := Decrypt(bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestDecryptRejectsEmptyCiphertext(t *testing.T) {
	_, err := Decrypt(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestDecryptRejectsMalformedPadding(t *testing.T) {
	// Encrypt a block whose plaintext ends in a pad byte of 0 directly,
	// bypassing padPKCS7 (which would never produce that), so Decrypt sees
	// ciphertext that decrypts cleanly but has an invalid trailing marker.
	fakePlaintext := make([]byte, blockSize)
	fakePlaintext[blockSize-1] = 0

	block, err := aes.NewCipher(encryptionKey[:])
	require.NoError(t, err)
	mode := cipher.NewCBCEncrypter(block, encryptionKey[:])
	ciphertext := make([]byte, blockSize)
	mode.CryptBlocks(ciphertext, fakePlaintext)

	_, err = Decrypt(bytes.NewReader(ciphertext))
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestEncryptFileDecryptFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.plr")
	plaintext := []byte("plaintext player body")

	require.NoError(t, EncryptFile(path, plaintext))

	got, err := DecryptFile(path)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
