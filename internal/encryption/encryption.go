// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package encryption

import (
	"bytes"
	"errors"
)

const (
	// saltMagic prefixes every salted OpenSSL envelope.
	saltMagic = "Salted__"

	// saltSize is the size of the random salt in bytes.
	saltSize = 8

	// keySize is the AES-256 key size in bytes.
	keySize = 32

	// ivSize is the CBC initialization vector size (the AES block size).
	ivSize = 16
)

var (
	// ErrUnavailable is returned when the binary was built without encryption support.
	ErrUnavailable = errors.New("encryption support is not available in this build")

	// ErrNoPassphrase is returned when an empty passphrase is provided.
	ErrNoPassphrase = errors.New("encryption passphrase cannot be empty")

	// ErrInvalidEnvelope is returned when a ciphertext is not a salted envelope.
	ErrInvalidEnvelope = errors.New("invalid encrypted envelope")

	// ErrDecryptionFailed is returned when the padding does not verify, usually
	// because the passphrase is wrong.
	ErrDecryptionFailed = errors.New("decryption failed: wrong passphrase or corrupted data")
)

// pad applies PKCS#7 padding up to a multiple of blockSize. A full block of
// padding is added when the input is already aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad strips PKCS#7 padding.
func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecryptionFailed
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrDecryptionFailed
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrDecryptionFailed
		}
	}
	return data[:len(data)-n], nil
}
