// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

//go:build !noencryption

package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // EVP_BytesToKey is defined over MD5
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Available reports whether this build can encrypt feeds.
const Available = true

// Encrypt encrypts plaintext with passphrase and returns the base64 salted
// envelope.
//
// Returns ErrNoPassphrase if passphrase is empty.
func Encrypt(plaintext []byte, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrNoPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	return encryptWithSalt(plaintext, passphrase, salt)
}

func encryptWithSalt(plaintext []byte, passphrase string, salt []byte) (string, error) {
	key, iv := deriveKeyIV([]byte(passphrase), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	out := make([]byte, len(saltMagic)+saltSize+len(padded))
	copy(out, saltMagic)
	copy(out[len(saltMagic):], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[len(saltMagic)+saltSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. It also accepts the line-wrapped base64 written
// by "openssl enc -a".
func Decrypt(envelope, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrNoPassphrase
	}

	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(envelope), ""))
	if err != nil {
		return nil, fmt.Errorf("%w: base64 decode failed: %s", ErrInvalidEnvelope, err.Error())
	}

	header := len(saltMagic) + saltSize
	if len(data) < header+aes.BlockSize || string(data[:len(saltMagic)]) != saltMagic {
		return nil, ErrInvalidEnvelope
	}
	body := data[header:]
	if len(body)%aes.BlockSize != 0 {
		return nil, ErrInvalidEnvelope
	}

	key, iv := deriveKeyIV([]byte(passphrase), data[len(saltMagic):header])
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)
	return unpad(plain, aes.BlockSize)
}

// deriveKeyIV implements EVP_BytesToKey with MD5 and a single iteration:
// D_1 = MD5(pass || salt), D_i = MD5(D_{i-1} || pass || salt), until enough
// bytes exist for the key followed by the IV.
func deriveKeyIV(passphrase, salt []byte) (key, iv []byte) {
	var derived, prev []byte
	for len(derived) < keySize+ivSize {
		h := md5.New() //nolint:gosec // see import
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keySize], derived[keySize : keySize+ivSize]
}
