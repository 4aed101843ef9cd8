// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package encryption produces the salted AES envelope Geckoboard accepts for
encrypted custom widget feeds.

The format is the one written by "openssl enc -aes-256-cbc -md md5 -a":

	base64("Salted__" || salt[8] || AES-256-CBC(PKCS#7(plaintext)))

The 32-byte key and 16-byte IV are derived from the passphrase and salt with
OpenSSL's EVP_BytesToKey (MD5, one iteration). A fresh salt is drawn from
crypto/rand for every call, so encrypting the same body twice gives
different envelopes.

Geckoboard decrypts the envelope with the password configured on the widget,
so the passphrase here must match it.

# Build Tags

Building with the noencryption tag compiles the package without the cipher.
Available is then false, Encrypt and Decrypt return ErrUnavailable, and the
feed constructors refuse encrypted feeds at startup.

# Example

	envelope, err := encryption.Encrypt(body, "widget-password")
	if err != nil {
	    return err
	}
	// envelope is written as the response body

# Thread Safety

All functions are safe for concurrent use.
*/
package encryption
