// Package user models customers and the credential that authenticates them.
//
// A Credential is a random salt plus a PBKDF2-HMAC-SHA256 verifier. Plaintext
// passwords are never stored or compared: verification re-derives the key from the
// candidate and the stored salt and compares in constant time.
package user
