// Copyright 2026 Zerite Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zerite implements parsing, validation, serialization, and display
// of Zerite network addresses. Addresses use Base58Check encoding: a version
// byte identifying the address class, a fixed-length payload, and a 4-byte
// double-SHA256 checksum over the version and payload.
package zerite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeritelabs/gozerite/base58"
	"github.com/zeritelabs/gozerite/cbor"
)

const (
	// CompressedPubKeySize and UncompressedPubKeySize are the accepted
	// public key lengths for address derivation
	CompressedPubKeySize   = 33
	UncompressedPubKeySize = 65

	// shortPrefixSize and shortSuffixSize are the number of characters kept
	// from either end of the textual form in the abbreviated display
	shortPrefixSize = 6
	shortSuffixSize = 5
	shortSeparator  = ".."
)

var (
	// ErrMalformedAddress is returned when address text contains a character
	// outside the Base58 alphabet
	ErrMalformedAddress = errors.New("malformed address")
	// ErrAddressTooShort is returned when decoded address bytes are shorter
	// than the minimum for the claimed version
	ErrAddressTooShort = errors.New("address too short")
	// ErrWrongAddressLength is returned when decoded address bytes don't
	// match the exact expected length for the claimed version
	ErrWrongAddressLength = errors.New("wrong address length")
	// ErrChecksumMismatch is returned when the decoded checksum doesn't
	// match the recomputed checksum, indicating corruption or a non-address
	// string
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrInvalidPubKey is returned when deriving an address from a public
	// key of unexpected length
	ErrInvalidPubKey = errors.New("invalid public key length")
)

// Address represents a validated Zerite address: a version byte identifying
// the address class plus a fixed-length payload (typically a hash of a
// public key). An Address is immutable after construction and only exists
// in a valid state; construction fails rather than producing a value that
// violates the length or checksum invariants.
type Address struct {
	version byte
	payload []byte
}

// NewAddress returns an Address based on the provided Base58Check address
// string. The decoded bytes must carry the exact length for the claimed
// version and a checksum matching the first bytes of the double-SHA256
// digest of the version byte and payload.
func NewAddress(addr string) (Address, error) {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrMalformedAddress, err)
	}
	if len(decoded) < 1+ChecksumSize {
		return Address{}, fmt.Errorf(
			"%w: %d bytes",
			ErrAddressTooShort,
			len(decoded),
		)
	}
	version := VersionById(decoded[0])
	expectedLen := 1 + version.PayloadSize + ChecksumSize
	if len(decoded) < expectedLen {
		return Address{}, fmt.Errorf(
			"%w: %d bytes, expected %d",
			ErrAddressTooShort,
			len(decoded),
			expectedLen,
		)
	}
	if len(decoded) != expectedLen {
		return Address{}, fmt.Errorf(
			"%w: %d bytes, expected %d",
			ErrWrongAddressLength,
			len(decoded),
			expectedLen,
		)
	}
	body := decoded[:len(decoded)-ChecksumSize]
	claimedChecksum := decoded[len(decoded)-ChecksumSize:]
	expectedChecksum := AddressChecksum(body)
	if !bytes.Equal(claimedChecksum, expectedChecksum[:]) {
		return Address{}, ErrChecksumMismatch
	}
	return newAddress(decoded[0], body[1:]), nil
}

// NewAddressFromBytes returns an Address based on the raw version and
// payload bytes provided, such as those from an already-validated network
// message. No checksum is present in this form, but the payload length is
// still checked against the expected size for the version byte.
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	if len(addrBytes) < 1 {
		return Address{}, fmt.Errorf("%w: empty input", ErrAddressTooShort)
	}
	return NewAddressFromParts(addrBytes[0], addrBytes[1:])
}

// NewAddressFromParts returns an Address based on the individual parts of
// the address that are provided
func NewAddressFromParts(version byte, payload []byte) (Address, error) {
	expectedSize := VersionById(version).PayloadSize
	if len(payload) != expectedSize {
		return Address{}, fmt.Errorf(
			"%w: %d byte payload, expected %d",
			ErrWrongAddressLength,
			len(payload),
			expectedSize,
		)
	}
	return newAddress(version, payload), nil
}

// NewAddressFromPubKey derives an Address from a public key by hashing it
// with SHA-256 followed by RIPEMD160. The public key must be in compressed
// (33 byte) or uncompressed (65 byte) form.
func NewAddressFromPubKey(version byte, pubKey []byte) (Address, error) {
	if len(pubKey) != CompressedPubKeySize &&
		len(pubKey) != UncompressedPubKeySize {
		return Address{}, fmt.Errorf(
			"%w: expected %d or %d bytes, got %d",
			ErrInvalidPubKey,
			CompressedPubKeySize,
			UncompressedPubKeySize,
			len(pubKey),
		)
	}
	return NewAddressFromParts(version, Hash160(pubKey))
}

func newAddress(version byte, payload []byte) Address {
	return Address{
		version: version,
		payload: bytes.Clone(payload),
	}
}

// Version returns the address version byte
func (a Address) Version() byte {
	return a.version
}

// Payload returns a copy of the address payload bytes
func (a Address) Payload() []byte {
	return bytes.Clone(a.payload)
}

// Bytes returns the raw version and payload bytes for the address. This is
// the structured serialization form and carries no checksum.
func (a Address) Bytes() []byte {
	ret := make([]byte, 0, 1+len(a.payload))
	ret = append(ret, a.version)
	ret = append(ret, a.payload...)
	return ret
}

// Checksum returns the checksum bytes that appear in the textual form of
// the address. The checksum is recomputed from the version and payload
// rather than cached.
func (a Address) Checksum() [ChecksumSize]byte {
	return AddressChecksum(a.Bytes())
}

// ContentHash returns the double-SHA256 digest of the version and payload
// bytes, usable as a stable identifier for the address independent of its
// textual encoding
func (a Address) ContentHash() Hash256 {
	return DoubleSha256Hash(a.Bytes())
}

// Equal returns whether the provided address has the same version and
// payload
func (a Address) Equal(other Address) bool {
	return a.version == other.version &&
		bytes.Equal(a.payload, other.payload)
}

// String returns the Base58Check-encoded version of the address
func (a Address) String() string {
	checksum := a.Checksum()
	return base58.Encode(append(a.Bytes(), checksum[:]...))
}

// ShortString returns an abbreviated display form of the address: a fixed
// prefix and suffix of the textual form joined by "..". It is lossy and
// intended for logs and UIs only, never for equality or lookup.
func (a Address) ShortString() string {
	text := a.String()
	if len(text) <= shortPrefixSize+shortSuffixSize+len(shortSeparator) {
		return text
	}
	return text[:shortPrefixSize] +
		shortSeparator +
		text[len(text)-shortSuffixSize:]
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	tmpData := []byte{}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	tmpAddr, err := NewAddressFromBytes(tmpData)
	if err != nil {
		return err
	}
	*a = tmpAddr
	return nil
}

func (a Address) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(a.Bytes())
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var tmpText string
	if err := json.Unmarshal(data, &tmpText); err != nil {
		return err
	}
	tmpAddr, err := NewAddress(tmpText)
	if err != nil {
		return err
	}
	*a = tmpAddr
	return nil
}
