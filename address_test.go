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

package zerite

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeritelabs/gozerite/internal/test"
)

func TestNewAddress(t *testing.T) {
	testDefs := []struct {
		address            string
		expectedVersion    byte
		expectedPayloadHex string
	}{
		{
			address:            "1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM",
			expectedVersion:    0x00,
			expectedPayloadHex: "b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a",
		},
		{
			address:            "mxGg2TNcvLs5wKgMqQysqQtcEqYEg3Azn3",
			expectedVersion:    0x6F,
			expectedPayloadHex: "b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a",
		},
		{
			address:            "3JSjewn5fDkDFNuBEwg6S83DXNEFMkFiuN",
			expectedVersion:    0x05,
			expectedPayloadHex: "b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a",
		},
		// Address seen in the wild on the original network
		{
			address:            "1HeLLo4uzjaLetFx6NH3PMwFP3qbRbTf3D",
			expectedVersion:    0x00,
			expectedPayloadHex: "b6918c64e4994ef65dade5087e97c85e8ce31a52",
		},
		// All-zero payload encodes to a run of leading '1' characters
		{
			address:            "1111111111111111111114oLvT2",
			expectedVersion:    0x00,
			expectedPayloadHex: "0000000000000000000000000000000000000000",
		},
	}
	for _, testDef := range testDefs {
		addr, err := NewAddress(testDef.address)
		if err != nil {
			t.Fatalf(
				"failure parsing address %q: %s",
				testDef.address,
				err,
			)
		}
		if addr.Version() != testDef.expectedVersion {
			t.Fatalf(
				"version did not match expected value, got: %d, wanted: %d",
				addr.Version(),
				testDef.expectedVersion,
			)
		}
		assert.Equal(
			t,
			test.DecodeHexString(testDef.expectedPayloadHex),
			addr.Payload(),
		)
		if addr.String() != testDef.address {
			t.Fatalf(
				"address did not round-trip, got: %s, wanted: %s",
				addr.String(),
				testDef.address,
			)
		}
	}
}

func TestNewAddressFailure(t *testing.T) {
	testDefs := []struct {
		address     string
		expectedErr error
	}{
		{
			address:     "",
			expectedErr: ErrAddressTooShort,
		},
		{
			address:     "0ABC",
			expectedErr: ErrMalformedAddress,
		},
		{
			address:     "1HkijQHe7KRqADCk7r1W1VgHNqwX",
			expectedErr: ErrAddressTooShort,
		},
		// Valid address with the last character changed
		{
			address:     "1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsN",
			expectedErr: ErrChecksumMismatch,
		},
		// Valid address with one extra leading '1' (extra zero byte)
		{
			address:     "11HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM",
			expectedErr: ErrWrongAddressLength,
		},
	}
	for _, testDef := range testDefs {
		_, err := NewAddress(testDef.address)
		if err == nil {
			t.Fatalf(
				"did not get expected error parsing %q",
				testDef.address,
			)
		}
		if !errors.Is(err, testDef.expectedErr) {
			t.Fatalf(
				"error did not match expected value for %q, got: %s, wanted: %s",
				testDef.address,
				err,
				testDef.expectedErr,
			)
		}
	}
}

func TestChecksumSensitivity(t *testing.T) {
	// Flipping any single character of a valid address must never produce
	// another valid address with different bytes
	const valid = "1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM"
	original, err := NewAddress(valid)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := 0; i < len(valid); i++ {
		for _, c := range []byte{'1', '2', 'z', 'Q'} {
			if valid[i] == c {
				continue
			}
			mutated := valid[:i] + string(c) + valid[i+1:]
			addr, err := NewAddress(mutated)
			if err == nil && !addr.Equal(original) {
				t.Fatalf(
					"mutated address %q unexpectedly parsed to different bytes",
					mutated,
				)
			}
		}
	}
}

func TestNewAddressFromBytes(t *testing.T) {
	addrBytes := test.DecodeHexString(
		"00b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a",
	)
	addr, err := NewAddressFromBytes(addrBytes)
	if err != nil {
		t.Fatalf("failure populating address from bytes: %s", err)
	}
	if addr.String() != "1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM" {
		t.Fatalf(
			"address did not match expected value, got: %s",
			addr.String(),
		)
	}
	assert.Equal(t, addrBytes, addr.Bytes())
}

func TestNewAddressFromBytesFailure(t *testing.T) {
	testDefs := []struct {
		addrBytesHex string
		expectedErr  error
	}{
		{
			addrBytesHex: "",
			expectedErr:  ErrAddressTooShort,
		},
		{
			addrBytesHex: "00b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec",
			expectedErr:  ErrWrongAddressLength,
		},
		{
			addrBytesHex: "00b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9aff",
			expectedErr:  ErrWrongAddressLength,
		},
	}
	for _, testDef := range testDefs {
		_, err := NewAddressFromBytes(
			test.DecodeHexString(testDef.addrBytesHex),
		)
		if !errors.Is(err, testDef.expectedErr) {
			t.Fatalf(
				"error did not match expected value, got: %s, wanted: %s",
				err,
				testDef.expectedErr,
			)
		}
	}
}

func TestNewAddressFromParts(t *testing.T) {
	payload := test.DecodeHexString("b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a")
	addr, err := NewAddressFromParts(0x00, payload)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if addr.String() != "1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM" {
		t.Fatalf(
			"address did not match expected value, got: %s",
			addr.String(),
		)
	}
	// Mutating the input slice must not affect the constructed address
	payload[0] = 0xFF
	assert.Equal(
		t,
		test.DecodeHexString("b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a"),
		addr.Payload(),
	)
}

func TestNewAddressFromPubKey(t *testing.T) {
	// Compressed secp256k1 public key for private key 1, and its well-known
	// version 0x00 address
	pubKey := test.DecodeHexString(
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	)
	addr, err := NewAddressFromPubKey(0x00, pubKey)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if addr.String() != "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH" {
		t.Fatalf(
			"address did not match expected value, got: %s",
			addr.String(),
		)
	}
	_, err = NewAddressFromPubKey(0x00, pubKey[:16])
	if !errors.Is(err, ErrInvalidPubKey) {
		t.Fatalf("did not get expected error, got: %s", err)
	}
}

func TestAddressContentHash(t *testing.T) {
	addr, err := NewAddress("1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "8252f5b4fc35de58bc0205b70c7f6067cc5c1fce33fa1549a1c166bc36badd4a"
	if addr.ContentHash().String() != expected {
		t.Fatalf(
			"content hash did not match expected value, got: %s, wanted: %s",
			addr.ContentHash().String(),
			expected,
		)
	}
	// The checksum is the leading bytes of the content hash
	checksum := addr.Checksum()
	assert.Equal(t, addr.ContentHash().Bytes()[:ChecksumSize], checksum[:])
}

func TestAddressShortString(t *testing.T) {
	testDefs := []struct {
		address  string
		expected string
	}{
		{
			address:  "1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM",
			expected: "1HkijQ..MzSsM",
		},
		{
			address:  "16L5yRNPTuciSgXGHqYwn9N6NeoKqopAu",
			expected: "16L5yR..qopAu",
		},
	}
	for _, testDef := range testDefs {
		addr, err := NewAddress(testDef.address)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if addr.ShortString() != testDef.expected {
			t.Fatalf(
				"short form did not match expected value, got: %s, wanted: %s",
				addr.ShortString(),
				testDef.expected,
			)
		}
	}
}

func TestAddressCbor(t *testing.T) {
	addr, err := NewAddress("1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsM")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	cborData, err := addr.MarshalCBOR()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	assert.Equal(
		t,
		test.DecodeHexString("5500b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a"),
		cborData,
	)
	var decoded Address
	if err := decoded.UnmarshalCBOR(cborData); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !decoded.Equal(addr) {
		t.Fatalf(
			"address did not round-trip through CBOR, got: %s, wanted: %s",
			decoded.String(),
			addr.String(),
		)
	}
}

func TestAddressCborWrongLength(t *testing.T) {
	// 20-byte bytestring: version byte plus truncated payload
	var decoded Address
	err := decoded.UnmarshalCBOR(
		test.DecodeHexString("5400b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec"),
	)
	if !errors.Is(err, ErrWrongAddressLength) {
		t.Fatalf("did not get expected error, got: %s", err)
	}
}

func TestAddressJson(t *testing.T) {
	addr, err := NewAddress("1HeLLo4uzjaLetFx6NH3PMwFP3qbRbTf3D")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	jsonData, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	assert.Equal(
		t,
		`"1HeLLo4uzjaLetFx6NH3PMwFP3qbRbTf3D"`,
		string(jsonData),
	)
	var decoded Address
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !decoded.Equal(addr) {
		t.Fatalf("address did not round-trip through JSON")
	}
	// Checksum validation applies on the way in
	err = json.Unmarshal(
		[]byte(`"1HkijQHe7KRqADCk7r1W1VgHNqwXnMzSsN"`),
		&decoded,
	)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("did not get expected error, got: %s", err)
	}
}

func TestAddressRoundTripRegisteredVersion(t *testing.T) {
	RegisterVersion(AddressVersion{
		Id:          0x1C,
		Name:        "wide",
		PayloadSize: 28,
	})
	payload := test.DecodeHexString(
		"b7c6bbf6a4cbb4c49e84a4d6d12fa1a467d1ec9a0011223344556677",
	)
	addr, err := NewAddressFromParts(0x1C, payload)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	decoded, err := NewAddress(addr.String())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !decoded.Equal(addr) {
		t.Fatalf(
			"address did not round-trip, got: %s, wanted: %s",
			decoded.String(),
			addr.String(),
		)
	}
}
