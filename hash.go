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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/zeritelabs/gozerite/cbor"
	"golang.org/x/crypto/ripemd160"
)

const (
	Hash256Size = 32
	Hash160Size = 20

	// ChecksumSize is the number of leading double-SHA256 bytes appended to
	// the textual form of an address for error detection
	ChecksumSize = 4
)

type Hash256 [Hash256Size]byte

func NewHash256(data []byte) Hash256 {
	h := Hash256{}
	copy(h[:], data)
	return h
}

func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash256) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the hash is zero-valued
	hashBytes := make([]byte, Hash256Size)
	copy(hashBytes, h[:])
	return cbor.Encode(hashBytes)
}

// Sha256Hash generates a SHA-256 hash from the provided data
func Sha256Hash(data []byte) Hash256 {
	return Hash256(sha256.Sum256(data))
}

// DoubleSha256Hash generates a SHA-256 hash of the SHA-256 hash of the
// provided data
func DoubleSha256Hash(data []byte) Hash256 {
	first := sha256.Sum256(data)
	return Hash256(sha256.Sum256(first[:]))
}

// AddressChecksum returns the first bytes of the double-SHA256 digest of the
// provided data, used for transcription error detection in the textual
// address form
func AddressChecksum(data []byte) [ChecksumSize]byte {
	digest := DoubleSha256Hash(data)
	var ret [ChecksumSize]byte
	copy(ret[:], digest[:ChecksumSize])
	return ret
}

// Hash160 generates a RIPEMD160 hash of the SHA-256 hash of the provided
// data, used to derive an address payload from a public key
func Hash160(data []byte) []byte {
	first := sha256.Sum256(data)
	hasher := ripemd160.New()
	hasher.Write(first[:])
	return hasher.Sum(nil)
}
