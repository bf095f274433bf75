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

// Package base58 implements the Base58 encoding used by Zerite addresses.
// It covers only the raw base conversion; checksum handling lives in the
// address layer so that "is this valid base-58 text" and "is this a valid
// address" can be tested independently.
package base58

import (
	"fmt"
	"math/big"
)

// Alphabet is the Base58 character set. It omits the visually ambiguous
// characters 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// zeroChar encodes a leading zero byte, which carries no numeric magnitude
const zeroChar byte = '1'

var bigRadix = big.NewInt(58)

// decodeMap maps an input byte to its alphabet value, or 0xFF for bytes
// outside the alphabet
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = 0xFF
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// InvalidCharacterError is returned by Decode when the input contains a
// character outside the Base58 alphabet
type InvalidCharacterError struct {
	Char     byte
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf(
		"invalid base58 character %q at position %d",
		e.Char,
		e.Position,
	)
}

// Encode returns the Base58 encoding of the provided bytes. The input is
// treated as a big-endian unsigned integer, and each leading zero byte is
// preserved as a leading '1' since it contributes no magnitude to the
// numeric conversion. An empty input encodes to an empty string.
func Encode(data []byte) string {
	x := new(big.Int).SetBytes(data)
	mod := new(big.Int)
	// Digits come out least-significant first
	ret := make([]byte, 0, len(data)*138/100+1)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		ret = append(ret, Alphabet[mod.Int64()])
	}
	for _, b := range data {
		if b != 0 {
			break
		}
		ret = append(ret, zeroChar)
	}
	// Reverse into most-significant-first order
	for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
		ret[i], ret[j] = ret[j], ret[i]
	}
	return string(ret)
}

// Decode returns the bytes represented by the provided Base58 string. Each
// leading '1' is translated back into a leading zero byte. It returns an
// InvalidCharacterError if any character falls outside the alphabet. No
// checksum validation is performed.
func Decode(text string) ([]byte, error) {
	x := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < len(text); i++ {
		val := decodeMap[text[i]]
		if val == 0xFF {
			return nil, &InvalidCharacterError{
				Char:     text[i],
				Position: i,
			}
		}
		x.Mul(x, bigRadix)
		x.Add(x, tmp.SetInt64(int64(val)))
	}
	decoded := x.Bytes()
	var numZeros int
	for numZeros < len(text) && text[numZeros] == zeroChar {
		numZeros++
	}
	ret := make([]byte, numZeros+len(decoded))
	copy(ret[numZeros:], decoded)
	return ret, nil
}
