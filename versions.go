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

// DefaultPayloadSize is the payload length assumed for version bytes without
// an explicit registration
const DefaultPayloadSize = 20

// Address version definitions
var (
	VersionMainnetPubKeyHash = AddressVersion{
		Id:          0x00,
		Name:        "mainnet",
		PayloadSize: 20,
	}
	VersionMainnetScriptHash = AddressVersion{
		Id:          0x05,
		Name:        "mainnet-script",
		PayloadSize: 20,
	}
	VersionTestnetPubKeyHash = AddressVersion{
		Id:          0x6F,
		Name:        "testnet",
		PayloadSize: 20,
	}

	VersionInvalid = AddressVersion{
		Id:          0,
		Name:        "invalid",
		PayloadSize: 0,
	} // VersionInvalid is used as a return value for name lookups when a version isn't found
)

// List of known versions for use in lookup functions
var addressVersions = []AddressVersion{
	VersionMainnetPubKeyHash,
	VersionMainnetScriptHash,
	VersionTestnetPubKeyHash,
}

// VersionByName returns a predefined address version by name
func VersionByName(name string) AddressVersion {
	for _, version := range addressVersions {
		if version.Name == name {
			return version
		}
	}
	return VersionInvalid
}

// VersionById returns the address version for the provided version byte.
// Version bytes without an explicit registration are still usable and get
// the default payload size, so that any well-formed address round-trips.
func VersionById(id byte) AddressVersion {
	for _, version := range addressVersions {
		if version.Id == id {
			return version
		}
	}
	return AddressVersion{
		Id:          id,
		Name:        "unknown",
		PayloadSize: DefaultPayloadSize,
	}
}

// RegisterVersion adds an address version to the lookup tables, replacing
// any existing entry with the same version byte. It is intended to be called
// during startup and is not safe for concurrent use with lookups.
func RegisterVersion(version AddressVersion) {
	for i := range addressVersions {
		if addressVersions[i].Id == version.Id {
			addressVersions[i] = version
			return
		}
	}
	addressVersions = append(addressVersions, version)
}

// AddressVersion describes an address class: its leading version byte and
// the fixed payload length for that class
type AddressVersion struct {
	Id          byte // version byte used as the address prefix
	Name        string
	PayloadSize int
}

func (v AddressVersion) String() string {
	return v.Name
}
