// Copyright 2025 Blink Labs Software
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

package common

import (
	"encoding/base32"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gocatbuffer/cbor"
	"github.com/blinklabs-io/gocatbuffer/wire"
	"golang.org/x/crypto/sha3"
)

const (
	Hash256Size     = 32
	PublicKeySize   = 32
	SignatureSize   = 64
	AddressSize     = 24
	VotingKeySize   = 32
	MosaicIdSize    = 8
	NamespaceIdSize = 8
)

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func fixedBytesCbor(b []byte, size int) ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the value is zero
	tmp := make([]byte, size)
	copy(tmp, b)
	return cbor.Encode(tmp)
}

type Hash256 [Hash256Size]byte

func NewHash256(data []byte) Hash256 {
	h := Hash256{}
	copy(h[:], data)
	return h
}

func (h Hash256) String() string {
	return encodeHex(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash256) MarshalCBOR() ([]byte, error) {
	return fixedBytesCbor(h[:], Hash256Size)
}

func (h *Hash256) Size() int {
	return Hash256Size
}

func (h *Hash256) Encode(w *wire.Writer) {
	w.Write(h[:])
}

func (h *Hash256) Decode(r *wire.Reader) error {
	return r.ReadFull(h[:])
}

// Sha3256Hash generates a SHA3-256 hash from the provided data
func Sha3256Hash(data []byte) Hash256 {
	return Hash256(sha3.Sum256(data))
}

type PublicKey [PublicKeySize]byte

func NewPublicKey(data []byte) PublicKey {
	k := PublicKey{}
	copy(k[:], data)
	return k
}

func (k PublicKey) String() string {
	return encodeHex(k[:])
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k PublicKey) MarshalCBOR() ([]byte, error) {
	return fixedBytesCbor(k[:], PublicKeySize)
}

func (k *PublicKey) Size() int {
	return PublicKeySize
}

func (k *PublicKey) Encode(w *wire.Writer) {
	w.Write(k[:])
}

func (k *PublicKey) Decode(r *wire.Reader) error {
	return r.ReadFull(k[:])
}

// VotingPublicKey is the root key of a finalization voting key tree
type VotingPublicKey [VotingKeySize]byte

func (k VotingPublicKey) String() string {
	return encodeHex(k[:])
}

func (k VotingPublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k VotingPublicKey) MarshalCBOR() ([]byte, error) {
	return fixedBytesCbor(k[:], VotingKeySize)
}

type Signature [SignatureSize]byte

func NewSignature(data []byte) Signature {
	s := Signature{}
	copy(s[:], data)
	return s
}

func (s Signature) String() string {
	return encodeHex(s[:])
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s Signature) MarshalCBOR() ([]byte, error) {
	return fixedBytesCbor(s[:], SignatureSize)
}

// Address is a decoded account address: network byte, key hash and checksum
type Address [AddressSize]byte

func (a Address) String() string {
	return encodeHex(a[:])
}

// Encoded returns the printable base32 form of the address
func (a Address) Encoded() string {
	return addressEncoding.EncodeToString(a[:])
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a Address) MarshalCBOR() ([]byte, error) {
	return fixedBytesCbor(a[:], AddressSize)
}

// UnresolvedAddress is either an Address or a namespace alias standing in for
// one. Alias forms set the low bit of the first byte.
type UnresolvedAddress [AddressSize]byte

func NewUnresolvedAddress(data []byte) UnresolvedAddress {
	a := UnresolvedAddress{}
	copy(a[:], data)
	return a
}

// NewUnresolvedAddressFromString parses either the printable base32 form or
// the hex form of an address
func NewUnresolvedAddressFromString(addr string) (UnresolvedAddress, error) {
	var ret UnresolvedAddress
	var data []byte
	var err error
	switch len(addr) {
	case AddressSize * 2:
		data, err = hex.DecodeString(addr)
	default:
		data, err = addressEncoding.DecodeString(strings.ToUpper(addr))
	}
	if err != nil {
		return ret, fmt.Errorf("decode address: %w", err)
	}
	if len(data) != AddressSize {
		return ret, fmt.Errorf(
			"invalid address length: %d, expected %d",
			len(data),
			AddressSize,
		)
	}
	copy(ret[:], data)
	return ret, nil
}

// IsAlias reports whether the address refers to a namespace
func (a UnresolvedAddress) IsAlias() bool {
	return a[0]&0x01 == 0x01
}

func (a UnresolvedAddress) String() string {
	return encodeHex(a[:])
}

func (a UnresolvedAddress) Encoded() string {
	return addressEncoding.EncodeToString(a[:])
}

func (a UnresolvedAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a UnresolvedAddress) MarshalCBOR() ([]byte, error) {
	return fixedBytesCbor(a[:], AddressSize)
}

func (a *UnresolvedAddress) Size() int {
	return AddressSize
}

func (a *UnresolvedAddress) Encode(w *wire.Writer) {
	w.Write(a[:])
}

func (a *UnresolvedAddress) Decode(r *wire.Reader) error {
	return r.ReadFull(a[:])
}

// Scalar quantities

type Amount uint64

type Timestamp uint64

type BlockDuration uint64

type Height uint64

type FinalizationEpoch uint32

type ScopedMetadataKey uint64

type MosaicNonce uint32

type MosaicId uint64

func (id MosaicId) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}

func (id MosaicId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnresolvedMosaicId is either a MosaicId or a namespace alias for one
type UnresolvedMosaicId uint64

func (id UnresolvedMosaicId) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}

func (id UnresolvedMosaicId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// IsAlias reports whether the id refers to a namespace
func (id UnresolvedMosaicId) IsAlias() bool {
	return uint64(id)>>63 == 1
}

func (id *UnresolvedMosaicId) Size() int {
	return MosaicIdSize
}

func (id *UnresolvedMosaicId) Encode(w *wire.Writer) {
	w.PutUint64(uint64(*id))
}

func (id *UnresolvedMosaicId) Decode(r *wire.Reader) error {
	v, err := r.Uint64()
	if err != nil {
		return err
	}
	*id = UnresolvedMosaicId(v)
	return nil
}

type NamespaceId uint64

func (id NamespaceId) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}

func (id NamespaceId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}
