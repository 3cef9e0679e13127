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

package lock

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	HashLockVersion    = 1
	SecretLockVersion  = 1
	SecretProofVersion = 1
)

var (
	TransactionKeyHashLock = common.TransactionKey{
		Type:    common.EntityTypeHashLock,
		Version: HashLockVersion,
	}
	TransactionKeySecretLock = common.TransactionKey{
		Type:    common.EntityTypeSecretLock,
		Version: SecretLockVersion,
	}
	TransactionKeySecretProof = common.TransactionKey{
		Type:    common.EntityTypeSecretProof,
		Version: SecretProofVersion,
	}
)

// HashLockBody locks a deposit against the hash of an aggregate bonded
// transaction
type HashLockBody struct {
	Mosaic   common.UnresolvedMosaic `json:"mosaic"`
	Duration common.BlockDuration    `json:"duration"`
	Hash     common.Hash256          `json:"hash"`
}

func (b *HashLockBody) layout() wire.Layout {
	return wire.Layout{
		wire.Struct(&b.Mosaic),
		wire.U64(&b.Duration),
		wire.Struct(&b.Hash),
	}
}

func (b *HashLockBody) TransactionKey() common.TransactionKey {
	return TransactionKeyHashLock
}

func (b *HashLockBody) Size() int {
	return b.layout().Size()
}

func (b *HashLockBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *HashLockBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

type SecretLockBody struct {
	RecipientAddress common.UnresolvedAddress `json:"recipientAddress"`
	Secret           common.Hash256           `json:"secret"`
	Mosaic           common.UnresolvedMosaic  `json:"mosaic"`
	Duration         common.BlockDuration     `json:"duration"`
	HashAlgorithm    common.LockHashAlgorithm `json:"hashAlgorithm"`
}

func (b *SecretLockBody) layout() wire.Layout {
	return wire.Layout{
		wire.Struct(&b.RecipientAddress),
		wire.Struct(&b.Secret),
		wire.Struct(&b.Mosaic),
		wire.U64(&b.Duration),
		wire.U8(&b.HashAlgorithm),
	}
}

func (b *SecretLockBody) TransactionKey() common.TransactionKey {
	return TransactionKeySecretLock
}

func (b *SecretLockBody) Size() int {
	return b.layout().Size()
}

func (b *SecretLockBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *SecretLockBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// SecretProofBody reveals the proof unlocking a secret lock. The proof size
// comes before the hash algorithm on the wire.
type SecretProofBody struct {
	RecipientAddress common.UnresolvedAddress `json:"recipientAddress"`
	Secret           common.Hash256           `json:"secret"`
	HashAlgorithm    common.LockHashAlgorithm `json:"hashAlgorithm"`
	Proof            []byte                   `json:"proof,omitempty"`
}

func NewSecretProofBody(
	recipient common.UnresolvedAddress,
	secret common.Hash256,
	hashAlgorithm common.LockHashAlgorithm,
	proof []byte,
) (*SecretProofBody, error) {
	if err := common.CheckPrefix("proof", len(proof), 2); err != nil {
		return nil, err
	}
	ret := &SecretProofBody{
		RecipientAddress: recipient,
		Secret:           secret,
		HashAlgorithm:    hashAlgorithm,
	}
	if len(proof) > 0 {
		ret.Proof = proof
	}
	return ret, nil
}

func (b *SecretProofBody) layout() wire.Layout {
	proofSize := wire.LengthPrefix(2, &b.Proof)
	return wire.Layout{
		wire.Struct(&b.RecipientAddress),
		wire.Struct(&b.Secret),
		proofSize,
		wire.U8(&b.HashAlgorithm),
		wire.Blob(&b.Proof, proofSize),
	}
}

func (b *SecretProofBody) TransactionKey() common.TransactionKey {
	return TransactionKeySecretProof
}

func (b *SecretProofBody) Size() int {
	return b.layout().Size()
}

func (b *SecretProofBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *SecretProofBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
