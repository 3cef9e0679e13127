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

package aggregate

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"golang.org/x/crypto/sha3"
)

// ComputeTransactionsHash returns the merkle root of the SHA3-256 hashes of the
// embedded transactions. A level with an odd number of nodes pairs the last node
// with itself. No transactions give the zero hash.
func ComputeTransactionsHash(txs []*common.EmbeddedTransaction) common.Hash256 {
	if len(txs) == 0 {
		return common.Hash256{}
	}
	level := make([]common.Hash256, 0, len(txs))
	for _, tx := range txs {
		level = append(level, common.Sha3256Hash(tx.Bytes()))
	}
	return merkleRoot(level)
}

func merkleRoot(level []common.Hash256) common.Hash256 {
	hasher := sha3.New256()
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]common.Hash256, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			hasher.Reset()
			hasher.Write(level[i][:])
			hasher.Write(level[i+1][:])
			next = append(next, common.NewHash256(hasher.Sum(nil)))
		}
		level = next
	}
	return level[0]
}
