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
	"encoding/json"
	"fmt"
	"strings"
)

type NetworkType uint8

const (
	NetworkTypeMainnet NetworkType = 104
	NetworkTypeTestnet NetworkType = 152
)

func (n NetworkType) String() string {
	switch n {
	case NetworkTypeMainnet:
		return "mainnet"
	case NetworkTypeTestnet:
		return "testnet"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(n))
	}
}

func (n NetworkType) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// EntityType is the 16-bit code identifying a transaction's concrete kind
type EntityType uint16

const (
	EntityTypeAccountKeyLink              EntityType = 16716
	EntityTypeNodeKeyLink                 EntityType = 16972
	EntityTypeAggregateComplete           EntityType = 16705
	EntityTypeAggregateBonded             EntityType = 16961
	EntityTypeVotingKeyLink               EntityType = 16707
	EntityTypeVrfKeyLink                  EntityType = 16963
	EntityTypeHashLock                    EntityType = 16712
	EntityTypeSecretLock                  EntityType = 16722
	EntityTypeSecretProof                 EntityType = 16978
	EntityTypeAccountMetadata             EntityType = 16708
	EntityTypeMosaicMetadata              EntityType = 16964
	EntityTypeNamespaceMetadata           EntityType = 17220
	EntityTypeMosaicDefinition            EntityType = 16717
	EntityTypeMosaicSupplyChange          EntityType = 16973
	EntityTypeMultisigAccountModification EntityType = 16725
	EntityTypeAddressAlias                EntityType = 16974
	EntityTypeMosaicAlias                 EntityType = 17230
	EntityTypeNamespaceRegistration       EntityType = 16718
	EntityTypeAccountAddressRestriction   EntityType = 16720
	EntityTypeAccountMosaicRestriction    EntityType = 16976
	EntityTypeAccountOperationRestriction EntityType = 17232
	EntityTypeMosaicAddressRestriction    EntityType = 16977
	EntityTypeMosaicGlobalRestriction     EntityType = 16721
	EntityTypeTransfer                    EntityType = 16724
)

var entityTypeNames = map[EntityType]string{
	EntityTypeAccountKeyLink:              "AccountKeyLink",
	EntityTypeNodeKeyLink:                 "NodeKeyLink",
	EntityTypeAggregateComplete:           "AggregateComplete",
	EntityTypeAggregateBonded:             "AggregateBonded",
	EntityTypeVotingKeyLink:               "VotingKeyLink",
	EntityTypeVrfKeyLink:                  "VrfKeyLink",
	EntityTypeHashLock:                    "HashLock",
	EntityTypeSecretLock:                  "SecretLock",
	EntityTypeSecretProof:                 "SecretProof",
	EntityTypeAccountMetadata:             "AccountMetadata",
	EntityTypeMosaicMetadata:              "MosaicMetadata",
	EntityTypeNamespaceMetadata:           "NamespaceMetadata",
	EntityTypeMosaicDefinition:            "MosaicDefinition",
	EntityTypeMosaicSupplyChange:          "MosaicSupplyChange",
	EntityTypeMultisigAccountModification: "MultisigAccountModification",
	EntityTypeAddressAlias:                "AddressAlias",
	EntityTypeMosaicAlias:                 "MosaicAlias",
	EntityTypeNamespaceRegistration:       "NamespaceRegistration",
	EntityTypeAccountAddressRestriction:   "AccountAddressRestriction",
	EntityTypeAccountMosaicRestriction:    "AccountMosaicRestriction",
	EntityTypeAccountOperationRestriction: "AccountOperationRestriction",
	EntityTypeMosaicAddressRestriction:    "MosaicAddressRestriction",
	EntityTypeMosaicGlobalRestriction:     "MosaicGlobalRestriction",
	EntityTypeTransfer:                    "Transfer",
}

func (t EntityType) String() string {
	if name, ok := entityTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(t))
}

func (t EntityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// IsAggregate reports whether the type carries embedded transactions
func (t EntityType) IsAggregate() bool {
	return t == EntityTypeAggregateComplete || t == EntityTypeAggregateBonded
}

type LinkAction uint8

const (
	LinkActionUnlink LinkAction = 0
	LinkActionLink   LinkAction = 1
)

func (a LinkAction) String() string {
	switch a {
	case LinkActionUnlink:
		return "unlink"
	case LinkActionLink:
		return "link"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

type AliasAction uint8

const (
	AliasActionUnlink AliasAction = 0
	AliasActionLink   AliasAction = 1
)

func (a AliasAction) String() string {
	switch a {
	case AliasActionUnlink:
		return "unlink"
	case AliasActionLink:
		return "link"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

type MosaicSupplyChangeAction uint8

const (
	MosaicSupplyChangeActionDecrease MosaicSupplyChangeAction = 0
	MosaicSupplyChangeActionIncrease MosaicSupplyChangeAction = 1
)

func (a MosaicSupplyChangeAction) String() string {
	switch a {
	case MosaicSupplyChangeActionDecrease:
		return "decrease"
	case MosaicSupplyChangeActionIncrease:
		return "increase"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

type LockHashAlgorithm uint8

const (
	LockHashAlgorithmSha3256 LockHashAlgorithm = 0
	LockHashAlgorithmHash160 LockHashAlgorithm = 1
	LockHashAlgorithmHash256 LockHashAlgorithm = 2
)

func (a LockHashAlgorithm) String() string {
	switch a {
	case LockHashAlgorithmSha3256:
		return "sha3_256"
	case LockHashAlgorithmHash160:
		return "hash_160"
	case LockHashAlgorithmHash256:
		return "hash_256"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

type MosaicRestrictionType uint8

const (
	MosaicRestrictionTypeNone MosaicRestrictionType = iota
	MosaicRestrictionTypeEq
	MosaicRestrictionTypeNe
	MosaicRestrictionTypeLt
	MosaicRestrictionTypeLe
	MosaicRestrictionTypeGt
	MosaicRestrictionTypeGe
)

var mosaicRestrictionTypeNames = []string{"none", "eq", "ne", "lt", "le", "gt", "ge"}

func (t MosaicRestrictionType) String() string {
	if int(t) < len(mosaicRestrictionTypeNames) {
		return mosaicRestrictionTypeNames[t]
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

type NamespaceRegistrationType uint8

const (
	NamespaceRegistrationTypeRoot  NamespaceRegistrationType = 0
	NamespaceRegistrationTypeChild NamespaceRegistrationType = 1
)

func (t NamespaceRegistrationType) String() string {
	switch t {
	case NamespaceRegistrationTypeRoot:
		return "root"
	case NamespaceRegistrationTypeChild:
		return "child"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

type flagName[T ~uint8 | ~uint16] struct {
	flag T
	name string
}

func flagsString[T ~uint8 | ~uint16](v T, names []flagName[T]) string {
	if v == 0 {
		return "none"
	}
	parts := []string{}
	rest := v
	for _, n := range names {
		if v&n.flag == n.flag {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// MosaicFlags is a bitmask of mosaic properties
type MosaicFlags uint8

const (
	MosaicFlagsNone          MosaicFlags = 0
	MosaicFlagsSupplyMutable MosaicFlags = 1
	MosaicFlagsTransferable  MosaicFlags = 2
	MosaicFlagsRestrictable  MosaicFlags = 4
)

var mosaicFlagNames = []flagName[MosaicFlags]{
	{MosaicFlagsSupplyMutable, "supply_mutable"},
	{MosaicFlagsTransferable, "transferable"},
	{MosaicFlagsRestrictable, "restrictable"},
}

func (f MosaicFlags) String() string {
	return flagsString(f, mosaicFlagNames)
}

func (f MosaicFlags) Has(flag MosaicFlags) bool {
	return f&flag == flag
}

// AccountRestrictionFlags is a bitmask selecting the restricted value kind and
// its direction
type AccountRestrictionFlags uint16

const (
	AccountRestrictionFlagsAddress         AccountRestrictionFlags = 0x0001
	AccountRestrictionFlagsMosaicId        AccountRestrictionFlags = 0x0002
	AccountRestrictionFlagsTransactionType AccountRestrictionFlags = 0x0004
	AccountRestrictionFlagsOutgoing        AccountRestrictionFlags = 0x4000
	AccountRestrictionFlagsBlock           AccountRestrictionFlags = 0x8000
)

var accountRestrictionFlagNames = []flagName[AccountRestrictionFlags]{
	{AccountRestrictionFlagsAddress, "address"},
	{AccountRestrictionFlagsMosaicId, "mosaic_id"},
	{AccountRestrictionFlagsTransactionType, "transaction_type"},
	{AccountRestrictionFlagsOutgoing, "outgoing"},
	{AccountRestrictionFlagsBlock, "block"},
}

func (f AccountRestrictionFlags) String() string {
	return flagsString(f, accountRestrictionFlagNames)
}

func (f AccountRestrictionFlags) Has(flag AccountRestrictionFlags) bool {
	return f&flag == flag
}
