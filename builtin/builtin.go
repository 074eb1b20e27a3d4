// Package builtin enumerates the language-defined names injected into the
// global namespace and the block/msg/tx/abi member namespaces before user
// code is analysed. It is a direct, order-preserving port of the reference
// compiler's declare_builtins! catalog (sema/builtins/mod.rs): one flat,
// densely discriminated enum, partitioned into contiguous sub-ranges so
// that index<->variant conversion and "is this builtin a member of X" are
// both O(1).
//
// This module's Builtin tracks only a name and a Kind tag. The original's
// per-builtin TypeFactory (fn(Gcx) -> Ty) is not modeled: Ty and Gcx are
// semantic-analysis types that do not exist on this side of the lexical
// core, and overload resolution (e.g. Require's two call shapes collapsing
// to one catalog entry here) is sema's job, not this package's. This and
// Super are kept despite that cut: both are nameable without any type
// context (their original TypeFactory is unreachable!() regardless), so
// omitting them would drop fidelity for no savings. The type/value member
// builtins under a resolved contract type (AddressBalance, ArrayLength,
// ErrorSelector, and the rest of members.rs) are cut for the same reason
// the top-level TypeFactory is: they only exist once a type is known.
package builtin

import "iter"

// Kind tags what a Builtin denotes, to the extent this module needs to
// know: a callable (Function) or a member namespace marker (Namespace,
// e.g. block/msg/tx/abi) whose own members occupy a contiguous sub-range.
type Kind uint8

const (
	Function Kind = iota
	Namespace
)

func (k Kind) String() string {
	if k == Namespace {
		return "Namespace"
	}
	return "Function"
}

// Builtin is a flat, densely discriminated enumeration of every builtin
// name the catalog declares. Declaration order matches the reference
// compiler's declare_builtins! block exactly; the range constants below
// depend on that order.
type Builtin uint8

const (
	// Global range.
	Blockhash Builtin = iota
	Blobhash
	Gasleft
	Selfdestruct
	Assert
	Require
	Revert
	AddMod
	MulMod
	Keccak256
	Sha256
	Ripemd160
	EcRecover
	Block
	Msg
	Tx
	Abi

	// Contract-level, not members of any namespace: the implicit `this`
	// and `super` references available inside a contract body.
	This
	Super

	// block.* members.
	BlockCoinbase
	BlockTimestamp
	BlockDifficulty
	BlockPrevrandao
	BlockNumber
	BlockGaslimit
	BlockChainid
	BlockBasefee
	BlockBlobbasefee

	// msg.* members.
	MsgSender
	MsgGas
	MsgValue
	MsgData
	MsgSig

	// tx.* members.
	TxOrigin
	TxGasprice

	// abi.* members.
	AbiEncode
	AbiEncodePacked
	AbiEncodeWithSelector
	AbiEncodeCall
	AbiEncodeWithSignature
	AbiDecode

	count
)

// Count is the number of distinct builtins. Builtin.COUNT <= 255 is an
// invariant of this catalog; Count is a plain int well under that bound.
const Count = int(count)

const (
	firstGlobal = int(Blockhash)
	lastGlobal  = int(Abi) + 1

	firstBlock = int(BlockCoinbase)
	lastBlock  = int(BlockBlobbasefee) + 1

	firstMsg = int(MsgSender)
	lastMsg  = int(MsgSig) + 1

	firstTx = int(TxOrigin)
	lastTx  = int(TxGasprice) + 1

	firstAbi = int(AbiEncode)
	lastAbi  = int(AbiDecode) + 1
)

var names = [Count]string{
	Blockhash:    "blockhash",
	Blobhash:     "blobhash",
	Gasleft:      "gasleft",
	Selfdestruct: "selfdestruct",
	Assert:       "assert",
	Require:      "require",
	Revert:       "revert",
	AddMod:       "addmod",
	MulMod:       "mulmod",
	Keccak256:    "keccak256",
	Sha256:       "sha256",
	Ripemd160:    "ripemd160",
	EcRecover:    "ecrecover",
	Block:        "block",
	Msg:          "msg",
	Tx:           "tx",
	Abi:          "abi",

	This:  "this",
	Super: "super",

	BlockCoinbase:    "coinbase",
	BlockTimestamp:   "timestamp",
	BlockDifficulty:  "difficulty",
	BlockPrevrandao:  "prevrandao",
	BlockNumber:      "number",
	BlockGaslimit:    "gaslimit",
	BlockChainid:     "chainid",
	BlockBasefee:     "basefee",
	BlockBlobbasefee: "blobbasefee",

	MsgSender: "sender",
	MsgGas:    "gas",
	MsgValue:  "value",
	MsgData:   "data",
	MsgSig:    "sig",

	TxOrigin:   "origin",
	TxGasprice: "gasprice",

	AbiEncode:              "encode",
	AbiEncodePacked:        "encodePacked",
	AbiEncodeWithSelector:  "encodeWithSelector",
	AbiEncodeCall:          "encodeCall",
	AbiEncodeWithSignature: "encodeWithSignature",
	AbiDecode:              "decode",
}

// Name returns the builtin's name, as it appears in Solidity source.
func (b Builtin) Name() string {
	if int(b) >= Count {
		return "<invalid builtin>"
	}
	return names[b]
}

// Kind reports whether b is a callable/value builtin (Function) or a
// member-namespace marker (Namespace: block, msg, tx, abi).
func (b Builtin) Kind() Kind {
	switch b {
	case Block, Msg, Tx, Abi:
		return Namespace
	default:
		return Function
	}
}

func (b Builtin) String() string {
	if int(b) >= Count {
		return "Builtin(invalid)"
	}
	return b.Name()
}

// FromIndex returns the Builtin with discriminant i, and false if i is out
// of range. Discriminants are dense over [0, Count), so this is a plain
// bounds check plus a cast — no lookup table required.
func FromIndex(i int) (Builtin, bool) {
	if i < 0 || i >= Count {
		return 0, false
	}
	return Builtin(i), true
}

func rangeSeq(lo, hi int) iter.Seq[Builtin] {
	return func(yield func(Builtin) bool) {
		for i := lo; i < hi; i++ {
			if !yield(Builtin(i)) {
				return
			}
		}
	}
}

// Global returns the builtins declared directly in the global namespace,
// in catalog order.
func Global() iter.Seq[Builtin] {
	return rangeSeq(firstGlobal, lastGlobal)
}

// Members returns the sub-range of builtins belonging to b's member
// namespace (b must be one of Block, Msg, Tx, Abi); the returned sequence
// is empty for every other Builtin.
func Members(b Builtin) iter.Seq[Builtin] {
	switch b {
	case Block:
		return rangeSeq(firstBlock, lastBlock)
	case Msg:
		return rangeSeq(firstMsg, lastMsg)
	case Tx:
		return rangeSeq(firstTx, lastTx)
	case Abi:
		return rangeSeq(firstAbi, lastAbi)
	default:
		return rangeSeq(0, 0)
	}
}
