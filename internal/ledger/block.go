package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Output is a single transaction output crediting Amount base units to
// Address. Amounts are expressed in the smallest currency unit
// (satoshi-style int64), never fractions.
type Output struct {
	Address string // receiving address
	Amount  int64  // credited amount in base units
}

// Transaction is a simulated ledger transaction. It is created unconfirmed
// (in the mempool) and becomes confirmed once included in a block.
type Transaction struct {
	ID          string    // opaque unique identifier (UUIDv7)
	Outputs     []Output  // credited outputs; conservation holds over their sum
	SizeBytes   int64     // declared size used for fee simulation
	Fee         int64     // fee debited from the spender; zero for faucet credits
	Spender     string    // debited address; empty when funds are minted by the faucet
	Confirmed   bool      // whether the transaction is included in a block
	BlockHeight int64     // height of the confirming block; meaningful only when Confirmed
	RecordedAt  time.Time // when the transaction entered the mempool
}

// OutputSum returns the total amount credited across all outputs.
func (t Transaction) OutputSum() int64 {
	var sum int64
	for _, out := range t.Outputs {
		sum += out.Amount
	}
	return sum
}

// clone returns a deep copy so callers can never mutate ledger-owned state
// through a returned Transaction.
func (t Transaction) clone() Transaction {
	cp := t
	cp.Outputs = make([]Output, len(t.Outputs))
	copy(cp.Outputs, t.Outputs)
	return cp
}

// Block is an ordered sequence of confirmed transactions at a monotonic
// height, content-hashed and chained to its predecessor.
type Block struct {
	Height       int64         // monotonic block height, genesis is 0
	Hash         string        // SHA-256 content hash of the block
	PreviousHash string        // hash of the preceding block ("0" for genesis)
	MinedAt      time.Time     // when the block was minted
	Transactions []Transaction // transactions confirmed by this block
}

// blockHash computes the SHA-256 content hash over the block's height,
// predecessor hash, mining time, and transaction ids.
func blockHash(height int64, previousHash string, minedAt time.Time, txs []Transaction) string {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}

	content := fmt.Sprintf("%d|%s|%d|%s", height, previousHash, minedAt.UnixNano(), strings.Join(ids, ","))
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Balance is the ledger's view of an address, with confirmed and pending
// (mempool) funds tracked separately.
type Balance struct {
	Confirmed int64 // funds credited by transactions included in a block
	Pending   int64 // funds credited by transactions still in the mempool
}

// Total returns confirmed plus pending funds.
func (b Balance) Total() int64 {
	return b.Confirmed + b.Pending
}
