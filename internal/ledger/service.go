// Package ledger implements the authoritative in-memory record of the
// simulated testnet chain: blocks, mempool, per-address balances, fee
// estimation, and payment proofs. A single Service instance owns all chain
// state for one simulator; independent instances never share state.
package ledger

import (
	"errors"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/paysim/internal/pkg/types"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransaction is returned when a recorded transaction is
	// malformed: no outputs, a negative output amount, or a negative size.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrNotFound is returned when a transaction id is unknown, or when
	// Confirm is called for an already confirmed transaction.
	ErrNotFound = errors.New("transaction not found")

	// ErrInsufficientFunds is returned when a spending record would drive
	// the spender's confirmed balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// defaultFeeRate is the fee charged per declared transaction byte when no
// rate is configured.
const defaultFeeRate int64 = 1

// Service is the ledger's public surface. All operations are safe for
// concurrent use; mutations are atomic with respect to readers, so no caller
// ever observes a partially applied transaction.
type Service interface {
	// RecordTransaction appends a new unconfirmed transaction to the
	// mempool, crediting each output's pending balance. With WithSpender,
	// the spender's confirmed balance is atomically debited by the output
	// sum plus the estimated fee.
	//
	// Returns ErrInvalidTransaction for malformed input and
	// ErrInsufficientFunds when the spender cannot cover the debit. Failed
	// calls leave all balances untouched.
	RecordTransaction(outputs []Output, sizeBytes int64, opts ...RecordOption) (string, error)

	// Confirm moves a mempool transaction into a newly minted block,
	// incrementing the chain height and promoting the transaction's pending
	// credits to confirmed balance.
	//
	// Returns ErrNotFound if the id is unknown or already confirmed.
	Confirm(txID string) error

	// BalanceOf reports the confirmed and pending funds credited to the
	// given address. It never fails; unknown addresses have a zero balance.
	BalanceOf(address string) Balance

	// EstimateFee returns the simulated network fee for a transaction of
	// the given size: feeRate * sizeBytes, clamped at zero. The result is
	// deterministic for a fixed rate and non-decreasing in size.
	EstimateFee(sizeBytes int64) int64

	// ProofOf returns the simulated payment proof for a transaction,
	// including its confirmation count. Returns ErrNotFound for unknown ids.
	ProofOf(txID string) (Proof, error)

	// MempoolFor returns a finite, restartable iterator over the
	// unconfirmed transactions touching the given address, most recent
	// first. The sequence is a snapshot taken when MempoolFor is called.
	MempoolFor(address string) iter.Seq[Transaction]

	// Height returns the current chain height (genesis is 0).
	Height() int64
}

// balanceEntry is the mutable per-address balance book entry.
type balanceEntry struct {
	confirmed int64
	pending   int64
}

// service is the in-memory implementation of the ledger Service.
type service struct {
	mu sync.RWMutex

	feeRate  int64                                   // fee per declared byte
	blocks   []Block                                 // the chain, genesis first
	mempool  []*Transaction                          // unconfirmed transactions in insertion order
	txIndex  map[string]*Transaction                 // id -> transaction (mempool and confirmed)
	balances types.DefaultMap[string, *balanceEntry] // address -> balance book entry
}

var _ Service = (*service)(nil)

// Option configures the ledger at construction time.
type Option func(*service)

// WithFeeRate sets the fee charged per declared transaction byte. The rate
// is fixed for the lifetime of the ledger so fee estimation stays
// deterministic and reproducible in tests.
func WithFeeRate(rate int64) Option {
	return func(s *service) {
		s.feeRate = rate
	}
}

// New creates a ledger with a freshly minted genesis block at height 0.
func New(opts ...Option) *service {
	s := &service{
		feeRate:  defaultFeeRate,
		txIndex:  make(map[string]*Transaction),
		balances: types.NewDefaultMap[string](func() *balanceEntry { return new(balanceEntry) }),
	}
	for _, opt := range opts {
		opt(s)
	}

	now := time.Now().UTC()
	s.blocks = []Block{{
		Height:       0,
		Hash:         blockHash(0, "0", now, nil),
		PreviousHash: "0",
		MinedAt:      now,
	}}

	return s
}

// recordConfig holds per-call options for RecordTransaction.
type recordConfig struct {
	spender string
}

// RecordOption configures a single RecordTransaction call.
type RecordOption func(*recordConfig)

// WithSpender marks the transaction as spending from the given address. The
// spender's confirmed balance is debited by the output sum plus the
// estimated fee, atomically with the mempool insert, failing the record with
// ErrInsufficientFunds if the confirmed balance cannot cover it.
func WithSpender(address string) RecordOption {
	return func(c *recordConfig) {
		c.spender = address
	}
}

// RecordTransaction implements Service.
func (s *service) RecordTransaction(outputs []Output, sizeBytes int64, opts ...RecordOption) (string, error) {
	var cfg recordConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(outputs) == 0 || sizeBytes < 0 {
		return "", ErrInvalidTransaction
	}
	for _, out := range outputs {
		if out.Amount < 0 {
			return "", ErrInvalidTransaction
		}
	}

	tx := &Transaction{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Outputs:    slices.Clone(outputs),
		SizeBytes:  sizeBytes,
		Spender:    cfg.spender,
		RecordedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.spender != "" {
		fee := s.estimateFeeLocked(sizeBytes)
		debit := tx.OutputSum() + fee

		entry := s.balances.Get(cfg.spender)
		if entry.confirmed < debit {
			return "", ErrInsufficientFunds
		}

		entry.confirmed -= debit
		tx.Fee = fee
	}

	for _, out := range tx.Outputs {
		s.balances.Get(out.Address).pending += out.Amount
	}

	s.mempool = append(s.mempool, tx)
	s.txIndex[tx.ID] = tx

	return tx.ID, nil
}

// Confirm implements Service.
func (s *service) Confirm(txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.txIndex[txID]
	if !ok || tx.Confirmed {
		return ErrNotFound
	}

	idx := slices.Index(s.mempool, tx)
	s.mempool = slices.Delete(s.mempool, idx, idx+1)

	for _, out := range tx.Outputs {
		entry := s.balances.Get(out.Address)
		entry.pending -= out.Amount
		entry.confirmed += out.Amount
	}

	previous := s.blocks[len(s.blocks)-1]
	height := previous.Height + 1
	now := time.Now().UTC()

	tx.Confirmed = true
	tx.BlockHeight = height

	s.blocks = append(s.blocks, Block{
		Height:       height,
		Hash:         blockHash(height, previous.Hash, now, []Transaction{*tx}),
		PreviousHash: previous.Hash,
		MinedAt:      now,
		Transactions: []Transaction{tx.clone()},
	})

	return nil
}

// BalanceOf implements Service.
func (s *service) BalanceOf(address string) Balance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Read through the raw map so lookups never materialize entries while
	// only a read lock is held.
	entry, ok := s.balances.ToMap()[address]
	if !ok {
		return Balance{}
	}

	return Balance{Confirmed: entry.confirmed, Pending: entry.pending}
}

// EstimateFee implements Service.
func (s *service) EstimateFee(sizeBytes int64) int64 {
	return s.estimateFeeLocked(sizeBytes)
}

// estimateFeeLocked computes the fee without touching shared state; the rate
// is immutable after construction so no lock is required.
func (s *service) estimateFeeLocked(sizeBytes int64) int64 {
	if sizeBytes <= 0 {
		return 0
	}
	return s.feeRate * sizeBytes
}

// ProofOf implements Service.
func (s *service) ProofOf(txID string) (Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txIndex[txID]
	if !ok {
		return Proof{}, ErrNotFound
	}

	proof := Proof{
		TransactionID: tx.ID,
		Confirmed:     tx.Confirmed,
		Outputs:       slices.Clone(tx.Outputs),
	}

	if tx.Confirmed {
		currentHeight := s.blocks[len(s.blocks)-1].Height

		proof.BlockHeight = tx.BlockHeight
		proof.BlockHash = s.blocks[tx.BlockHeight].Hash
		proof.Confirmations = currentHeight - tx.BlockHeight + 1
		proof.MerkleProof = merkleProofTag(tx.ID, tx.BlockHeight)
	}

	return proof, nil
}

// MempoolFor implements Service.
func (s *service) MempoolFor(address string) iter.Seq[Transaction] {
	s.mu.RLock()

	snapshot := make([]Transaction, 0)
	for i := len(s.mempool) - 1; i >= 0; i-- {
		tx := s.mempool[i]
		if tx.Spender == address {
			snapshot = append(snapshot, tx.clone())
			continue
		}
		for _, out := range tx.Outputs {
			if out.Address == address {
				snapshot = append(snapshot, tx.clone())
				break
			}
		}
	}

	s.mu.RUnlock()

	return slices.Values(snapshot)
}

// Height implements Service.
func (s *service) Height() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.blocks[len(s.blocks)-1].Height
}
