// Package payproc implements the payment-processing engine: it issues
// invoices bound to wallet addresses, observes ledger activity for those
// addresses, drives the invoice state machine, and hands status-change
// events to a notifier for asynchronous delivery.
package payproc

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/gabapcia/paysim/internal/ledger"
	"github.com/gabapcia/paysim/internal/wallet"

	"github.com/google/uuid"
)

var (
	// ErrInvalidAmount is returned for non-positive invoice or payment amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNotFound is returned when an invoice id is unknown.
	ErrNotFound = errors.New("invoice not found")

	// ErrInvalidState is returned when an operation is not valid for the
	// invoice's current status, e.g. paying an expired invoice or refunding
	// twice.
	ErrInvalidState = errors.New("operation not valid for current invoice state")

	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")
)

// simulatedPaymentSizeBytes is the declared size of a simulated inbound
// payment, matching the wallet's fixed transfer size.
const simulatedPaymentSizeBytes int64 = 250

// defaultSweepInterval is how often the background sweeper looks for expired
// invoices when no interval is configured.
const defaultSweepInterval = 30 * time.Second

// Service is the payment processor's public surface. All invoice mutations
// are serialized internally, so the operations may be called from any number
// of goroutines.
type Service interface {
	// CreateInvoice issues a new invoice for the expected amount, bound to
	// a freshly derived wallet address, expiring ttl from now. Returns
	// ErrInvalidAmount when expectedAmount <= 0.
	CreateInvoice(expectedAmount int64, ttl time.Duration) (Invoice, error)

	// Invoice returns the current state of an invoice without refreshing
	// it. Returns ErrNotFound for unknown ids.
	Invoice(invoiceID string) (Invoice, error)

	// Observe refreshes the invoice against the ledger (confirmed plus
	// pending funds at its address) and applies the state machine's
	// transition rules. Exactly one status-change event is handed to the
	// notifier per status change; re-observing with no change emits
	// nothing. Returns ErrNotFound for unknown ids.
	Observe(invoiceID string) (Invoice, error)

	// SimulatePayment records a mempool transaction of amount toward the
	// invoice's address and refreshes the invoice. Returns ErrNotFound for
	// unknown ids, ErrInvalidState for terminal invoices, and
	// ErrInvalidAmount for non-positive amounts.
	SimulatePayment(invoiceID string, amount int64) (Invoice, error)

	// Refund sends the invoice's full received amount back to toAddress.
	// Only a Paid or Overpaid invoice can be refunded, at most once;
	// anything else fails with ErrInvalidState. The network fee is topped
	// up from the faucet so the refunded amount is not reduced.
	Refund(invoiceID, toAddress string) (Refund, error)

	// SweepExpired applies the expiry rule to every non-terminal invoice
	// and returns how many invoices expired.
	SweepExpired() int

	// WatchMempool exposes the ledger's unconfirmed transactions touching
	// the given address, most recent first.
	WatchMempool(address string) iter.Seq[ledger.Transaction]

	// Start launches the background expiry sweeper. Returns
	// ErrServiceAlreadyStarted if the service is already running; call
	// Close to stop it.
	Start(ctx context.Context) error

	// Close stops the background sweeper. It is safe to call Close even if
	// the service was never started.
	Close()
}

// service is the concrete payment processor.
type service struct {
	mu       sync.Mutex          // serializes all invoice mutations
	invoices map[string]*Invoice // id -> owned invoice record

	lifecycleMu sync.Mutex // protects sweeper lifecycle state
	isStarted   bool
	closeFunc   func()

	sweepInterval time.Duration

	ledger   ledger.Service
	wallet   wallet.Service
	notifier StatusNotifier
}

var _ Service = (*service)(nil)

// Option configures the processor at construction time.
type Option func(*service)

// WithSweepInterval sets how often the background sweeper checks for
// expired invoices.
func WithSweepInterval(d time.Duration) Option {
	return func(s *service) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}

// New creates a payment processor using the given ledger, wallet, and
// notifier. The notifier may be nil, in which case status changes are
// applied without emitting events.
func New(l ledger.Service, w wallet.Service, n StatusNotifier, opts ...Option) *service {
	s := &service{
		invoices:      make(map[string]*Invoice),
		sweepInterval: defaultSweepInterval,
		ledger:        l,
		wallet:        w,
		notifier:      n,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateInvoice implements Service.
func (s *service) CreateInvoice(expectedAmount int64, ttl time.Duration) (Invoice, error) {
	if expectedAmount <= 0 {
		return Invoice{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	invoice := &Invoice{
		ID:             uuid.Must(uuid.NewV7()).String(),
		Address:        s.wallet.DeriveAddress(),
		ExpectedAmount: expectedAmount,
		Status:         StatusPending,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}

	s.mu.Lock()
	s.invoices[invoice.ID] = invoice
	s.mu.Unlock()

	return invoice.clone(), nil
}

// Invoice implements Service.
func (s *service) Invoice(invoiceID string) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return Invoice{}, ErrNotFound
	}

	return invoice.clone(), nil
}

// Observe implements Service.
func (s *service) Observe(invoiceID string) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return Invoice{}, ErrNotFound
	}

	s.refreshLocked(invoice, time.Now().UTC())
	return invoice.clone(), nil
}

// SimulatePayment implements Service.
func (s *service) SimulatePayment(invoiceID string, amount int64) (Invoice, error) {
	if amount <= 0 {
		return Invoice{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return Invoice{}, ErrNotFound
	}
	if invoice.Terminal() {
		return Invoice{}, ErrInvalidState
	}

	// Mempool only: the caller decides if and when the payment confirms.
	if _, err := s.ledger.RecordTransaction(
		[]ledger.Output{{Address: invoice.Address, Amount: amount}},
		simulatedPaymentSizeBytes,
	); err != nil {
		return Invoice{}, err
	}

	s.refreshLocked(invoice, time.Now().UTC())
	return invoice.clone(), nil
}

// Refund implements Service.
func (s *service) Refund(invoiceID, toAddress string) (Refund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return Refund{}, ErrNotFound
	}

	refundable := invoice.Status == StatusPaid || invoice.Status == StatusOverpaid
	if !refundable || invoice.Refunded() {
		return Refund{}, ErrInvalidState
	}

	// The received funds must be confirmed before they can move again;
	// checking upfront keeps a failed refund from mutating anything.
	if s.ledger.BalanceOf(invoice.Address).Confirmed < invoice.ReceivedAmount {
		return Refund{}, ledger.ErrInsufficientFunds
	}

	// Top up the network fee from the faucet so the customer gets the full
	// received amount back.
	if fee := s.wallet.TransferFee(); fee > 0 {
		if _, err := s.wallet.FundFromFaucet(invoice.Address, fee); err != nil {
			return Refund{}, err
		}
	}

	txID, err := s.wallet.SendFunds(invoice.Address, toAddress, invoice.ReceivedAmount)
	if err != nil {
		return Refund{}, err
	}

	now := time.Now().UTC()
	invoice.Refund = &Refund{
		InvoiceID:     invoice.ID,
		Address:       toAddress,
		Amount:        invoice.ReceivedAmount,
		TransactionID: txID,
		RefundedAt:    now,
	}

	s.emitLocked(invoice, EventTypeRefunded, now)

	return *invoice.Refund, nil
}

// SweepExpired implements Service.
func (s *service) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	expired := 0

	for _, invoice := range s.invoices {
		if invoice.Terminal() {
			continue
		}

		received := s.ledger.BalanceOf(invoice.Address).Total()
		if now.After(invoice.ExpiresAt) && invoice.Status == StatusPending && received == 0 {
			invoice.Status = StatusExpired
			s.emitLocked(invoice, EventTypeExpired, now)
			expired++
		}
	}

	return expired
}

// WatchMempool implements Service.
func (s *service) WatchMempool(address string) iter.Seq[ledger.Transaction] {
	return s.ledger.MempoolFor(address)
}

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.sweepLoop(ctx)
	}()

	s.isStarted = true
	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	return nil
}

// sweepLoop periodically expires stale invoices until the context is done.
func (s *service) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepExpired()
		}
	}
}

// Close implements Service.
func (s *service) Close() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if !s.isStarted {
		return
	}

	s.closeFunc()
	s.closeFunc = nil
	s.isStarted = false
}

// refreshLocked recomputes the received amount for the invoice and applies
// the transition rules, emitting one event if the reported status changed.
// Terminal invoices are left untouched. Callers must hold s.mu.
func (s *service) refreshLocked(invoice *Invoice, now time.Time) {
	if invoice.Terminal() {
		return
	}

	received := s.ledger.BalanceOf(invoice.Address).Total()
	invoice.ReceivedAmount = received

	previous := invoice.Status

	switch {
	case now.After(invoice.ExpiresAt) && invoice.Status == StatusPending && received == 0:
		invoice.Status = StatusExpired
	case received >= invoice.ExpectedAmount:
		invoice.OverpaidAmount = received - invoice.ExpectedAmount
		if invoice.OverpaidAmount > 0 {
			invoice.Status = StatusOverpaid
		} else {
			invoice.Status = StatusPaid
		}
	case received > 0:
		invoice.Status = StatusPartial
	}

	if invoice.Status != previous {
		s.emitLocked(invoice, eventTypeFor(invoice.Status), now)
	}
}

// emitLocked hands one status-change event to the notifier, if any is
// configured. Callers must hold s.mu; the notifier contract guarantees the
// call does not block.
func (s *service) emitLocked(invoice *Invoice, eventType string, now time.Time) {
	if s.notifier == nil {
		return
	}

	s.notifier.NotifyStatusChange(StatusChange{
		InvoiceID:      invoice.ID,
		EventType:      eventType,
		Status:         invoice.Status,
		ReceivedAmount: invoice.ReceivedAmount,
		OverpaidAmount: invoice.OverpaidAmount,
		Timestamp:      now,
	})
}
