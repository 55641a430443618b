package payproc_test

import (
	"testing"
	"time"

	"github.com/gabapcia/paysim/internal/ledger"
	"github.com/gabapcia/paysim/internal/payproc"
	payprocMocks "github.com/gabapcia/paysim/internal/payproc/mocks"
	"github.com/gabapcia/paysim/internal/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestProcessor wires a processor on top of a fresh in-memory ledger and
// wallet so every test starts from a clean chain.
func newTestProcessor(t *testing.T, notifier payproc.StatusNotifier, opts ...payproc.Option) (payproc.Service, ledger.Service, wallet.Service) {
	t.Helper()

	l := ledger.New()
	w := wallet.New(l)

	return payproc.New(l, w, notifier, opts...), l, w
}

// confirmMempool confirms every unconfirmed transaction touching the given
// address, simulating block inclusion.
func confirmMempool(t *testing.T, l ledger.Service, address string) {
	t.Helper()

	for tx := range l.MempoolFor(address) {
		require.NoError(t, l.Confirm(tx.ID))
	}
}

func TestCreateInvoice(t *testing.T) {
	t.Run("issues a pending invoice bound to a fresh address", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(1_000, time.Hour)
		require.NoError(t, err)

		assert.NotEmpty(t, invoice.ID)
		assert.NotEmpty(t, invoice.Address)
		assert.Equal(t, int64(1_000), invoice.ExpectedAmount)
		assert.Equal(t, int64(0), invoice.ReceivedAmount)
		assert.Equal(t, payproc.StatusPending, invoice.Status)
		assert.Equal(t, invoice.CreatedAt.Add(time.Hour), invoice.ExpiresAt)
		assert.Nil(t, invoice.Refund)
	})

	t.Run("each invoice gets its own address", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		first, err := svc.CreateInvoice(500, time.Hour)
		require.NoError(t, err)

		second, err := svc.CreateInvoice(500, time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, first.Address, second.Address)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		_, err := svc.CreateInvoice(0, time.Hour)
		assert.ErrorIs(t, err, payproc.ErrInvalidAmount)

		_, err = svc.CreateInvoice(-10, time.Hour)
		assert.ErrorIs(t, err, payproc.ErrInvalidAmount)
	})
}

func TestInvoice(t *testing.T) {
	t.Run("returns the stored invoice", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		created, err := svc.CreateInvoice(700, time.Hour)
		require.NoError(t, err)

		found, err := svc.Invoice(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		_, err := svc.Invoice("missing")
		assert.ErrorIs(t, err, payproc.ErrNotFound)
	})
}

func TestSimulatePayment(t *testing.T) {
	t.Run("underpayment followed by completion", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		invoice, err = svc.SimulatePayment(invoice.ID, 40)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusPartial, invoice.Status)
		assert.Equal(t, int64(40), invoice.ReceivedAmount)

		invoice, err = svc.SimulatePayment(invoice.ID, 60)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusPaid, invoice.Status)
		assert.Equal(t, int64(100), invoice.ReceivedAmount)
		assert.Equal(t, int64(0), invoice.OverpaidAmount)
	})

	t.Run("overpayment records the excess", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(50, time.Hour)
		require.NoError(t, err)

		invoice, err = svc.SimulatePayment(invoice.ID, 70)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusOverpaid, invoice.Status)
		assert.Equal(t, int64(70), invoice.ReceivedAmount)
		assert.Equal(t, int64(20), invoice.OverpaidAmount)
	})

	t.Run("payments land in the mempool unconfirmed", func(t *testing.T) {
		svc, l, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		_, err = svc.SimulatePayment(invoice.ID, 100)
		require.NoError(t, err)

		balance := l.BalanceOf(invoice.Address)
		assert.Equal(t, int64(0), balance.Confirmed)
		assert.Equal(t, int64(100), balance.Pending)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		_, err = svc.SimulatePayment(invoice.ID, 0)
		assert.ErrorIs(t, err, payproc.ErrInvalidAmount)
	})

	t.Run("unknown invoice fails with not found", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		_, err := svc.SimulatePayment("missing", 10)
		assert.ErrorIs(t, err, payproc.ErrNotFound)
	})

	t.Run("expired invoice cannot receive payments", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)

		require.Equal(t, 1, svc.SweepExpired())

		_, err = svc.SimulatePayment(invoice.ID, 100)
		assert.ErrorIs(t, err, payproc.ErrInvalidState)
	})
}

func TestObserve(t *testing.T) {
	t.Run("emits one event per status change", func(t *testing.T) {
		notifier := payprocMocks.NewStatusNotifier(t)
		svc, _, _ := newTestProcessor(t, notifier)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		notifier.EXPECT().NotifyStatusChange(mock.MatchedBy(func(change payproc.StatusChange) bool {
			return change.InvoiceID == invoice.ID &&
				change.EventType == payproc.EventTypePaid &&
				change.Status == payproc.StatusPaid &&
				change.ReceivedAmount == 100
		})).Return().Times(1)

		invoice, err = svc.SimulatePayment(invoice.ID, 100)
		require.NoError(t, err)
		require.Equal(t, payproc.StatusPaid, invoice.Status)

		// Re-observing a settled invoice must not emit anything further.
		for range 3 {
			observed, err := svc.Observe(invoice.ID)
			require.NoError(t, err)
			assert.Equal(t, payproc.StatusPaid, observed.Status)
		}
	})

	t.Run("partial then paid emits two events in order", func(t *testing.T) {
		notifier := payprocMocks.NewStatusNotifier(t)
		svc, _, _ := newTestProcessor(t, notifier)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		var events []string
		notifier.EXPECT().NotifyStatusChange(mock.Anything).Run(func(change payproc.StatusChange) {
			events = append(events, change.EventType)
		}).Return().Times(2)

		_, err = svc.SimulatePayment(invoice.ID, 40)
		require.NoError(t, err)

		_, err = svc.SimulatePayment(invoice.ID, 60)
		require.NoError(t, err)

		assert.Equal(t, []string{payproc.EventTypePartial, payproc.EventTypePaid}, events)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		_, err := svc.Observe("missing")
		assert.ErrorIs(t, err, payproc.ErrNotFound)
	})

	t.Run("expires a stale unpaid invoice", func(t *testing.T) {
		notifier := payprocMocks.NewStatusNotifier(t)
		svc, _, _ := newTestProcessor(t, notifier)

		invoice, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)

		notifier.EXPECT().NotifyStatusChange(mock.MatchedBy(func(change payproc.StatusChange) bool {
			return change.InvoiceID == invoice.ID && change.EventType == payproc.EventTypeExpired
		})).Return().Times(1)

		observed, err := svc.Observe(invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusExpired, observed.Status)
	})

	t.Run("partially paid invoice never expires", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)

		invoice, err = svc.SimulatePayment(invoice.ID, 30)
		require.NoError(t, err)
		require.Equal(t, payproc.StatusPartial, invoice.Status)

		observed, err := svc.Observe(invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusPartial, observed.Status)
		assert.Equal(t, 0, svc.SweepExpired())
	})
}

func TestSweepExpired(t *testing.T) {
	t.Run("expires only stale unpaid invoices", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		stale, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)

		fresh, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		funded, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)
		_, err = svc.SimulatePayment(funded.ID, 10)
		require.NoError(t, err)

		assert.Equal(t, 1, svc.SweepExpired())

		staleNow, err := svc.Invoice(stale.ID)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusExpired, staleNow.Status)

		freshNow, err := svc.Invoice(fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusPending, freshNow.Status)

		fundedNow, err := svc.Invoice(funded.ID)
		require.NoError(t, err)
		assert.Equal(t, payproc.StatusPartial, fundedNow.Status)
	})

	t.Run("expiry is sticky", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		_, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, svc.SweepExpired())
		assert.Equal(t, 0, svc.SweepExpired())
	})
}

func TestRefund(t *testing.T) {
	t.Run("returns the full received amount exactly once", func(t *testing.T) {
		svc, l, w := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		invoice, err = svc.SimulatePayment(invoice.ID, 100)
		require.NoError(t, err)
		require.Equal(t, payproc.StatusPaid, invoice.Status)

		confirmMempool(t, l, invoice.Address)

		customer := w.DeriveAddress()
		refund, err := svc.Refund(invoice.ID, customer)
		require.NoError(t, err)

		assert.Equal(t, invoice.ID, refund.InvoiceID)
		assert.Equal(t, customer, refund.Address)
		assert.Equal(t, int64(100), refund.Amount)
		assert.NotEmpty(t, refund.TransactionID)

		// The customer is credited in full once the refund confirms.
		confirmMempool(t, l, customer)
		assert.Equal(t, int64(100), l.BalanceOf(customer).Confirmed)

		refunded, err := svc.Invoice(invoice.ID)
		require.NoError(t, err)
		require.NotNil(t, refunded.Refund)
		assert.Equal(t, refund, *refunded.Refund)

		_, err = svc.Refund(invoice.ID, customer)
		assert.ErrorIs(t, err, payproc.ErrInvalidState)
	})

	t.Run("overpaid invoices refund the whole received amount", func(t *testing.T) {
		svc, l, w := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(50, time.Hour)
		require.NoError(t, err)

		invoice, err = svc.SimulatePayment(invoice.ID, 70)
		require.NoError(t, err)
		require.Equal(t, payproc.StatusOverpaid, invoice.Status)

		confirmMempool(t, l, invoice.Address)

		refund, err := svc.Refund(invoice.ID, w.DeriveAddress())
		require.NoError(t, err)
		assert.Equal(t, int64(70), refund.Amount)
	})

	t.Run("emits a refund event", func(t *testing.T) {
		notifier := payprocMocks.NewStatusNotifier(t)
		svc, l, w := newTestProcessor(t, notifier)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		notifier.EXPECT().NotifyStatusChange(mock.Anything).Return().Times(2)

		invoice, err = svc.SimulatePayment(invoice.ID, 100)
		require.NoError(t, err)

		confirmMempool(t, l, invoice.Address)

		_, err = svc.Refund(invoice.ID, w.DeriveAddress())
		require.NoError(t, err)

		calls := notifier.Calls
		require.Len(t, calls, 2)
		last := calls[1].Arguments[0].(payproc.StatusChange)
		assert.Equal(t, payproc.EventTypeRefunded, last.EventType)
	})

	t.Run("unconfirmed funds cannot be refunded", func(t *testing.T) {
		svc, _, w := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		_, err = svc.SimulatePayment(invoice.ID, 100)
		require.NoError(t, err)

		_, err = svc.Refund(invoice.ID, w.DeriveAddress())
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("only settled invoices can be refunded", func(t *testing.T) {
		svc, _, w := newTestProcessor(t, nil)

		pending, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		_, err = svc.Refund(pending.ID, w.DeriveAddress())
		assert.ErrorIs(t, err, payproc.ErrInvalidState)

		partial, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)
		_, err = svc.SimulatePayment(partial.ID, 40)
		require.NoError(t, err)

		_, err = svc.Refund(partial.ID, w.DeriveAddress())
		assert.ErrorIs(t, err, payproc.ErrInvalidState)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		svc, _, w := newTestProcessor(t, nil)

		_, err := svc.Refund("missing", w.DeriveAddress())
		assert.ErrorIs(t, err, payproc.ErrNotFound)
	})
}

func TestWatchMempool(t *testing.T) {
	t.Run("exposes unconfirmed payments toward the invoice address", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		invoice, err := svc.CreateInvoice(100, time.Hour)
		require.NoError(t, err)

		_, err = svc.SimulatePayment(invoice.ID, 25)
		require.NoError(t, err)
		_, err = svc.SimulatePayment(invoice.ID, 75)
		require.NoError(t, err)

		var amounts []int64
		for tx := range svc.WatchMempool(invoice.Address) {
			require.Len(t, tx.Outputs, 1)
			amounts = append(amounts, tx.Outputs[0].Amount)
		}

		// Most recent first.
		assert.Equal(t, []int64{75, 25}, amounts)
	})
}

func TestStart(t *testing.T) {
	t.Run("background sweeper expires stale invoices", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil, payproc.WithSweepInterval(10*time.Millisecond))

		invoice, err := svc.CreateInvoice(100, 0)
		require.NoError(t, err)

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		require.Eventually(t, func() bool {
			current, err := svc.Invoice(invoice.ID)
			return err == nil && current.Status == payproc.StatusExpired
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("starting twice fails", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		require.NoError(t, svc.Start(t.Context()))
		defer svc.Close()

		assert.ErrorIs(t, svc.Start(t.Context()), payproc.ErrServiceAlreadyStarted)
	})

	t.Run("close is idempotent and allows a restart", func(t *testing.T) {
		svc, _, _ := newTestProcessor(t, nil)

		require.NoError(t, svc.Start(t.Context()))
		svc.Close()
		svc.Close()

		require.NoError(t, svc.Start(t.Context()))
		svc.Close()
	})
}
