package cli

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/gabapcia/paysim/internal/ledger"
	"github.com/gabapcia/paysim/internal/payproc"
	payproctest "github.com/gabapcia/paysim/internal/payproc/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDemoCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockProcessor := payproctest.NewService(t)

		// Act
		cmd := demoCommand(mockProcessor)

		// Assert
		assert.Equal(t, "demo", cmd.Name)
		assert.Len(t, cmd.Flags, 2)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should walk the invoice through partial and full payment", func(t *testing.T) {
		// Arrange
		mockProcessor := payproctest.NewService(t)

		invoice := payproc.Invoice{
			ID:             "inv-1",
			Address:        "tb1sim0",
			ExpectedAmount: 90,
			Status:         payproc.StatusPending,
			ExpiresAt:      time.Now().Add(time.Hour),
		}

		mockProcessor.EXPECT().CreateInvoice(int64(90), time.Hour).Return(invoice, nil).Once()

		partial := invoice
		partial.ReceivedAmount = 30
		partial.Status = payproc.StatusPartial
		mockProcessor.EXPECT().SimulatePayment("inv-1", int64(30)).Return(partial, nil).Once()

		paid := invoice
		paid.ReceivedAmount = 90
		paid.Status = payproc.StatusPaid
		mockProcessor.EXPECT().SimulatePayment("inv-1", int64(60)).Return(paid, nil).Once()

		cmd := demoCommand(mockProcessor)

		app := &cli.Command{
			Commands: []*cli.Command{cmd},
		}

		// Act
		err := app.Run(context.Background(), []string{"test", "demo", "--amount", "90"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should return error when invoice creation fails", func(t *testing.T) {
		// Arrange
		mockProcessor := payproctest.NewService(t)
		expectedError := errors.New("invoice creation error")

		mockProcessor.EXPECT().CreateInvoice(int64(10_000), time.Hour).Return(payproc.Invoice{}, expectedError).Once()

		cmd := demoCommand(mockProcessor)

		app := &cli.Command{
			Commands: []*cli.Command{cmd},
		}

		// Act
		err := app.Run(context.Background(), []string{"test", "demo"})

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invoice creation error")
	})
}

func TestObserveCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockProcessor := payproctest.NewService(t)

		// Act
		cmd := observeCommand(mockProcessor)

		// Assert
		assert.Equal(t, "observe", cmd.Name)
		assert.Len(t, cmd.Flags, 1)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should print the invoice state and pending payments", func(t *testing.T) {
		// Arrange
		mockProcessor := payproctest.NewService(t)

		invoice := payproc.Invoice{
			ID:             "inv-1",
			Address:        "tb1sim0",
			ExpectedAmount: 100,
			ReceivedAmount: 40,
			Status:         payproc.StatusPartial,
		}
		pending := ledger.Transaction{
			ID:      "tx-1",
			Outputs: []ledger.Output{{Address: "tb1sim0", Amount: 40}},
			Fee:     250,
		}

		mockProcessor.EXPECT().Observe("inv-1").Return(invoice, nil).Once()
		mockProcessor.EXPECT().WatchMempool("tb1sim0").Return(iter.Seq[ledger.Transaction](func(yield func(ledger.Transaction) bool) {
			yield(pending)
		})).Once()

		cmd := observeCommand(mockProcessor)

		app := &cli.Command{
			Commands: []*cli.Command{cmd},
		}

		// Act
		err := app.Run(context.Background(), []string{"test", "observe", "--invoice", "inv-1"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should return error for unknown invoices", func(t *testing.T) {
		// Arrange
		mockProcessor := payproctest.NewService(t)

		mockProcessor.EXPECT().Observe("missing").Return(payproc.Invoice{}, payproc.ErrNotFound).Once()

		cmd := observeCommand(mockProcessor)

		app := &cli.Command{
			Commands: []*cli.Command{cmd},
		}

		// Act
		err := app.Run(context.Background(), []string{"test", "observe", "--invoice", "missing"})

		// Assert
		assert.ErrorIs(t, err, payproc.ErrNotFound)
	})
}
