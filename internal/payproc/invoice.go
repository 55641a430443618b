package payproc

import "time"

// Status is the reported state of an invoice.
//
// Paid and Overpaid are mutually exclusive reported states keyed on whether
// any overpayment exists; Overpaid is a refinement of Paid, not a separate
// terminal transition.
type Status string

const (
	// StatusPending means the invoice has received no funds yet.
	StatusPending Status = "pending"

	// StatusPartial means some funds arrived but less than the expected amount.
	StatusPartial Status = "partial"

	// StatusPaid means the received amount covers the expected amount exactly.
	StatusPaid Status = "paid"

	// StatusOverpaid means the received amount exceeds the expected amount.
	StatusOverpaid Status = "overpaid"

	// StatusExpired means the invoice ran out before any funds arrived.
	// Expired is terminal.
	StatusExpired Status = "expired"
)

// Invoice tracks one payment request bound to a dedicated ledger address.
// An address is never shared by two live invoices.
type Invoice struct {
	ID             string    // opaque unique identifier (UUIDv7)
	Address        string    // destination address, exclusively owned by this invoice
	ExpectedAmount int64     // amount requested, in base units
	ReceivedAmount int64     // confirmed plus pending funds observed at the address
	OverpaidAmount int64     // max(0, received - expected)
	Status         Status
	CreatedAt      time.Time
	ExpiresAt      time.Time
	Refund         *Refund // set once a refund has been issued; nil otherwise
}

// Refunded reports whether a refund has been issued for this invoice.
func (i Invoice) Refunded() bool {
	return i.Refund != nil
}

// Terminal reports whether the invoice accepts no further transitions:
// expired, or refunded after being paid.
func (i Invoice) Terminal() bool {
	return i.Status == StatusExpired || i.Refunded()
}

// clone returns a copy safe to hand to callers, detached from the
// processor-owned record.
func (i Invoice) clone() Invoice {
	cp := i
	if i.Refund != nil {
		refund := *i.Refund
		cp.Refund = &refund
	}
	return cp
}

// Refund records the single refund issued for a paid invoice. The refund is
// realized as a ledger transaction from the invoice's address back to the
// requested destination.
type Refund struct {
	InvoiceID     string    // the refunded invoice
	Address       string    // refund destination
	Amount        int64     // refunded amount, the invoice's full received amount
	TransactionID string    // ledger transaction realizing the refund
	RefundedAt    time.Time
}
