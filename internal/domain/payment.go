package domain

import "time"

// PaymentType classifies a ledger entry. Amounts are always stored positive;
// direction (money in vs money out) is implied by the type.
type PaymentType string

const (
	PaymentTypeDeposit       PaymentType = "deposit"
	PaymentTypeRentalPayment PaymentType = "rental_payment"
	PaymentTypeFine          PaymentType = "fine"
	PaymentTypeAdditionalFee PaymentType = "additional_fee"
	PaymentTypeRefund        PaymentType = "refund"
)

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCredit   PaymentMethod = "credit"
	MethodDebit    PaymentMethod = "debit"
	MethodPix      PaymentMethod = "pix"
	MethodTransfer PaymentMethod = "transfer"
	MethodInvoice  PaymentMethod = "invoice"
)

// PaymentStatus represents the processing status of a ledger entry.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentApproved   PaymentStatus = "approved"
	PaymentRejected   PaymentStatus = "rejected"
	PaymentCancelled  PaymentStatus = "cancelled"
)

// PaymentOrigin records whether a ledger entry was typed in by an operator
// or synthesized by a status transition.
type PaymentOrigin string

const (
	OriginManual    PaymentOrigin = "manual"
	OriginAutomatic PaymentOrigin = "automatic"
)

// Payment represents one entry in the financial ledger. RentalID is empty
// for manual entries not tied to a booking.
type Payment struct {
	ID        string
	RentalID  string
	Type      PaymentType
	Amount    float64
	Method    PaymentMethod
	PaidAt    time.Time
	Status    PaymentStatus
	Notes     string
	Origin    PaymentOrigin
	CreatedAt time.Time
}

// PaymentUpdate is a typed partial update. Nil fields are left untouched.
type PaymentUpdate struct {
	RentalID *string
	Type     *PaymentType
	Amount   *float64
	Method   *PaymentMethod
	PaidAt   *time.Time
	Status   *PaymentStatus
	Notes    *string
	Origin   *PaymentOrigin
}

// Automatic reports whether the entry was synthesized by the system.
func (p *Payment) Automatic() bool {
	return p.Origin == OriginAutomatic
}
