package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	// Fulfillment statuses
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "confirmed"  // Confirmed by the store
	OrderStatusProcessing OrderStatus = "processing" // Cards being personalized/printed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the order
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before fulfillment

	// Payment verification statuses, independent of fulfillment
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"

	// Payment methods
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodCash         PaymentMethod = "CASH"
)

// Order is an immutable snapshot of a purchase taken at checkout. Only the
// fulfillment status, the payment verification sub-record, and the notes are
// mutated afterwards, and only by an admin.
type Order struct {
	ID              uint           `gorm:"primaryKey" json:"_id"`
	OrderID         string         `gorm:"uniqueIndex;not null" json:"orderId"` // customer-facing reference
	UserEmail       string         `gorm:"index;not null" json:"userEmail"`
	UserName        string         `json:"userName"`
	Items           []OrderItem    `gorm:"foreignKey:OrderRowID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Shipping        float64        `json:"shipping"`
	Total           float64        `json:"total"`
	PaymentDetails  PaymentDetails `gorm:"embedded;embeddedPrefix:payment_" json:"paymentDetails"`
	Status          OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingAddress Address        `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	OrderRowID uint `gorm:"index" json:"-"`
	// Snapshot columns, frozen at checkout
	ProductID     string                                `json:"productId"`
	Name          string                                `json:"name"`
	Price         float64                               `json:"price"`
	Image         string                                `json:"image"`
	Quantity      int                                   `json:"quantity"`
	Customization datatypes.JSONType[map[string]string] `json:"customization"`
}

// PaymentDetails records where the money was supposed to go (store payout
// destination, server-controlled) and the buyer's proof that it did
// (transaction id + screenshot), plus the admin verification outcome.
type PaymentDetails struct {
	Method        PaymentMethod `gorm:"type:VARCHAR(20)" json:"method"`
	UPIID         string        `json:"upiId,omitempty"`
	BankDetails   BankDetails   `gorm:"embedded;embeddedPrefix:bank_" json:"bankDetails"`
	TransactionID string        `json:"transactionId,omitempty"`
	Amount        float64       `json:"amount"`
	Screenshot    string        `json:"screenshot,omitempty"`
	Status        PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	VerifiedBy    string        `json:"verifiedBy,omitempty"`
	VerifiedAt    *time.Time    `json:"verifiedAt,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// BankDetails is the store's bank payout destination copied onto bank
// transfer orders.
type BankDetails struct {
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

// ParseOrderStatus maps a client-supplied string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentStatus maps a client-supplied string to a PaymentStatus.
func ParsePaymentStatus(status string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(status)) {
	case PaymentStatusPending:
		return PaymentStatusPending, nil
	case PaymentStatusVerified:
		return PaymentStatusVerified, nil
	case PaymentStatusRejected:
		return PaymentStatusRejected, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// ParsePaymentMethod maps a client-supplied string to a PaymentMethod.
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(method)) {
	case PaymentMethodUPI:
		return PaymentMethodUPI, nil
	case PaymentMethodBankTransfer:
		return PaymentMethodBankTransfer, nil
	case PaymentMethodCard:
		return PaymentMethodCard, nil
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// OrderStatuses lists the fulfillment statuses in their usual progression.
// Used by the admin stats endpoint so every status shows up with a count,
// including zero.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}
