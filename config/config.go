package config

import "os"

// BankAccount is the bank transfer payout destination shown to buyers.
type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	AccountHolder string `json:"accountHolder"`
}

// Payout holds the single payout destination for the whole store. Every order
// records a copy of it so buyers always see where the money was supposed to go,
// even if the store account changes later.
type Payout struct {
	UPIID string
	Bank  BankAccount
}

func LoadPayout() Payout {
	return Payout{
		UPIID: getenv("PAYOUT_UPI_ID", "memoriestore@upi"),
		Bank: BankAccount{
			BankName:      getenv("PAYOUT_BANK_NAME", "State Bank of India"),
			AccountNumber: getenv("PAYOUT_ACCOUNT_NUMBER", "00000000000000"),
			IFSCCode:      getenv("PAYOUT_IFSC_CODE", "SBIN0000001"),
			AccountHolder: getenv("PAYOUT_ACCOUNT_HOLDER", "Memoriestore"),
		},
	}
}

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// UploadsDir is where product images and payment screenshots are stored and
// served from under /uploads.
func UploadsDir() string {
	return getenv("UPLOADS_DIR", "/var/www/memoriestore/uploads")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
