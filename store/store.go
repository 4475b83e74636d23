package store

import "github.com/TheWhiteHat1/osint-bot-host/models"

// InitialCredits is granted to every user on first contact.
const InitialCredits = 2

// UserCredits pairs a user id with its current balance, for /stats output.
type UserCredits struct {
	UserID  int64
	Credits int
}

// Store defines everything handlers need from the persistence layer: the
// credit ledger, referral edges, the ban set and the per-user pending
// lookup slot. The pending slot is in-memory only and resets on restart.
type Store interface {
	// Ledger.
	EnsureUser(userID int64) (created bool, err error)
	HasUser(userID int64) bool
	Credits(userID int64) int
	AddCredits(userID int64, amount int) (int, error)
	DeductCredits(userID int64, amount int) (int, error)
	Debit(userID int64) (int, error)
	DeleteUser(userID int64) (bool, error)
	UserIDs() []int64
	UserCount() int
	TotalCredits() int
	TopUsers(n int) []UserCredits

	// Referral edges.
	Referrer(userID int64) (int64, bool)
	SetReferrer(userID, referrerID int64) (bonusApplied bool, err error)
	ReferralCount(referrerID int64) int
	ReferralTotal() int

	// Ban set.
	Ban(userID int64) error
	Unban(userID int64) (bool, error)
	IsBanned(userID int64) bool
	BannedCount() int

	// Pending lookup slot.
	SetPending(userID int64, kind models.Kind)
	Pending(userID int64) models.Kind
	ClearPending(userID int64)
}
