package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

// FileStore keeps every store in memory and mirrors each one to a JSON file
// on every mutation. On disk: an object of user id -> credits, an object of
// referred id -> referrer id, and an array of banned ids. Files are rewritten
// in full; there is no partial update.
type FileStore struct {
	userFile     string
	referralFile string
	bannedFile   string

	credits   map[int64]int
	referrals map[int64]int64
	banned    mapset.Set[int64]
	pending   map[int64]models.Kind

	logger *zap.Logger
}

// NewFileStore loads the three data files. A missing file starts the store
// empty; a corrupt file logs the error and also starts empty rather than
// refusing to boot.
func NewFileStore(userFile, referralFile, bannedFile string, logger *zap.Logger) *FileStore {
	s := &FileStore{
		userFile:     userFile,
		referralFile: referralFile,
		bannedFile:   bannedFile,
		credits:      make(map[int64]int),
		referrals:    make(map[int64]int64),
		banned:       mapset.NewThreadUnsafeSet[int64](),
		pending:      make(map[int64]models.Kind),
		logger:       logger,
	}
	s.load()
	return s
}

func (s *FileStore) load() {
	if raw, err := os.ReadFile(s.userFile); err == nil {
		var m map[string]int
		if err := json.Unmarshal(raw, &m); err != nil {
			s.logger.Error("failed to parse user data file", zap.String("file", s.userFile), zap.Error(err))
		} else {
			for k, v := range m {
				if id, err := strconv.ParseInt(k, 10, 64); err == nil {
					s.credits[id] = v
				}
			}
		}
	}

	if raw, err := os.ReadFile(s.referralFile); err == nil {
		var m map[string]int64
		if err := json.Unmarshal(raw, &m); err != nil {
			s.logger.Error("failed to parse referral data file", zap.String("file", s.referralFile), zap.Error(err))
		} else {
			for k, v := range m {
				if id, err := strconv.ParseInt(k, 10, 64); err == nil {
					s.referrals[id] = v
				}
			}
		}
	}

	if raw, err := os.ReadFile(s.bannedFile); err == nil {
		var ids []int64
		if err := json.Unmarshal(raw, &ids); err != nil {
			s.logger.Error("failed to parse banned users file", zap.String("file", s.bannedFile), zap.Error(err))
		} else {
			s.banned.Append(ids...)
		}
	}
}

func (s *FileStore) saveCredits() error {
	m := make(map[string]int, len(s.credits))
	for id, c := range s.credits {
		m[strconv.FormatInt(id, 10)] = c
	}
	return writeJSON(s.userFile, m)
}

func (s *FileStore) saveReferrals() error {
	m := make(map[string]int64, len(s.referrals))
	for id, ref := range s.referrals {
		m[strconv.FormatInt(id, 10)] = ref
	}
	return writeJSON(s.referralFile, m)
}

func (s *FileStore) saveBanned() error {
	ids := s.banned.ToSlice()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return writeJSON(s.bannedFile, ids)
}

func writeJSON(path string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// --- Ledger ---

// EnsureUser creates a ledger entry with the initial grant when the user is
// unseen. Returns whether a new entry was created.
func (s *FileStore) EnsureUser(userID int64) (bool, error) {
	if _, ok := s.credits[userID]; ok {
		return false, nil
	}
	s.credits[userID] = InitialCredits
	return true, s.saveCredits()
}

func (s *FileStore) HasUser(userID int64) bool {
	_, ok := s.credits[userID]
	return ok
}

func (s *FileStore) Credits(userID int64) int {
	return s.credits[userID]
}

func (s *FileStore) AddCredits(userID int64, amount int) (int, error) {
	s.credits[userID] += amount
	return s.credits[userID], s.saveCredits()
}

// DeductCredits subtracts amount, floored at zero. Admin-side deduction.
func (s *FileStore) DeductCredits(userID int64, amount int) (int, error) {
	balance := s.credits[userID] - amount
	if balance < 0 {
		balance = 0
	}
	s.credits[userID] = balance
	return balance, s.saveCredits()
}

// Debit charges one credit for a completed lookup.
func (s *FileStore) Debit(userID int64) (int, error) {
	s.credits[userID]--
	return s.credits[userID], s.saveCredits()
}

func (s *FileStore) DeleteUser(userID int64) (bool, error) {
	if _, ok := s.credits[userID]; !ok {
		return false, nil
	}
	delete(s.credits, userID)
	return true, s.saveCredits()
}

func (s *FileStore) UserIDs() []int64 {
	ids := make([]int64, 0, len(s.credits))
	for id := range s.credits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *FileStore) UserCount() int { return len(s.credits) }

func (s *FileStore) TotalCredits() int {
	total := 0
	for _, c := range s.credits {
		total += c
	}
	return total
}

// TopUsers returns the n highest balances, largest first. Ties break on the
// lower user id so the order is stable.
func (s *FileStore) TopUsers(n int) []UserCredits {
	all := make([]UserCredits, 0, len(s.credits))
	for id, c := range s.credits {
		all = append(all, UserCredits{UserID: id, Credits: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Credits != all[j].Credits {
			return all[i].Credits > all[j].Credits
		}
		return all[i].UserID < all[j].UserID
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// --- Referral edges ---

func (s *FileStore) Referrer(userID int64) (int64, bool) {
	ref, ok := s.referrals[userID]
	return ref, ok
}

// SetReferrer records the referral edge once. A second attempt, a
// self-referral, or an unknown referrer leaves the stored edge untouched.
// The referrer bonus is applied only when the referrer already has a ledger
// entry; the return value tells the caller whether to notify them.
func (s *FileStore) SetReferrer(userID, referrerID int64) (bool, error) {
	if userID == referrerID {
		return false, nil
	}
	if _, exists := s.referrals[userID]; exists {
		return false, nil
	}
	s.referrals[userID] = referrerID
	if err := s.saveReferrals(); err != nil {
		return false, err
	}
	if _, known := s.credits[referrerID]; !known {
		return false, nil
	}
	_, err := s.AddCredits(referrerID, 1)
	return err == nil, err
}

func (s *FileStore) ReferralCount(referrerID int64) int {
	count := 0
	for _, ref := range s.referrals {
		if ref == referrerID {
			count++
		}
	}
	return count
}

func (s *FileStore) ReferralTotal() int { return len(s.referrals) }

// --- Ban set ---

func (s *FileStore) Ban(userID int64) error {
	s.banned.Add(userID)
	return s.saveBanned()
}

func (s *FileStore) Unban(userID int64) (bool, error) {
	if !s.banned.Contains(userID) {
		return false, nil
	}
	s.banned.Remove(userID)
	return true, s.saveBanned()
}

func (s *FileStore) IsBanned(userID int64) bool {
	return s.banned.Contains(userID)
}

func (s *FileStore) BannedCount() int { return s.banned.Cardinality() }

// --- Pending lookup slot ---

// SetPending overwrites any earlier selection; the last menu choice wins.
func (s *FileStore) SetPending(userID int64, kind models.Kind) {
	if kind == models.KindNone {
		delete(s.pending, userID)
		return
	}
	s.pending[userID] = kind
}

func (s *FileStore) Pending(userID int64) models.Kind {
	return s.pending[userID]
}

func (s *FileStore) ClearPending(userID int64) {
	delete(s.pending, userID)
}

var _ Store = (*FileStore)(nil)
