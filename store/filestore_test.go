package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewFileStore(
		filepath.Join(dir, "user_data.json"),
		filepath.Join(dir, "referral_data.json"),
		filepath.Join(dir, "banned_users.json"),
		zap.NewNop(),
	)
	return s, dir
}

func TestEnsureUserInitialGrant(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.EnsureUser(100)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, InitialCredits, s.Credits(100))

	// A second contact must not reset the balance.
	_, err = s.Debit(100)
	require.NoError(t, err)
	created, err = s.EnsureUser(100)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, s.Credits(100))
}

func TestDebitSequence(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.EnsureUser(100)
	require.NoError(t, err)

	for i := 0; i < InitialCredits; i++ {
		_, err := s.Debit(100)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, s.Credits(100))
}

func TestDeductCreditsFloorsAtZero(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddCredits(100, 3)
	require.NoError(t, err)

	balance, err := s.DeductCredits(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
	assert.Equal(t, 0, s.Credits(100))
}

func TestReferralEdgeCreatedOnce(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.EnsureUser(5)
	require.NoError(t, err)

	bonus, err := s.SetReferrer(200, 5)
	require.NoError(t, err)
	assert.True(t, bonus)
	assert.Equal(t, InitialCredits+1, s.Credits(5))

	t.Run("same referrer again is a no-op", func(t *testing.T) {
		bonus, err := s.SetReferrer(200, 5)
		require.NoError(t, err)
		assert.False(t, bonus)
		assert.Equal(t, InitialCredits+1, s.Credits(5))
	})

	t.Run("different referrer does not replace the edge", func(t *testing.T) {
		_, err := s.EnsureUser(6)
		require.NoError(t, err)
		bonus, err := s.SetReferrer(200, 6)
		require.NoError(t, err)
		assert.False(t, bonus)
		ref, ok := s.Referrer(200)
		assert.True(t, ok)
		assert.Equal(t, int64(5), ref)
		assert.Equal(t, InitialCredits, s.Credits(6))
	})
}

func TestReferralSelfAndUnknownReferrer(t *testing.T) {
	s, _ := newTestStore(t)

	t.Run("self referral rejected", func(t *testing.T) {
		bonus, err := s.SetReferrer(7, 7)
		require.NoError(t, err)
		assert.False(t, bonus)
		_, ok := s.Referrer(7)
		assert.False(t, ok)
	})

	t.Run("unknown referrer gets edge but no bonus", func(t *testing.T) {
		bonus, err := s.SetReferrer(200, 999)
		require.NoError(t, err)
		assert.False(t, bonus)
		ref, ok := s.Referrer(200)
		assert.True(t, ok)
		assert.Equal(t, int64(999), ref)
		assert.False(t, s.HasUser(999))
	})
}

func TestReferralCounts(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.EnsureUser(5)
	require.NoError(t, err)

	for _, referred := range []int64{201, 202, 203} {
		_, err := s.SetReferrer(referred, 5)
		require.NoError(t, err)
	}
	_, err = s.SetReferrer(204, 6)
	require.NoError(t, err)

	assert.Equal(t, 3, s.ReferralCount(5))
	assert.Equal(t, 4, s.ReferralTotal())
}

func TestBanSet(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Ban(100))
	assert.True(t, s.IsBanned(100))
	assert.Equal(t, 1, s.BannedCount())

	removed, err := s.Unban(100)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.IsBanned(100))

	removed, err = s.Unban(100)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteUser(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.EnsureUser(100)
	require.NoError(t, err)

	deleted, err := s.DeleteUser(100)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, s.HasUser(100))

	deleted, err = s.DeleteUser(100)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Deleted users revert to new-user semantics on next contact.
	created, err := s.EnsureUser(100)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, InitialCredits, s.Credits(100))
}

func TestTopUsers(t *testing.T) {
	s, _ := newTestStore(t)
	balances := map[int64]int{1: 5, 2: 9, 3: 1, 4: 9, 5: 3, 6: 0}
	for id, n := range balances {
		_, err := s.AddCredits(id, n)
		require.NoError(t, err)
	}

	top := s.TopUsers(3)
	assert.Equal(t, []UserCredits{{2, 9}, {4, 9}, {1, 5}}, top)
	assert.Equal(t, 27, s.TotalCredits())
	assert.Equal(t, 6, s.UserCount())
}

func TestPendingSlot(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, models.KindNone, s.Pending(100))

	s.SetPending(100, models.KindNumber)
	s.SetPending(100, models.KindVehicle) // last selection wins
	assert.Equal(t, models.KindVehicle, s.Pending(100))

	s.ClearPending(100)
	assert.Equal(t, models.KindNone, s.Pending(100))
}

func TestPersistenceRoundTrip(t *testing.T) {
	s, dir := newTestStore(t)
	_, err := s.EnsureUser(100)
	require.NoError(t, err)
	_, err = s.SetReferrer(200, 100)
	require.NoError(t, err)
	require.NoError(t, s.Ban(300))
	s.SetPending(100, models.KindGST)

	reloaded := NewFileStore(
		filepath.Join(dir, "user_data.json"),
		filepath.Join(dir, "referral_data.json"),
		filepath.Join(dir, "banned_users.json"),
		zap.NewNop(),
	)

	assert.Equal(t, InitialCredits+1, reloaded.Credits(100))
	ref, ok := reloaded.Referrer(200)
	assert.True(t, ok)
	assert.Equal(t, int64(100), ref)
	assert.True(t, reloaded.IsBanned(300))

	// The pending slot is intentionally not persisted.
	assert.Equal(t, models.KindNone, reloaded.Pending(100))
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	userFile := filepath.Join(dir, "user_data.json")
	require.NoError(t, os.WriteFile(userFile, []byte("{not json"), 0o644))

	s := NewFileStore(userFile,
		filepath.Join(dir, "referral_data.json"),
		filepath.Join(dir, "banned_users.json"),
		zap.NewNop(),
	)
	assert.Equal(t, 0, s.UserCount())

	// The store stays writable after a corrupt load.
	_, err := s.EnsureUser(100)
	require.NoError(t, err)
	assert.Equal(t, InitialCredits, s.Credits(100))
}
