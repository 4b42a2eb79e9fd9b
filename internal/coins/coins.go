// Package coins implements the gamified reward economy. Award amounts come
// from the configured reward table; balances live in the storage record.
package coins

import (
	"fmt"
	"strings"

	"resolution/internal/config"
	"resolution/internal/storage"
)

// Bank awards and spends coins against the persisted balance.
type Bank struct {
	store   *storage.FileStore
	rewards config.RewardsConfig
}

// NewBank returns a bank over the given store and reward table.
func NewBank(store *storage.FileStore, rewards config.RewardsConfig) *Bank {
	return &Bank{store: store, rewards: rewards}
}

// Balance returns the current coin balance.
func (b *Bank) Balance() int {
	return b.store.Coins()
}

// AwardBibleReading credits coins for chapters read. Catch-up chapters earn
// the reduced rate.
func (b *Bank) AwardBibleReading(chapters int, catchup bool) (int, error) {
	rate := b.rewards.BibleChapter
	if catchup {
		rate = b.rewards.BibleCatchupChapter
	}
	earned := chapters * rate
	if _, err := b.store.AddCoins(earned); err != nil {
		return 0, err
	}
	return earned, nil
}

// AwardLeetCode credits coins for a completed problem of the given
// difficulty ("easy", "medium" or "hard").
func (b *Bank) AwardLeetCode(difficulty string) (int, error) {
	var earned int
	switch strings.ToLower(difficulty) {
	case "easy":
		earned = b.rewards.LeetCodeEasy
	case "medium":
		earned = b.rewards.LeetCodeMedium
	case "hard":
		earned = b.rewards.LeetCodeHard
	default:
		return 0, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	if _, err := b.store.AddCoins(earned); err != nil {
		return 0, err
	}
	return earned, nil
}

// AwardGoalsCompleted credits coins for count completed daily goals.
func (b *Bank) AwardGoalsCompleted(count int) (int, error) {
	earned := count * b.rewards.GoalCompleted
	if _, err := b.store.AddCoins(earned); err != nil {
		return 0, err
	}
	return earned, nil
}
