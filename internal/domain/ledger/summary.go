package ledger

import (
	"github.com/shopspring/decimal"
)

// Summary is the aggregated view of a set of cash entries. TotalBalance
// applies the sign convention; ByType keeps the unsigned sum per type.
type Summary struct {
	TotalBalance decimal.Decimal
	ByType       map[TransactionType]decimal.Decimal
}

// Summarize folds a set of entries into a Summary in a single pass.
// The result is deterministic for a given entry set regardless of
// entry ordering: it is a sum, not a running statement.
func Summarize(entries []CashEntry) Summary {
	s := Summary{
		TotalBalance: decimal.Zero,
		ByType:       make(map[TransactionType]decimal.Decimal),
	}

	for i := range entries {
		e := &entries[i]
		s.TotalBalance = s.TotalBalance.Add(e.SignedAmount())

		current, ok := s.ByType[e.TransactionType]
		if !ok {
			current = decimal.Zero
		}
		s.ByType[e.TransactionType] = current.Add(e.Amount)
	}

	return s
}
