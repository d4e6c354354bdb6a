package model

import "time"

// Manifest entry types.
const (
	EntryCredit = "credit"
	EntryDebit  = "debit"
)

// ManifestEntry is one credit or debit transaction attributed to a client.
// Amounts are whole currency units. Status active means the entry counts
// toward the current balance; inactive entries stay in storage and remain
// readable but are excluded from all totals.
type ManifestEntry struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Signed returns the entry amount with its sign applied
// (credits add, debits subtract).
func (e *ManifestEntry) Signed() int64 {
	if e.Type == EntryDebit {
		return -e.Amount
	}
	return e.Amount
}

// EntryTotals holds credit/debit sums over a set of active entries.
type EntryTotals struct {
	Credit int64 `json:"credit"`
	Debit  int64 `json:"debit"`
}

// Balance is the net of the totals.
func (t EntryTotals) Balance() int64 { return t.Credit - t.Debit }

// SeriesPoint is one step of a chronological running-balance series.
type SeriesPoint struct {
	Date    time.Time `json:"date"`
	Credit  int64     `json:"credit"`
	Debit   int64     `json:"debit"`
	Balance int64     `json:"balance"`
}

// ClientBalance is a client's opening balance, stored separately from the
// transaction history. One row per client, upsert semantics.
type ClientBalance struct {
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Amount     int64     `json:"amount"`
	Type       string    `json:"type"`
	UpdatedAt  time.Time `json:"updated_at"`
}
