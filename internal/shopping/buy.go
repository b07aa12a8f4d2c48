package shopping

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/matching"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// ErrNothingToUndo is returned when the transaction log is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// DefaultExpiryDays is the shelf life assumed for purchases without a
// usable expiry date.
const DefaultExpiryDays = 7

// Purchase is one requested buy line referencing a shopping list entry
// by name. Quantity is optional; zero or absent buys the entry's
// missing amount. Expiry accepts several date spellings; anything
// unparsable falls back to the default shelf life.
type Purchase struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity,omitempty"`
	Expiry   string `json:"expiry,omitempty"`
}

// SkippedItem names a requested line the buy did not apply and why.
type SkippedItem struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// MergeRecord remembers a batch whose quantity a purchase increased,
// so undo can restore the previous amount.
type MergeRecord struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	PrevQuantity int    `json:"prev_quantity"`
	Added        int    `json:"added"`
	Expiry       string `json:"expiry"`
}

// AddRecord remembers a batch a purchase appended.
type AddRecord struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Expiry   string `json:"expiry"`
}

// Transaction is one applied buy for one week. Appended batches carry
// its ID in their batch_id field; merged batches are listed with their
// prior quantity.
type Transaction struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"` // DD-MM-YYYY
	Week   string        `json:"week,omitempty"`
	Merged []MergeRecord `json:"merged,omitempty"`
	Added  []AddRecord   `json:"added,omitempty"`
}

// Log holds applied transactions, newest last. Undo pops the newest.
type Log struct {
	Transactions []Transaction `json:"transactions"`
}

// BuyResult carries the outcome of a buy: the pantry after all applied
// lines, the lines that were skipped, and the transaction to log. The
// pantry equals the input when nothing was applied.
type BuyResult struct {
	Pantry      []types.Ingredient
	Skipped     []SkippedItem
	Transaction Transaction
	Applied     bool
}

var expiryLayouts = []string{
	types.DateFormat, // DD-MM-YYYY
	"02.01.2006",
	"02/01/2006",
	"2006-01-02",
}

// parseExpiry normalizes a purchase expiry to the stored layout. The
// fallback is today plus the default shelf life.
func parseExpiry(s string, today time.Time) string {
	s = strings.TrimSpace(s)
	for _, layout := range expiryLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(types.DateFormat)
		}
	}
	return today.AddDate(0, 0, DefaultExpiryDays).Format(types.DateFormat)
}

// categorize guesses a pantry tag from the ingredient name. First
// substring hit wins; unknown names land in "other".
var categoryRules = []struct {
	substr string
	tag    string
}{
	{"chicken", "meat-chicken"},
	{"beef", "meat-beef"},
	{"pork", "meat-pork"},
	{"bacon", "meat-pork"},
	{"salmon", "fish"},
	{"tuna", "fish"},
	{"cod", "fish"},
	{"shrimp", "seafood"},
	{"mussel", "seafood"},
	{"cheese", "cheese"},
	{"milk", "dairy"},
	{"yogurt", "dairy"},
	{"butter", "dairy"},
	{"cream", "dairy"},
	{"egg", "dairy"},
	{"pasta", "pasta"},
	{"spaghetti", "pasta"},
	{"noodle", "pasta"},
	{"apple", "fruits"},
	{"banana", "fruits"},
	{"orange", "fruits"},
	{"lemon", "fruits"},
	{"berry", "fruits"},
	{"tomato", "vegetables"},
	{"onion", "vegetables"},
	{"garlic", "vegetables"},
	{"carrot", "vegetables"},
	{"potato", "vegetables"},
	{"pepper", "vegetables"},
	{"frozen", "frozen"},
	{"canned", "canned"},
	{"flour", "baking"},
	{"sugar", "baking"},
	{"yeast", "baking"},
	{"rice", "grains"},
	{"oat", "grains"},
	{"bread", "grains"},
	{"oil", "oil"},
	{"vinegar", "condiment"},
	{"mustard", "condiment"},
	{"ketchup", "sauce"},
	{"sauce", "sauce"},
	{"salt", "spice"},
	{"paprika", "spice"},
	{"cinnamon", "spice"},
	{"oregano", "spice"},
	{"basil", "spice"},
}

func categorize(name string) []string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.substr) {
			return []string{rule.tag}
		}
	}
	return []string{"other"}
}

// findEntry resolves a requested name against the shopping list:
// exact case-insensitive match first, normalized key second.
func findEntry(list []Item, name string) (Item, bool) {
	for _, it := range list {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	key := matching.NormalizeName(name)
	for _, it := range list {
		if matching.NormalizeName(it.Name) == key {
			return it, true
		}
	}
	return Item{}, false
}

// Buy applies requested purchases against the week's shopping list.
// A request that resolves to no entry, or whose entry has nothing
// missing, is skipped with a reason. A request without a quantity buys
// the entry's missing amount. When an existing batch shares the entry's
// normalized name and the resolved expiry the quantity is merged into
// it; otherwise a new batch tagged with the transaction ID is appended.
// The returned pantry is a fresh copy; the input stays as is.
func Buy(list []Item, items []types.Ingredient, week string, requests []Purchase, today time.Time) BuyResult {
	out := make([]types.Ingredient, len(items))
	copy(out, items)

	res := BuyResult{
		Transaction: Transaction{
			ID:   uuid.NewString(),
			Date: today.Format(types.DateFormat),
			Week: week,
		},
	}
	tx := &res.Transaction

	for _, req := range requests {
		name := strings.TrimSpace(req.Name)
		entry, ok := findEntry(list, name)
		if !ok {
			res.Skipped = append(res.Skipped, SkippedItem{Name: name, Reason: "not in shopping list"})
			continue
		}
		if entry.Missing <= 0 {
			res.Skipped = append(res.Skipped, SkippedItem{Name: entry.Name, Reason: "nothing missing"})
			continue
		}
		qty := req.Quantity
		if qty <= 0 {
			qty = entry.Missing
		}
		key := matching.NormalizeName(entry.Name)
		expiry := parseExpiry(req.Expiry, today)

		merged := false
		for i := range out {
			if matching.NormalizeName(out[i].Name) != key || out[i].Expiry != expiry {
				continue
			}
			tx.Merged = append(tx.Merged, MergeRecord{
				Index:        i,
				Name:         out[i].Name,
				PrevQuantity: out[i].Quantity,
				Added:        qty,
				Expiry:       expiry,
			})
			out[i].Quantity += qty
			merged = true
			break
		}
		if !merged {
			out = append(out, types.Ingredient{
				Name:     entry.Name,
				Unit:     entry.Unit,
				Quantity: qty,
				Expiry:   expiry,
				Tags:     categorize(entry.Name),
				BatchID:  tx.ID,
			})
			tx.Added = append(tx.Added, AddRecord{Name: entry.Name, Quantity: qty, Expiry: expiry})
		}
	}

	res.Applied = len(tx.Merged)+len(tx.Added) > 0
	if res.Applied {
		res.Pantry = out
	} else {
		res.Pantry = items
	}
	return res
}

// Undo reverts the newest transaction: merged batches get their prior
// quantity back, walked newest merge first, then every batch carrying
// the transaction ID is removed. Returns the restored pantry and the
// shortened log.
func Undo(items []types.Ingredient, log Log) ([]types.Ingredient, Log, error) {
	if len(log.Transactions) == 0 {
		return items, log, ErrNothingToUndo
	}
	tx := log.Transactions[len(log.Transactions)-1]

	out := make([]types.Ingredient, len(items))
	copy(out, items)

	for i := len(tx.Merged) - 1; i >= 0; i-- {
		m := tx.Merged[i]
		if m.Index >= 0 && m.Index < len(out) {
			out[m.Index].Quantity = m.PrevQuantity
		}
	}

	kept := out[:0]
	for _, it := range out {
		if it.BatchID == tx.ID {
			continue
		}
		kept = append(kept, it)
	}

	log.Transactions = log.Transactions[:len(log.Transactions)-1]
	return kept, log, nil
}
