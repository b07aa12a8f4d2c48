// Package storage persists the application documents as JSON files in
// a single data directory: the recipe catalog, the pantry, the weekly
// plans, the purchase transaction log and the cook log.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

const (
	recipesFile      = "recipes.json"
	pantryFile       = "pantry.json"
	planFile         = "plan.json"
	transactionsFile = "shopping_transactions.json"
	cookLogFile      = "cooked_log.json"
)

// Store is a JSON document store rooted at one directory. All writes
// go through a temp file plus rename so a crash never leaves a half
// written document behind. A single mutex serializes every operation;
// the documents are small and contention is not a concern here.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the data directory if needed and returns a store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store reads and writes.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON loads a document into out. A missing file is not an error;
// it reports found=false and leaves out untouched.
func (s *Store) readJSON(name string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

// writeJSON writes a document atomically via temp file and rename.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// LoadRecipes reads the recipe catalog. A missing document yields an
// empty catalog.
func (s *Store) LoadRecipes() ([]types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []types.Recipe
	if _, err := s.readJSON(recipesFile, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadPantry reads the pantry batches, sanitizing tags so documents
// edited by hand heal on the next load.
func (s *Store) LoadPantry() ([]types.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPantryLocked()
}

func (s *Store) loadPantryLocked() ([]types.Ingredient, error) {
	var items []types.Ingredient
	if _, err := s.readJSON(pantryFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Tags = types.SanitizeTags(items[i].Tags)
	}
	return items, nil
}

// SavePantry writes the pantry batches.
func (s *Store) SavePantry(items []types.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savePantryLocked(items)
}

func (s *Store) savePantryLocked(items []types.Ingredient) error {
	if items == nil {
		items = []types.Ingredient{}
	}
	for i := range items {
		items[i].Tags = types.SanitizeTags(items[i].Tags)
	}
	return s.writeJSON(pantryFile, items)
}

// LoadPlan returns the plan for one ISO week, creating an empty plan
// when the document has no entry for it yet.
func (s *Store) LoadPlan(year, week int) (*plan.WeekPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]json.RawMessage{}
	if _, err := s.readJSON(planFile, &doc); err != nil {
		return nil, err
	}

	p := &plan.WeekPlan{Year: year, Week: week}
	raw, ok := doc[plan.Key(year, week)]
	if !ok {
		return plan.New(year, week), nil
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", plan.Key(year, week), err)
	}
	p.Normalize()
	return p, nil
}

// SavePlan writes one week back into the plan document, leaving other
// weeks in place.
func (s *Store) SavePlan(p *plan.WeekPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]json.RawMessage{}
	if _, err := s.readJSON(planFile, &doc); err != nil {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan %s: %w", plan.Key(p.Year, p.Week), err)
	}
	doc[plan.Key(p.Year, p.Week)] = raw
	return s.writeJSON(planFile, doc)
}

// LoadTransactions reads the purchase transaction log.
func (s *Store) LoadTransactions() (shopping.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var log shopping.Log
	if _, err := s.readJSON(transactionsFile, &log); err != nil {
		return shopping.Log{}, err
	}
	return log, nil
}

// SaveTransactions writes the purchase transaction log.
func (s *Store) SaveTransactions(log shopping.Log) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(transactionsFile, log)
}

// ApplyBuy persists the outcome of a buy as one unit: the updated
// pantry and the extended transaction log.
func (s *Store) ApplyBuy(items []types.Ingredient, tx shopping.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var log shopping.Log
	if _, err := s.readJSON(transactionsFile, &log); err != nil {
		return err
	}
	log.Transactions = append(log.Transactions, tx)
	if err := s.savePantryLocked(items); err != nil {
		return err
	}
	return s.writeJSON(transactionsFile, log)
}

// LoadCookLog reads the cook history, oldest first.
func (s *Store) LoadCookLog() ([]recipes.CookRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var log []recipes.CookRecord
	if _, err := s.readJSON(cookLogFile, &log); err != nil {
		return nil, err
	}
	return log, nil
}

// AppendCookRecord adds one entry to the cook history.
func (s *Store) AppendCookRecord(rec recipes.CookRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var log []recipes.CookRecord
	if _, err := s.readJSON(cookLogFile, &log); err != nil {
		return err
	}
	log = append(log, rec)
	return s.writeJSON(cookLogFile, log)
}
