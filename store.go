package spend

import (
	"errors"
	"io"
	"log"

	"github.com/etnz/spend/kv"
)

// DefaultKey is the key under which the whole ledger is persisted.
const DefaultKey = "expenses"

// ErrInvalidAmount is returned by Store.Add when the draft's amount is
// absent, non-numeric, or not strictly positive.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// Store is the single source of truth for the ledger. It owns the only
// mutable Ledger of the session, loads it once at startup, and writes it
// back to the persistence collaborator after every mutation.
//
// Persistence is best-effort: a write failure is logged and swallowed, the
// in-memory mutation stands, and the next successful save reconciles the
// divergence. There is exactly one logical writer, so no locking is needed.
type Store struct {
	ledger *Ledger
	kv     kv.Store
	key    string
}

// Open loads the persisted ledger from 'store' under 'key'. A missing,
// malformed or non-array payload yields an empty ledger rather than an
// error: corrupted persisted state is never fatal.
func Open(store kv.Store, key string) *Store {
	s := &Store{kv: store, key: key}

	data, ok, err := store.Get(key)
	if err != nil {
		log.Printf("could not read persisted ledger %q, starting empty: %v", key, err)
	}
	if !ok || err != nil {
		s.ledger = NewLedger()
		return s
	}
	s.ledger = DecodeLedger(data)
	return s
}

// Ledger returns the store's ledger. Callers must treat it as read-only;
// all mutations go through the Store so they are persisted.
func (s *Store) Ledger() *Ledger { return s.ledger }

// Add normalizes the draft, assigns it a fresh id, prepends it to the
// ledger and persists. It returns ErrInvalidAmount, mutating nothing, when
// the normalized amount is not strictly positive.
func (s *Store) Add(d Draft) (Record, error) {
	d.ID = "" // drafts never carry an id, only imports do
	record, ok := Normalize(d)
	if !ok {
		return Record{}, ErrInvalidAmount
	}
	s.ledger.Add(record)
	s.save()
	return record, nil
}

// Delete removes the record with the given id, if present, and persists.
// Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.ledger.Delete(id)
	s.save()
}

// Clear unconditionally empties the ledger and persists. The confirmation
// gate belongs to the caller.
func (s *Store) Clear() {
	s.ledger.Clear()
	s.save()
}

// Import reads the interchange format from 'r' and replaces the whole
// ledger with its surviving records. When the payload is not a JSON array
// the error is returned and the existing ledger is left untouched.
// It returns how many records were kept and how many were dropped.
func (s *Store) Import(r io.Reader) (kept, dropped int, err error) {
	records, dropped, err := Import(r)
	if err != nil {
		return 0, 0, err
	}
	s.ledger.ReplaceAll(records)
	s.save()
	return len(records), dropped, nil
}

// Export writes the full ledger to 'w' in the interchange format.
func (s *Store) Export(w io.Writer) error {
	return Export(w, s.ledger)
}

// save writes the ledger back to the persistence collaborator. Failures
// are logged and swallowed: persistence must never crash a mutation.
func (s *Store) save() {
	data, err := EncodeLedger(s.ledger)
	if err != nil {
		log.Printf("could not encode ledger %q: %v", s.key, err)
		return
	}
	if err := s.kv.Put(s.key, data); err != nil {
		log.Printf("could not persist ledger %q: %v", s.key, err)
	}
}
