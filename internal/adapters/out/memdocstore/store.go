// Package memdocstore provides an in-memory implementation of the document
// store port with the same revision-token semantics as the real store.
// It backs unit tests and local development without a running CouchDB.
package memdocstore

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"
)

// The design documents written by the bootstrap all follow the same shape;
// the in-memory store interprets them instead of running JavaScript.
var (
	typeFilterRe = regexp.MustCompile(`doc\.type\s*===\s*'([^']+)'`)
	emitFieldRe  = regexp.MustCompile(`emit\(doc\.([A-Za-z][A-Za-z0-9]*)`)
)

type viewDef struct {
	typeFilter string
	keyField   string
}

// Store is an in-memory DocumentStore. Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]ports.Document
	views       map[string]viewDef // "collection/design/view"
	revSeq      uint64
	offline     bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		collections: make(map[string]map[string]ports.Document),
		views:       make(map[string]viewDef),
	}
}

// SetOffline makes every subsequent operation fail with errs.ErrUnavailable,
// simulating an unreachable store.
func (s *Store) SetOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

func (s *Store) checkAvailable(operation string) error {
	if s.offline {
		return errs.NewUnavailableError(operation)
	}
	return nil
}

func (s *Store) nextRev() string {
	s.revSeq++
	return fmt.Sprintf("%d-%s", s.revSeq, uuid.NewString()[:8])
}

// copyDoc round-trips through JSON so callers never share memory with the
// stored document and value types match what a real store would return.
func copyDoc(doc ports.Document) ports.Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	var out ports.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Get implements ports.DocumentStore.
func (s *Store) Get(_ context.Context, collection, id string) (ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAvailable("get " + collection + "/" + id); err != nil {
		return nil, err
	}

	docs, ok := s.collections[collection]
	if !ok {
		return nil, errs.NewObjectNotFoundError("collection", collection)
	}
	doc, ok := docs[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("document", collection+"/"+id)
	}
	return copyDoc(doc), nil
}

// Put implements ports.DocumentStore.
func (s *Store) Put(_ context.Context, collection string, doc ports.Document) (ports.PutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAvailable("put " + collection); err != nil {
		return ports.PutResult{}, err
	}

	return s.putLocked(collection, doc)
}

func (s *Store) putLocked(collection string, doc ports.Document) (ports.PutResult, error) {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]ports.Document)
		s.collections[collection] = docs
	}

	id := doc.ID()
	if id == "" {
		id = uuid.NewString()
	}

	stored, exists := docs[id]
	rev := doc.Rev()
	switch {
	case exists && rev != stored.Rev():
		return ports.PutResult{}, errs.NewConflictError(collection, id, rev)
	case !exists && rev != "":
		return ports.PutResult{}, errs.NewConflictError(collection, id, rev)
	}

	saved := copyDoc(doc)
	saved["_id"] = id
	newRev := s.nextRev()
	saved["_rev"] = newRev
	docs[id] = saved

	return ports.PutResult{ID: id, Rev: newRev}, nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(_ context.Context, collection, id, rev string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAvailable("delete " + collection + "/" + id); err != nil {
		return err
	}

	docs, ok := s.collections[collection]
	if !ok {
		return errs.NewObjectNotFoundError("collection", collection)
	}
	stored, ok := docs[id]
	if !ok {
		return errs.NewObjectNotFoundError("document", collection+"/"+id)
	}
	if stored.Rev() != rev {
		return errs.NewConflictError(collection, id, rev)
	}

	delete(docs, id)
	return nil
}

// Find implements ports.DocumentStore. The selector subset covers what the
// repositories use: exact scalar equality and {"$in": [...]} per field, with
// single-field sort and a limit.
func (s *Store) Find(_ context.Context, collection string, query ports.Query) ([]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAvailable("find " + collection); err != nil {
		return nil, err
	}

	docs := s.collections[collection]
	matched := make([]ports.Document, 0)
	for _, doc := range docs {
		if matchesSelector(doc, query.Selector) {
			matched = append(matched, copyDoc(doc))
		}
	}

	sortDocs(matched, query.Sort)

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func matchesSelector(doc ports.Document, selector map[string]any) bool {
	for field, want := range selector {
		got, ok := doc[field]
		if !ok {
			return false
		}

		if cond, isMap := want.(map[string]any); isMap {
			in, hasIn := cond["$in"].([]any)
			if !hasIn {
				return false
			}
			found := false
			for _, candidate := range in {
				if fmt.Sprint(candidate) == fmt.Sprint(got) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}

		if fmt.Sprint(want) != fmt.Sprint(got) {
			return false
		}
	}
	return true
}

func sortDocs(docs []ports.Document, sortSpec []map[string]string) {
	if len(sortSpec) == 0 {
		sort.Slice(docs, func(i, j int) bool { return docs[i].ID() < docs[j].ID() })
		return
	}

	var field, direction string
	for f, d := range sortSpec[0] {
		field, direction = f, d
	}

	sort.Slice(docs, func(i, j int) bool {
		a := fmt.Sprint(docs[i][field])
		b := fmt.Sprint(docs[j][field])
		if direction == "desc" {
			return a > b
		}
		return a < b
	})
}

// View implements ports.DocumentStore against the view definitions
// registered through EnsureView.
func (s *Store) View(_ context.Context, collection, design, view string, opts ports.ViewOptions) ([]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAvailable("view " + collection + "/" + design + "/" + view); err != nil {
		return nil, err
	}

	def, ok := s.views[viewKey(collection, design, view)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("view", design+"/"+view)
	}

	type row struct {
		key string
		doc ports.Document
	}
	rows := make([]row, 0)
	for _, doc := range s.collections[collection] {
		if def.typeFilter != "" && fmt.Sprint(doc["type"]) != def.typeFilter {
			continue
		}
		key := fmt.Sprint(doc[def.keyField])
		if opts.Key != "" && key != opts.Key {
			continue
		}
		rows = append(rows, row{key: key, doc: copyDoc(doc)})
	}

	sort.Slice(rows, func(i, j int) bool {
		if opts.Descending {
			return rows[i].key > rows[j].key
		}
		return rows[i].key < rows[j].key
	})

	docs := make([]ports.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.doc)
	}
	if opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

// BulkPut implements ports.DocumentStore.
func (s *Store) BulkPut(_ context.Context, collection string, docs []ports.Document) ([]ports.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAvailable("bulk put " + collection); err != nil {
		return nil, err
	}

	results := make([]ports.BulkResult, 0, len(docs))
	for _, doc := range docs {
		res, err := s.putLocked(collection, doc)
		results = append(results, ports.BulkResult{ID: res.ID, Rev: res.Rev, Err: err})
	}
	return results, nil
}

// EnsureCollection implements ports.DocumentStore.
func (s *Store) EnsureCollection(_ context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAvailable("ensure collection " + collection); err != nil {
		return err
	}

	if _, ok := s.collections[collection]; !ok {
		s.collections[collection] = make(map[string]ports.Document)
	}
	return nil
}

// EnsureView implements ports.DocumentStore by interpreting the map function:
// an optional doc.type filter and the emitted key field.
func (s *Store) EnsureView(_ context.Context, collection, design string, views map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAvailable("ensure view " + collection + "/" + design); err != nil {
		return err
	}

	for name, mapFn := range views {
		def := viewDef{}
		if m := typeFilterRe.FindStringSubmatch(mapFn); m != nil {
			def.typeFilter = m[1]
		}
		if m := emitFieldRe.FindStringSubmatch(mapFn); m != nil {
			def.keyField = m[1]
		}
		s.views[viewKey(collection, design, name)] = def
	}
	return nil
}

func viewKey(collection, design, view string) string {
	return strings.Join([]string{collection, design, view}, "/")
}

// RevisionSequence exposes the monotonic revision counter, useful in tests
// asserting that a write produced a new revision.
func (s *Store) RevisionSequence() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revSeq
}

var _ ports.DocumentStore = (*Store)(nil)
