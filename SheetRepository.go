package main

import (
	"fmt"
	"io"
	"log/slog"
	"miniSheet/contracts"
	"sync"

	"go.etcd.io/bbolt"
)

var cellsBucket = []byte("cells")

// SheetRepository is the concurrent-safe facade over Sheet. It journals raw inputs to bbolt
// when a database is configured and pushes touched cells to the webhook dispatcher.
type SheetRepository struct {
	mu                sync.RWMutex
	sheet             *Sheet
	db                *bbolt.DB
	serializer        contracts.CellSerializer
	canonicalizer     contracts.Canonicalizer
	webhookDispatcher contracts.WebhookDispatcher
	logger            *slog.Logger
}

func NewSheetRepository(
	sheet *Sheet, db *bbolt.DB,
	serializer contracts.CellSerializer, canonicalizer contracts.Canonicalizer,
	webhookDispatcher contracts.WebhookDispatcher, logger *slog.Logger,
) *SheetRepository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &SheetRepository{
		sheet:             sheet,
		db:                db,
		serializer:        serializer,
		canonicalizer:     canonicalizer,
		webhookDispatcher: webhookDispatcher,
		logger:            logger,
	}
}

func (s *SheetRepository) SetCell(cellId string, raw string) (*contracts.Cell, error) {
	cellId = s.canonicalizer.Canonicalize(cellId)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sheet.GetCell(cellId); err != nil {
		return nil, err
	}

	// journal first: a failed write must not leave an unsaved edit in memory
	if err := s.persist(cellId, raw); err != nil {
		return nil, err
	}

	touched, err := s.sheet.UpdateCell(cellId, raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("cell updated", "cell_id", cellId, "touched", len(touched))

	if s.webhookDispatcher != nil && len(touched) > 0 {
		s.webhookDispatcher.Notify(touched)
	}

	cell := touched[0]
	return &cell, nil
}

func (s *SheetRepository) GetCell(cellId string) (*contracts.Cell, error) {
	cellId = s.canonicalizer.Canonicalize(cellId)

	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, err := s.sheet.GetCell(cellId)
	if err != nil {
		return nil, err
	}

	return &cell, nil
}

func (s *SheetRepository) GetGrid() *contracts.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sheet.Grid()
}

func (s *SheetRepository) Evaluate(formula string, overrides map[string]contracts.Value) *contracts.EvaluateResult {
	canonicalOverrides := make(map[string]contracts.Value, len(overrides))
	for cellId, value := range overrides {
		canonicalOverrides[s.canonicalizer.Canonicalize(cellId)] = value
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, err := s.sheet.Evaluate(formula, NewOverridesValuesGetter(canonicalOverrides))
	result := &contracts.EvaluateResult{Value: value}
	if err != nil {
		result.Error = err.Error()
	}

	return result
}

// Restore replays the journal in grid order. Every replayed UpdateCell propagates, so an
// acyclic grid settles to the values it had when the journal was written, and so does
// any grid under CyclePolicyError. Under CyclePolicySinglePass the values on a cycle
// depend on edit history and may differ after a restore.
func (s *SheetRepository) Restore() error {
	if s.db == nil {
		return nil
	}

	journal := map[string]string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(cellsBucket)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			cellId, raw, err := s.serializer.Unmarshal(v)
			if err != nil {
				return fmt.Errorf("journal record %s: %w", string(k), err)
			}
			journal[cellId] = raw
			return nil
		})
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cellId := range s.sheet.Ids() {
		raw, ok := journal[cellId]
		if !ok {
			continue
		}
		delete(journal, cellId)

		if _, err = s.sheet.UpdateCell(cellId, raw); err != nil {
			return err
		}
	}

	for cellId := range journal {
		s.logger.Warn("journaled cell is outside of the grid, skipped", "cell_id", cellId)
	}

	return nil
}

func (s *SheetRepository) persist(cellId string, raw string) error {
	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(cellsBucket)
		if err != nil {
			return err
		}

		// an empty cell does not need a journal record
		if raw == "" {
			err = bucket.Delete([]byte(cellId))
		} else {
			err = bucket.Put([]byte(cellId), s.serializer.Marshal(cellId, raw))
		}

		if err != nil {
			return fmt.Errorf("journal cell %s: %w", cellId, err)
		}
		return nil
	})
}
