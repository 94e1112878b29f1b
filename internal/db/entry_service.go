package db

import (
	"fmt"
	"time"

	"github.com/hannesw/tgeld/internal/billing"
	"github.com/hannesw/tgeld/internal/log"
	"github.com/hannesw/tgeld/internal/models"
)

// ListTimeEntries returns entries whose EntryDate falls inside [start, end],
// ordered by (entry date, start time) for rendering, with each entry's task
// resolved. Entries whose task row is gone are kept with Task == nil so the
// caller can bucket them under the unknown label.
func (s *Store) ListTimeEntries(start, end time.Time) ([]models.TimeEntry, error) {
	s.mu.Lock()
	var entries []models.TimeEntry
	err := s.gdb.Where("entry_date >= ? AND entry_date <= ?", start, end).
		Order("entry_date ASC, start_time ASC").
		Find(&entries).Error
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	s.resolveTasks(entries)
	return entries, nil
}

// ListAllTimeEntries returns every entry, unfiltered by date, with the same
// resolution contract as ListTimeEntries.
func (s *Store) ListAllTimeEntries() ([]models.TimeEntry, error) {
	s.mu.Lock()
	var entries []models.TimeEntry
	err := s.gdb.Order("entry_date ASC, start_time ASC").Find(&entries).Error
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	s.resolveTasks(entries)
	return entries, nil
}

// ListTimeEntriesByTask returns the entries logged against one task.
func (s *Store) ListTimeEntriesByTask(taskID uint) ([]models.TimeEntry, error) {
	s.mu.Lock()
	var entries []models.TimeEntry
	err := s.gdb.Where("task_id = ?", taskID).
		Order("entry_date ASC, start_time ASC").
		Find(&entries).Error
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("list entries for task %d: %w", taskID, err)
	}

	s.resolveTasks(entries)
	return entries, nil
}

// resolveTasks attaches each entry's task. It runs without holding mu: every
// lookup takes the lock on its own, so resolution can never deadlock against
// the primary query that produced the batch.
func (s *Store) resolveTasks(entries []models.TimeEntry) {
	for i := range entries {
		task, err := s.GetTask(entries[i].TaskID)
		if err != nil {
			log.With("db").Warn("task resolution failed",
				"entry", entries[i].ID, "task", entries[i].TaskID, "err", err)
			continue
		}
		if task == nil {
			log.With("db").Debug("entry references missing task",
				"entry", entries[i].ID, "task", entries[i].TaskID)
		}
		entries[i].Task = task
	}
}

// SaveTimeEntry recomputes the derived price from the currently resolved task
// and inserts or updates the entry. The stored TotalPrice is a cache of the
// billing rule, never an input to it; a stale value on the way in is
// overwritten. Updating a missing row returns the id with ErrStaleUpdate.
func (s *Store) SaveTimeEntry(entry *models.TimeEntry) (uint, error) {
	task, err := s.GetTask(entry.TaskID)
	if err != nil {
		return 0, err
	}
	entry.Task = task
	entry.TotalPrice = billing.ComputePrice(task, entry.DurationHours, entry.Count)
	if entry.StartTime == "" {
		entry.StartTime = models.DefaultStartTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == 0 {
		if err := s.gdb.Create(entry).Error; err != nil {
			return 0, fmt.Errorf("insert entry: %w", err)
		}
		return entry.ID, nil
	}

	res := s.gdb.Model(&models.TimeEntry{}).Where("id = ?", entry.ID).
		Select("*").Omit("id").Updates(entry)
	if res.Error != nil {
		return 0, fmt.Errorf("update entry %d: %w", entry.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		log.With("db").Warn("entry update matched no rows", "id", entry.ID)
		return entry.ID, ErrStaleUpdate
	}
	return entry.ID, nil
}

// DeleteTimeEntry removes the entry permanently and reports how many rows
// went away (0 when the id was already gone).
func (s *Store) DeleteTimeEntry(id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.gdb.Delete(&models.TimeEntry{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete entry %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
