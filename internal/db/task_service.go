package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hannesw/tgeld/internal/log"
	"github.com/hannesw/tgeld/internal/models"
)

// ListActiveTasks returns the tasks still offered for new entries, ordered by
// id. Soft-deleted tasks are excluded here but still resolve via GetTask.
func (s *Store) ListActiveTasks() ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []models.Task
	if err := s.gdb.Where("is_active = ?", true).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns the task with the given id, or nil when no such row exists.
// Missing rows are an absent result, never an error.
func (s *Store) GetTask(id uint) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getTask(id)
}

// getTask must be called with mu held.
func (s *Store) getTask(id uint) (*models.Task, error) {
	var task models.Task
	err := s.gdb.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return &task, nil
}

// SaveTask inserts task when it has no id yet, and updates it in place
// otherwise. Updating a missing row is a no-op that returns the id together
// with ErrStaleUpdate.
func (s *Store) SaveTask(task *models.Task) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == 0 {
		if err := s.gdb.Create(task).Error; err != nil {
			return 0, fmt.Errorf("insert task: %w", err)
		}
		return task.ID, nil
	}

	// gorm's Save inserts when the update matches nothing; an explicit update
	// keeps the stale-id case a no-op.
	res := s.gdb.Model(&models.Task{}).Where("id = ?", task.ID).
		Select("*").Omit("id").Updates(task)
	if res.Error != nil {
		return 0, fmt.Errorf("update task %d: %w", task.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		log.With("db").Warn("task update matched no rows", "id", task.ID)
		return task.ID, ErrStaleUpdate
	}
	return task.ID, nil
}

// SoftDeleteTask clears IsActive so the task disappears from pickers while
// existing entries keep resolving it. A missing id yields a zero-effect
// result, not an error.
func (s *Store) SoftDeleteTask(id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.gdb.Model(&models.Task{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("soft delete task %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
