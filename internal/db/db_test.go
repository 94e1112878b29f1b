package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hannesw/tgeld/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTask(t *testing.T, s *Store, name string, price float64, billing models.BillingType) *models.Task {
	t.Helper()
	task := &models.Task{Name: name, Price: price, BillingType: billing, IsActive: true}
	if _, err := s.SaveTask(task); err != nil {
		t.Fatalf("save task: %v", err)
	}
	return task
}

func TestOpenWritesMigrationFlag(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, migrationFlagFile)); err != nil {
		t.Fatalf("migration flag missing: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	task := createTask(t, s, "Dishes", 5.0, models.PerHour)
	s.Close()

	// The reset is one-shot: a second open must not drop the tables again.
	s2, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, err := s2.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Dishes" {
		t.Fatalf("task lost across reopen: %+v", got)
	}
}

func TestGetTaskAbsent(t *testing.T) {
	s := newTestStore(t)
	task, err := s.GetTask(99)
	if err != nil {
		t.Fatalf("absent task must not error: %v", err)
	}
	if task != nil {
		t.Fatalf("task = %+v, want nil", task)
	}
}

func TestSaveTaskAssignsID(t *testing.T) {
	s := newTestStore(t)
	first := createTask(t, s, "Dishes", 5.0, models.PerHour)
	second := createTask(t, s, "Trash", 2.0, models.PerCount)

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("ids not assigned: %d, %d", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("ids not unique: %d", first.ID)
	}
}

func TestSaveTaskUpdate(t *testing.T) {
	s := newTestStore(t)
	task := createTask(t, s, "Dishes", 5.0, models.PerHour)

	task.Price = 6.5
	task.Name = "Dishes (deep clean)"
	id, err := s.SaveTask(task)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id != task.ID {
		t.Fatalf("update returned id %d, want %d", id, task.ID)
	}

	got, _ := s.GetTask(task.ID)
	if got.Price != 6.5 || got.Name != "Dishes (deep clean)" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestSaveTaskStaleUpdate(t *testing.T) {
	s := newTestStore(t)

	ghost := &models.Task{ID: 42, Name: "Ghost", Price: 1.0}
	id, err := s.SaveTask(ghost)
	if !errors.Is(err, ErrStaleUpdate) {
		t.Fatalf("err = %v, want ErrStaleUpdate", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}

	// The no-op must not have resurrected the row.
	got, _ := s.GetTask(42)
	if got != nil {
		t.Fatalf("stale update created row: %+v", got)
	}
}

func TestSoftDeleteTask(t *testing.T) {
	s := newTestStore(t)
	task := createTask(t, s, "Dishes", 5.0, models.PerHour)
	keep := createTask(t, s, "Trash", 2.0, models.PerCount)

	rows, err := s.SoftDeleteTask(task.ID)
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows = %d, want 1", rows)
	}

	// Excluded from the active list...
	active, err := s.ListActiveTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].ID != keep.ID {
		t.Fatalf("active tasks = %+v", active)
	}

	// ...but still resolvable by id.
	got, err := s.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("soft-deleted task no longer resolves")
	}
	if got.IsActive {
		t.Fatal("task still marked active")
	}
}

func TestSoftDeleteMissingTask(t *testing.T) {
	s := newTestStore(t)
	rows, err := s.SoftDeleteTask(99)
	if err != nil {
		t.Fatalf("missing id must not error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows = %d, want 0", rows)
	}
}

func TestListActiveTasksOrdering(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"c", "a", "b"} {
		createTask(t, s, name, 1.0, models.PerHour)
	}

	tasks, err := s.ListActiveTasks()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].ID >= tasks[i].ID {
			t.Fatalf("tasks not ordered by id: %+v", tasks)
		}
	}
}
