package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

func newTestSaveManager(t *testing.T) *SaveManager {
	t.Helper()
	m, err := NewSaveManager(t.TempDir())
	require.NoError(t, err)
	return m
}

func testAvailability() model.Availability {
	return model.Availability{
		"2025-01-06": {"Ann": {"7-16"}},
		"2025-01-08": {"Ann": {}},
	}
}

func TestSaveManager_CreateAndLoad(t *testing.T) {
	m := newTestSaveManager(t)

	schedule := []model.ScheduleEntry{
		{Date: "2025-01-06", Assignments: map[string]string{"Ann": "7-16"}},
	}
	id, err := m.Create(testAvailability(), schedule, "first draft")
	require.NoError(t, err)
	assert.True(t, len(id) > len("save_"))

	doc, err := m.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "first draft", doc.Metadata.Description)
	assert.Equal(t, "2025-01-06", doc.Metadata.StartDate)
	assert.Equal(t, "2025-01-08", doc.Metadata.EndDate)
	assert.NotEmpty(t, doc.Metadata.CreatedAt)
	assert.Equal(t, testAvailability(), doc.Availability)
	assert.Equal(t, schedule, doc.Schedule)
}

func TestSaveManager_List(t *testing.T) {
	m := newTestSaveManager(t)

	first, err := m.Create(testAvailability(), nil, "one")
	require.NoError(t, err)
	second, err := m.Create(testAvailability(), nil, "two")
	require.NoError(t, err)

	saves, err := m.List()
	require.NoError(t, err)
	require.Len(t, saves, 2)

	ids := []string{saves[0].ID, saves[1].ID}
	assert.ElementsMatch(t, []string{first, second}, ids)
}

func TestSaveManager_ListSkipsCorruptFiles(t *testing.T) {
	m := newTestSaveManager(t)

	id, err := m.Create(testAvailability(), nil, "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "save_broken.json"), []byte("nope"), 0644))

	saves, err := m.List()
	require.NoError(t, err)
	require.Len(t, saves, 1)
	assert.Equal(t, id, saves[0].ID)
}

func TestSaveManager_Delete(t *testing.T) {
	m := newTestSaveManager(t)

	id, err := m.Create(testAvailability(), nil, "")
	require.NoError(t, err)

	require.NoError(t, m.Delete(id))

	_, err = m.Load(id)
	assert.ErrorIs(t, err, ErrSaveNotFound)

	err = m.Delete(id)
	assert.ErrorIs(t, err, ErrSaveNotFound)
}

func TestSaveManager_Backup(t *testing.T) {
	m := newTestSaveManager(t)
	backupDir := filepath.Join(t.TempDir(), "backups")

	id, err := m.Create(testAvailability(), nil, "keep this")
	require.NoError(t, err)

	require.NoError(t, m.Backup(id, backupDir))

	original, err := os.ReadFile(m.path(id))
	require.NoError(t, err)
	copied, err := os.ReadFile(filepath.Join(backupDir, id+"_backup.json"))
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestSaveManager_BackupMissingSave(t *testing.T) {
	m := newTestSaveManager(t)

	err := m.Backup("save_missing", t.TempDir())
	assert.ErrorIs(t, err, ErrSaveNotFound)
}

func TestSaveManager_LoadMissingSave(t *testing.T) {
	m := newTestSaveManager(t)

	_, err := m.Load("save_missing")
	assert.ErrorIs(t, err, ErrSaveNotFound)
}
