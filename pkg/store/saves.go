package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// ErrSaveNotFound is returned when a snapshot save ID does not exist
var ErrSaveNotFound = errors.New("save not found")

// SaveMetadata describes one snapshot save
type SaveMetadata struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// SaveDocument is the persisted snapshot: availability plus the
// schedule generated from it, if any
type SaveDocument struct {
	Metadata     SaveMetadata          `json:"metadata"`
	Availability model.Availability    `json:"availability_data"`
	Schedule     []model.ScheduleEntry `json:"schedule_data,omitempty"`
}

// SaveManager stores named snapshots of the scheduling state, one JSON
// document per save
type SaveManager struct {
	dir string
}

// NewSaveManager creates a SaveManager rooted at dir
func NewSaveManager(dir string) (*SaveManager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create saves directory: %w", err)
	}
	return &SaveManager{dir: dir}, nil
}

// Create persists a new snapshot and returns its ID
func (m *SaveManager) Create(availability model.Availability, schedule []model.ScheduleEntry, description string) (string, error) {
	dates := availability.Dates()

	meta := SaveMetadata{
		ID:          "save_" + uuid.New().String(),
		CreatedAt:   time.Now().Format(time.RFC3339),
		Description: description,
	}
	if len(dates) > 0 {
		meta.StartDate = dates[0]
		meta.EndDate = dates[len(dates)-1]
	}

	doc := SaveDocument{
		Metadata:     meta,
		Availability: availability,
		Schedule:     schedule,
	}
	if err := m.write(meta.ID, &doc); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns metadata for all saves, newest first
func (m *SaveManager) List() ([]SaveMetadata, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var saves []SaveMetadata
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "save_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		doc, err := m.read(strings.TrimSuffix(name, ".json"))
		if err != nil {
			// a corrupt save file should not hide the others
			continue
		}
		saves = append(saves, doc.Metadata)
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].CreatedAt > saves[j].CreatedAt
	})
	return saves, nil
}

// Load returns the full snapshot for the given save ID
func (m *SaveManager) Load(id string) (*SaveDocument, error) {
	return m.read(id)
}

// Delete removes a save
func (m *SaveManager) Delete(id string) error {
	path := m.path(id)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete save %s: %w", id, err)
	}
	return nil
}

// Backup copies a save file into backupDir
func (m *SaveManager) Backup(id, backupDir string) error {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Open(m.path(id))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(backupDir, id+"_backup.json"))
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy save %s: %w", id, err)
	}
	return nil
}

func (m *SaveManager) path(id string) string {
	return filepath.Join(m.dir, id+".json")
}

func (m *SaveManager) write(id string, doc *SaveDocument) error {
	s := Store{dir: m.dir}
	return s.writeDocument(id+".json", doc)
}

func (m *SaveManager) read(id string) (*SaveDocument, error) {
	s := Store{dir: m.dir}
	var doc SaveDocument
	if err := s.readDocument(id+".json", &doc); err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, id)
		}
		return nil, err
	}
	return &doc, nil
}
