package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/thruflo/chores/internal/config"
	"gopkg.in/yaml.v3"
)

// ErrRunNotFound is returned when no run matches an id.
var ErrRunNotFound = errors.New("run not found")

// Store handles local run storage.
type Store struct {
	basePath string
}

// NewStore creates a new Store with the given base path.
// The base path should be the project root; runs are stored in .chores/runs/.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

func (s *Store) runsDir() string {
	return filepath.Join(s.basePath, config.Dir, "runs")
}

func (s *Store) runPath(id string) string {
	return filepath.Join(s.runsDir(), id+".yaml")
}

// SaveRun writes the run to runs/<id>.yaml, assigning an id if it has none.
func (s *Store) SaveRun(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		return fmt.Errorf("invalid run id %q: %w", run.ID, err)
	}

	if err := os.MkdirAll(s.runsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := os.WriteFile(s.runPath(run.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write run file: %w", err)
	}

	return nil
}

// GetRun reads a run by id. A unique prefix of the id is accepted.
func (s *Store) GetRun(id string) (*Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrRunNotFound)
	}

	runs, err := s.ListRuns()
	if err != nil {
		return nil, err
	}

	var match *Run
	for _, r := range runs {
		if r.ID == id {
			return r, nil
		}
		if strings.HasPrefix(r.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("run id prefix %q is ambiguous", id)
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return match, nil
}

// ListRuns returns every recorded run, oldest first.
func (s *Store) ListRuns() ([]*Run, error) {
	entries, err := os.ReadDir(s.runsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []*Run{}, nil
		}
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	runs := []*Run{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.runsDir(), entry.Name()))
		if err != nil {
			continue // Skip unreadable files
		}

		var run Run
		if err := yaml.Unmarshal(data, &run); err != nil {
			continue // Skip invalid run files
		}
		runs = append(runs, &run)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
	return runs, nil
}

// DeleteRun removes a run file.
func (s *Store) DeleteRun(id string) error {
	if err := os.Remove(s.runPath(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return fmt.Errorf("failed to delete run file: %w", err)
	}
	return nil
}
