// Package badgefile persists contributor gamification records as one JSON
// document per username under a flat directory. Records are small and read
// far more often than written, so the store favors simplicity: full-file
// reads and atomic replace-on-write.
package badgefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/repository"
)

// Sentinel errors for the file store
var (
	ErrInvalidUsername = errors.New("invalid username")
)

// usernamePattern matches GitHub-style usernames. Anything else is rejected
// before it can become a file path.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// Store is a file-backed repository.Contributor implementation
type Store struct {
	dir string

	// mu serializes writes; reads of distinct files are already safe and
	// replace-on-write keeps readers from seeing partial records
	mu sync.Mutex
}

var _ repository.Contributor = (*Store)(nil)

// NewStore creates the store and its backing directory if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateDirFailed, err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the record for a username, or domain.ErrContributorNotFound
func (s *Store) Get(ctx context.Context, username string) (*domain.Contributor, error) {
	path, err := s.recordPath(username)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrContributorNotFound, username)
		}
		return nil, fmt.Errorf(ErrMsgReadRecordFailed, username, err)
	}

	var c domain.Contributor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseRecordFailed, username, err)
	}

	return &c, nil
}

// Save writes the full record atomically via a temp file and rename
func (s *Store) Save(ctx context.Context, contributor *domain.Contributor) error {
	path, err := s.recordPath(contributor.Username)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(contributor, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeRecordFailed, contributor.Username, err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf(ErrMsgWriteRecordFailed, contributor.Username, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(ErrMsgWriteRecordFailed, contributor.Username, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf(ErrMsgWriteRecordFailed, contributor.Username, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf(ErrMsgWriteRecordFailed, contributor.Username, err)
	}

	return nil
}

// GetAll returns every stored record sorted by username. Unreadable files
// are skipped with a warning so one corrupt record cannot take down readers.
func (s *Store) GetAll(ctx context.Context) ([]domain.Contributor, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRecordsFailed, err)
	}

	contributors := make([]domain.Contributor, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			log.Warn(LogMsgSkippedRecord, "file", name, "error", err)
			continue
		}

		var c domain.Contributor
		if err := json.Unmarshal(data, &c); err != nil {
			log.Warn(LogMsgSkippedRecord, "file", name, "error", err)
			continue
		}

		contributors = append(contributors, c)
	}

	sort.Slice(contributors, func(i, j int) bool {
		return contributors[i].Username < contributors[j].Username
	})

	return contributors, nil
}

// Exists reports whether a record exists without loading it
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	path, err := s.recordPath(username)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf(ErrMsgReadRecordFailed, username, err)
}

// recordPath validates the username and maps it to its record file
func (s *Store) recordPath(username string) (string, error) {
	if !usernamePattern.MatchString(username) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return filepath.Join(s.dir, username+".json"), nil
}
