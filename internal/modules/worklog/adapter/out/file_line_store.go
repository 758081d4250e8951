package out

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	worklogout "rodomopo/internal/modules/worklog/port/out"
	apperrors "rodomopo/internal/platform/errors"
)

// FileLineStore is a line-oriented text file. Writes are not locked; two
// processes running at once can interleave and the last write wins.
type FileLineStore struct {
	path string
}

func NewFileStatusStore(path string) *FileLineStore {
	return &FileLineStore{path: path}
}

func NewFileHistoryStore(path string) *FileLineStore {
	return &FileLineStore{path: path}
}

var (
	_ worklogout.StatusStore  = (*FileLineStore)(nil)
	_ worklogout.HistoryStore = (*FileLineStore)(nil)
	_ worklogout.Initializer  = (*FileLineStore)(nil)
)

func (s *FileLineStore) Path() string { return s.path }

func (s *FileLineStore) ReadFirstLine(_ context.Context) (string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return "", storageErr("open", s.path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", storageErr("read", s.path, err)
	}
	return strings.TrimRight(line, " \t\r\n"), nil
}

func (s *FileLineStore) Overwrite(_ context.Context, line string) error {
	if err := os.WriteFile(s.path, []byte(line+"\n"), 0o644); err != nil {
		return storageErr("write", s.path, err)
	}
	return nil
}

// AppendLine requires the file to exist; it is created by Ensure on first run.
func (s *FileLineStore) AppendLine(_ context.Context, line string) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return storageErr("open", s.path, err)
	}
	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return storageErr("append", s.path, err)
	}
	if err := file.Close(); err != nil {
		return storageErr("close", s.path, err)
	}
	return nil
}

func (s *FileLineStore) ReadLines(_ context.Context) ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, storageErr("open", s.path, err)
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, storageErr("read", s.path, err)
	}
	return lines, nil
}

// Ensure creates the parent directory and the file with initial content.
// An existing file is left untouched and reported as not created.
func (s *FileLineStore) Ensure(_ context.Context, initial string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, storageErr("create dir for", s.path, err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, storageErr("create", s.path, err)
	}
	if initial != "" {
		if _, err := file.WriteString(initial + "\n"); err != nil {
			_ = file.Close()
			return false, storageErr("write", s.path, err)
		}
	}
	if err := file.Close(); err != nil {
		return false, storageErr("close", s.path, err)
	}
	return true, nil
}

func storageErr(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", apperrors.ErrStorage, op, path, err)
}
