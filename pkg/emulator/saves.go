package emulator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// snapshot file naming convention:
// <dir>/<model>/<unix timestamp>.state

const stateExt = ".state"

// SaveFile writes the snapshot to path. The data is first written to a
// temporary file in the same folder which is then renamed over path, so
// an existing snapshot is never left half written.
func SaveFile(path string, s *Snapshot, opts ...Opt) error {
	f, err := os.CreateTemp(filepath.Dir(path), fmt.Sprintf("%s.*", filepath.Base(path)))
	if err != nil {
		return err
	}

	if err := s.Encode(f, opts...); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}

// LoadFile reads the snapshot at path.
func LoadFile(path string, opts ...Opt) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes the snapshot into the folder for its model under dir,
// named after the given time, and returns the path written.
func Save(dir string, s *Snapshot, at time.Time, opts ...Opt) (string, error) {
	modelDir := filepath.Join(dir, s.Model.String())
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(modelDir, strconv.FormatInt(at.Unix(), 10)+stateExt)
	if err := SaveFile(path, s, opts...); err != nil {
		return "", err
	}
	return path, nil
}

// List returns the snapshot files found under dir, newest first. A
// missing dir is not an error and yields no files.
func List(dir string) ([]string, error) {
	models, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var paths []string
	for _, m := range models {
		if !m.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, m.Name()))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if file.IsDir() || !isStateFile(file.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, m.Name(), file.Name()))
		}
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return parseTimestampFromFilename(paths[i]) > parseTimestampFromFilename(paths[j])
	})
	return paths, nil
}

// LoadLatest loads the newest snapshot under dir.
func LoadLatest(dir string, opts ...Opt) (*Snapshot, string, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, "", err
	}
	if len(paths) == 0 {
		return nil, "", fmt.Errorf("no snapshots in %s", dir)
	}

	s, err := LoadFile(paths[0], opts...)
	if err != nil {
		return nil, "", err
	}
	return s, paths[0], nil
}

// parseTimestampFromFilename parses the timestamp from the given filename.
// The filename is expected to be in the format of "<timestamp>.state".
func parseTimestampFromFilename(filename string) int64 {
	name := strings.TrimSuffix(filepath.Base(filename), stateExt)
	n, err := strconv.ParseInt(name, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func isStateFile(filename string) bool {
	return strings.HasSuffix(filename, stateExt)
}
