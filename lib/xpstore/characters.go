package xpstore

import (
	"errors"
	"log/slog"
	"os"
	"strings"
)

// ReadCharacterList loads the newline-separated list of tracked
// character names. A missing or empty file is not an error, the
// pipeline just has nothing to do.
func ReadCharacterList(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("character list not found", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}
