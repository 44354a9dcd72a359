package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvConfig  = "REGIONSYNTH_CONFIG"
	EnvWorkers = "REGIONSYNTH_WORKERS"
	EnvIndent  = "REGIONSYNTH_INDENT"
)

// Load resolves the configuration: the file at path, or the one named by
// REGIONSYNTH_CONFIG, or DefaultFileName if present, or the defaults; then
// environment overrides. envFiles are dotenv files consulted for variables
// missing from the process environment; ".env" when none are given.
func Load(path string, envFiles ...string) (*File, error) {
	env, err := readEnv(envFiles)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}

		return env[key]
	}

	path = firstNonEmpty(path, lookup(EnvConfig))
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}

	f := Default()
	if path != "" {
		if f, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(f, lookup); err != nil {
		return nil, err
	}

	return f, nil
}

func readEnv(files []string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	env := make(map[string]string)

	for _, name := range files {
		vars, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", name, err)
		}

		for k, v := range vars {
			if _, seen := env[k]; !seen {
				env[k] = v
			}
		}
	}

	return env, nil
}

func applyEnv(f *File, lookup func(string) string) error {
	if raw := strings.TrimSpace(lookup(EnvWorkers)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvWorkers, raw)
		}

		f.Workers = n
	}

	if raw := lookup(EnvIndent); raw != "" {
		f.Indent = parseIndent(raw)
	}

	return nil
}

// parseIndent accepts "tab", a space count, or the literal unit.
func parseIndent(raw string) string {
	if strings.EqualFold(raw, "tab") {
		return "\t"
	}

	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return strings.Repeat(" ", n)
	}

	return raw
}
