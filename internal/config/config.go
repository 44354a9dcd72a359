package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no file is named.
const DefaultFileName = "regionsynth.yaml"

// SchemaVersion is the configuration schema this build understands.
const SchemaVersion = "v1.0.0"

// ErrUnsupportedVersion is returned for files written for another schema major.
var ErrUnsupportedVersion = errors.New("unsupported configuration version")

// File is the configuration document. CacheSize bounds the extraction
// cache; a negative size disables it.
type File struct {
	Version     string       `yaml:"version"`
	Headers     []string     `yaml:"headers"`
	Companion   string       `yaml:"companion"`
	Indent      string       `yaml:"indent"`
	Workers     int          `yaml:"workers"`
	CacheSize   int          `yaml:"cache_size"`
	Serializer  Serializer   `yaml:"serializer"`
	Wrapper     Wrapper      `yaml:"wrapper"`
	Projections []Projection `yaml:"projections"`
}

// Serializer names the variables and functions used in Read, Write and
// Size regions.
type Serializer struct {
	Reader string `yaml:"reader"`
	Writer string `yaml:"writer"`
	Size   string `yaml:"size"`
	SizeOf string `yaml:"size_of"`
}

// Wrapper names the expressions used by Property and Function regions.
type Wrapper struct {
	Native string `yaml:"native"`
	Notify string `yaml:"notify"`
	Lookup string `yaml:"lookup"`
}

// Projection adds or replaces one row of the projection table.
type Projection struct {
	Native   string `yaml:"native"`
	Wrapper  string `yaml:"wrapper"`
	Category string `yaml:"category"`
}

// Default returns the configuration used when no file exists.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File and checks its schema version.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

func checkVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return fmt.Errorf("invalid configuration version %q", version)
	}

	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("%w: %s (this build reads %s)", ErrUnsupportedVersion, version, semver.Major(SchemaVersion))
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = SchemaVersion
	}

	if len(f.Headers) == 0 {
		f.Headers = []string{".h", ".hpp"}
	}

	if f.Companion == "" {
		f.Companion = ".cpp"
	}

	if f.Indent == "" {
		f.Indent = "\t"
	}

	if f.Workers <= 0 {
		f.Workers = runtime.GOMAXPROCS(0)
	}

	if f.CacheSize == 0 {
		f.CacheSize = 256
	}

	s := &f.Serializer
	s.Reader = firstNonEmpty(s.Reader, "reader")
	s.Writer = firstNonEmpty(s.Writer, "writer")
	s.Size = firstNonEmpty(s.Size, "size")
	s.SizeOf = firstNonEmpty(s.SizeOf, "Serializer::SizeOf")

	w := &f.Wrapper
	w.Native = firstNonEmpty(w.Native, "this->Native")
	w.Notify = firstNonEmpty(w.Notify, "this->NotifyChanged")
	w.Lookup = firstNonEmpty(w.Lookup, "this->Lookup")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
