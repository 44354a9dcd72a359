package region

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/gen"
)

// fixture is a txtar archive unpacked into a temporary directory. Files
// under want/ hold the expected companion content; result, warnings and
// infos hold the expected companion outcome.
type fixture struct {
	dir       string
	header    string
	companion string
	original  []byte
	want      []byte
	result    string
	warnings  []string
	infos     []string
	hasInfos  bool
}

func loadFixture(t *testing.T, name string) *fixture {
	t.Helper()

	ar, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	fx := &fixture{dir: t.TempDir()}

	for _, f := range ar.Files {
		switch {
		case strings.HasPrefix(f.Name, "want/"):
			fx.want = f.Data
		case f.Name == "result":
			fx.result = strings.TrimSpace(string(f.Data))
		case f.Name == "warnings":
			fx.warnings = strings.Fields(string(f.Data))
		case f.Name == "infos":
			fx.infos = strings.Fields(string(f.Data))
			fx.hasInfos = true
		default:
			path := filepath.Join(fx.dir, f.Name)
			require.NoError(t, os.WriteFile(path, f.Data, 0o644))

			switch filepath.Ext(f.Name) {
			case ".h":
				fx.header = path
			case ".cpp":
				fx.companion = path
				fx.original = f.Data
			}
		}
	}

	require.NotEmpty(t, fx.header, "fixture %s has no header", name)

	if fx.want == nil {
		fx.want = fx.original
	}

	return fx
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()

	engine, err := NewEngine(cfg, gen.NewRegistry(gen.DefaultOptions()))
	require.NoError(t, err)

	return engine
}

func codes(ds []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestProcess_Fixtures(t *testing.T) {
	names, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, path := range names {
		name := filepath.Base(path)

		t.Run(strings.TrimSuffix(name, ".txtar"), func(t *testing.T) {
			fx := loadFixture(t, name)
			engine := newTestEngine(t, DefaultConfig())

			outcomes, err := engine.Process(context.Background(), fx.header)
			require.NoError(t, err)
			require.Len(t, outcomes, 2, spew.Sdump(outcomes))

			assert.Equal(t, Success, outcomes[0].Result)
			assert.Equal(t, fx.header, outcomes[0].Path)

			companion := outcomes[1]
			assert.Equal(t, fx.companion, companion.Path)
			assert.Equal(t, fx.result, companion.Result.String())
			assert.Equal(t, fx.warnings, codes(companion.Diagnostics.Warnings), spew.Sdump(companion.Diagnostics))

			if fx.hasInfos {
				assert.Equal(t, fx.infos, codes(companion.Diagnostics.Infos))
			}

			assert.Equal(t, string(fx.want), readFile(t, fx.companion))

			// A second pass over its own output changes nothing.
			again, err := engine.Process(context.Background(), fx.header)
			require.NoError(t, err)
			require.Len(t, again, 2)
			assert.Equal(t, NoChanges, again[1].Result)
			assert.Empty(t, again[1].Diagnostics.Warnings)
			assert.Equal(t, string(fx.want), readFile(t, fx.companion))
		})
	}
}

func TestProcess_NoSaveMemberNeverSerialized(t *testing.T) {
	fx := loadFixture(t, "nosave.txtar")

	_, err := newTestEngine(t, DefaultConfig()).Process(context.Background(), fx.header)
	require.NoError(t, err)

	got := readFile(t, fx.companion)
	assert.NotContains(t, got, "Cached")
	assert.NotContains(t, got, "Shape")
}

func TestProcess_MissingHeader(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	outcomes, err := engine.Process(context.Background(), filepath.Join(t.TempDir(), "Gone.h"))
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, NoFile, outcomes[0].Result)
}

func TestProcess_MissingCompanion(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "Foo.h")
	require.NoError(t, os.WriteFile(header, []byte("class Foo { public: int Count; };\n"), 0o644))

	outcomes, err := newTestEngine(t, DefaultConfig()).Process(context.Background(), header)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, Success, outcomes[0].Result)
	assert.Equal(t, NoFile, outcomes[1].Result)
	assert.Equal(t, filepath.Join(dir, "Foo.cpp"), outcomes[1].Path)

	_, err = os.Stat(outcomes[1].Path)
	assert.True(t, os.IsNotExist(err), "companion must not be created")
}

func TestProcess_HeaderInfoNamesOwners(t *testing.T) {
	fx := loadFixture(t, "multi_owner.txtar")

	outcomes, err := newTestEngine(t, DefaultConfig()).Process(context.Background(), fx.header)
	require.NoError(t, err)

	infos := outcomes[0].Diagnostics.Infos
	require.Len(t, infos, 1)
	assert.Equal(t, diagnostic.CodeExtracted, infos[0].Code)
	assert.Equal(t, "5 declarations for Circle, Square", infos[0].Message)
}

func TestProcess_CanceledContext(t *testing.T) {
	fx := loadFixture(t, "stale_init.txtar")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(t, DefaultConfig()).Process(ctx, fx.header)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, string(fx.original), readFile(t, fx.companion))
}

func TestProcess_DryRunLeavesFileAndReportsDiff(t *testing.T) {
	fx := loadFixture(t, "stale_init.txtar")

	cfg := DefaultConfig()
	cfg.DryRun = true

	outcomes, err := newTestEngine(t, cfg).Process(context.Background(), fx.header)
	require.NoError(t, err)

	companion := outcomes[1]
	assert.Equal(t, Success, companion.Result)
	assert.Contains(t, companion.Diff, "-\tthis->Count = 5;\n")
	assert.Contains(t, companion.Diff, "+\tthis->Count = 0;\n")
	assert.Contains(t, companion.Diff, "--- "+fx.companion)
	assert.Equal(t, string(fx.original), readFile(t, fx.companion))
}

func TestProcess_PreservesLineEndingsAndMode(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "Foo.h")
	companion := filepath.Join(dir, "Foo.cpp")

	require.NoError(t, os.WriteFile(header, []byte("class Foo {\r\npublic:\r\n\tint Count;\r\n};\r\n"), 0o644))
	require.NoError(t, os.WriteFile(companion, []byte(
		"void Foo::Init()\r\n{\r\n#pragma region generated Foo Init\r\n#pragma endregion\r\n}"), 0o600))

	outcomes, err := newTestEngine(t, DefaultConfig()).Process(context.Background(), header)
	require.NoError(t, err)
	assert.Equal(t, Success, outcomes[1].Result)

	assert.Equal(t,
		"void Foo::Init()\r\n{\r\n#pragma region generated Foo Init\r\n\tthis->Count = 0;\r\n#pragma endregion\r\n}",
		readFile(t, companion))

	info, err := os.Stat(companion)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestProcess_CachesUnchangedHeaders(t *testing.T) {
	fx := loadFixture(t, "up_to_date.txtar")
	engine := newTestEngine(t, DefaultConfig())

	for range 3 {
		_, err := engine.Process(context.Background(), fx.header)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, engine.CachedHeaders())

	require.NoError(t, os.WriteFile(fx.header, []byte("class Foo { public: int Count; int Extra; };\n"), 0o644))

	outcomes, err := engine.Process(context.Background(), fx.header)
	require.NoError(t, err)
	assert.Equal(t, 2, engine.CachedHeaders())
	assert.Equal(t, Success, outcomes[1].Result)
	assert.Contains(t, readFile(t, fx.companion), "this->Extra = 0;")
}

func TestProcess_CacheDisabled(t *testing.T) {
	fx := loadFixture(t, "up_to_date.txtar")

	cfg := DefaultConfig()
	cfg.CacheSize = 0
	engine := newTestEngine(t, cfg)

	_, err := engine.Process(context.Background(), fx.header)
	require.NoError(t, err)
	assert.Zero(t, engine.CachedHeaders())
}

type countGenerator struct{}

func (countGenerator) Kind() string { return "Count" }

func (countGenerator) Generate(owner string, decls []decl.Declaration, _ *diagnostic.Diagnostics) []string {
	return []string{"// " + owner + " has " + strconv.Itoa(len(decl.OwnedBy(decls, owner))) + " declarations"}
}

func TestSynthesize_RegistryIsExtensible(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Foo.cpp")
	require.NoError(t, os.WriteFile(target, []byte(
		"#pragma region generated Foo Count\n#pragma endregion\n#pragma region generated Foo Init\n#pragma endregion\n"), 0o644))

	var diags diagnostic.Diagnostics

	decls := decl.Extract([]string{"class Foo { public: int A; int B; };"}, &diags)

	registry := gen.NewRegistry(gen.DefaultOptions())
	registry.Register(countGenerator{})
	registry.Unregister(gen.KindInit)

	engine, err := NewEngine(DefaultConfig(), registry)
	require.NoError(t, err)

	out, err := engine.Synthesize(target, decls)
	require.NoError(t, err)
	assert.Equal(t, Success, out.Result)
	assert.Equal(t,
		"#pragma region generated Foo Count\n// Foo has 2 declarations\n#pragma endregion\n",
		readFile(t, target))
}

func TestSynthesize_SuggestsMisspelledKind(t *testing.T) {
	target := filepath.Join(t.TempDir(), "Foo.cpp")
	require.NoError(t, os.WriteFile(target, []byte("#pragma region generated Foo Inti\n#pragma endregion\n"), 0o644))

	out, err := newTestEngine(t, DefaultConfig()).Synthesize(target, nil)
	require.NoError(t, err)
	assert.Equal(t, Success, out.Result)
	require.Len(t, out.Diagnostics.Infos, 1)
	assert.Equal(t, "removed region for unregistered kind Inti (did you mean Init?)", out.Diagnostics.Infos[0].Message)
	assert.Empty(t, readFile(t, target))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "NoFile", NoFile.String())
	assert.Equal(t, "NoChanges", NoChanges.String())
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "unknown", Result(42).String())
}
