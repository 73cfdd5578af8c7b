package saveload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/dice"
	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/lattice"
	"github.com/katalvlaran/lvlgrid/saveload"
	"github.com/katalvlaran/lvlgrid/shapes"
)

// world exercises every persisted core type at once.
type world struct {
	Origin lattice.Point       `json:"origin" yaml:"origin"`
	View   lattice.Size        `json:"view" yaml:"view"`
	Tiles  *grid.Grid[int]     `json:"tiles" yaml:"tiles"`
	Shapes []shapes.Envelope   `json:"shapes" yaml:"shapes"`
	Facing direction.Direction `json:"facing" yaml:"facing"`
	Damage dice.Dice           `json:"damage" yaml:"damage"`
	RNG    *dice.Random        `json:"rng" yaml:"rng"`
}

func newWorld(t *testing.T) world {
	t.Helper()
	tiles, err := grid.New(lattice.Sz(3, 2), []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	var envs []shapes.Envelope
	for _, s := range []shapes.Shape{
		shapes.NewLine(lattice.Pt(0, 0), lattice.Pt(3, 4)),
		shapes.NewCircle(lattice.Pt(-1, -1), 4),
		shapes.NewRectangle(lattice.Pt(2, 2), lattice.Pt(-2, 5)),
	} {
		env, err := shapes.Wrap(s)
		require.NoError(t, err)
		envs = append(envs, env)
	}

	return world{
		Origin: lattice.Pt(-4, 7),
		View:   lattice.Sz(80, 25),
		Tiles:  tiles,
		Shapes: envs,
		Facing: direction.UpNorthWest,
		Damage: dice.New(2, 6, 3),
		RNG:    dice.NewRandom(77),
	}
}

func requireSameWorld(t *testing.T, want, got world) {
	t.Helper()
	require.Equal(t, want.Origin, got.Origin)
	require.Equal(t, want.View, got.View)
	require.Equal(t, want.Tiles.Size(), got.Tiles.Size())
	require.Equal(t, want.Tiles.Values(), got.Tiles.Values())
	if diff := cmp.Diff(want.Shapes, got.Shapes); diff != "" {
		t.Fatalf("shapes (-want +got):\n%s", diff)
	}
	require.Equal(t, want.Facing, got.Facing)
	require.Equal(t, want.Damage, got.Damage)

	d := dice.New(1, 1000, 0)
	for range 5 {
		require.Equal(t, want.RNG.Roll(d), got.RNG.Roll(d))
	}
}

// TestRoundTrip saves and loads the full world in every format and style.
func TestRoundTrip(t *testing.T) {
	for _, f := range []saveload.Format{saveload.JSON, saveload.YAML} {
		for _, pretty := range []bool{false, true} {
			loc := saveload.NewLocation(filepath.Join(t.TempDir(), "nested", "saves"), f, pretty)
			in := newWorld(t)

			require.NoError(t, saveload.Save(loc, "slot1", in))
			require.True(t, saveload.Exists(loc, "slot1"))
			require.FileExists(t, loc.Path("slot1"))

			out, err := saveload.Load[world](loc, "slot1")
			require.NoError(t, err, "%v pretty=%v", f, pretty)
			requireSameWorld(t, in, out)
		}
	}
}

// TestPrettyJSON indents by two spaces; compact output is a single line.
func TestPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	v := map[string]int{"a": 1}

	require.NoError(t, saveload.Save(saveload.NewLocation(dir, saveload.JSON, true), "p", v))
	raw, err := os.ReadFile(filepath.Join(dir, "p.json"))
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}\n", string(raw))

	require.NoError(t, saveload.Save(saveload.NewLocation(dir, saveload.JSON, false), "c", v))
	raw, err = os.ReadFile(filepath.Join(dir, "c.json"))
	require.NoError(t, err)
	require.Equal(t, "{\"a\":1}\n", string(raw))
}

// TestYAMLIndent uses two spaces when pretty and four otherwise.
func TestYAMLIndent(t *testing.T) {
	v := map[string]map[string]int{"outer": {"inner": 1}}

	pretty, err := saveload.Marshal(saveload.YAML, true, v)
	require.NoError(t, err)
	require.Equal(t, "outer:\n  inner: 1\n", string(pretty))

	compact, err := saveload.Marshal(saveload.YAML, false, v)
	require.NoError(t, err)
	require.Equal(t, "outer:\n    inner: 1\n", string(compact))
}

// settings is a TOML-friendly document: a table at the top with scalar,
// text-encoded and nested-table fields.
type settings struct {
	Name   string              `toml:"name"`
	Volume int                 `toml:"volume"`
	Damage dice.Dice           `toml:"damage"`
	Facing direction.Direction `toml:"facing"`
	Keys   map[string]string   `toml:"keys"`
}

// TestTOMLRoundTrip saves and loads a settings document in both styles.
func TestTOMLRoundTrip(t *testing.T) {
	in := settings{
		Name:   "lvl",
		Volume: 7,
		Damage: dice.New(3, 8, 2),
		Facing: direction.NorthEast,
		Keys:   map[string]string{"up": "w", "down": "s"},
	}
	for _, pretty := range []bool{false, true} {
		loc := saveload.NewLocation(t.TempDir(), saveload.TOML, pretty)
		require.NoError(t, saveload.Save(loc, "settings", in))
		require.FileExists(t, filepath.Join(loc.Directory, "settings.toml"))

		out, err := saveload.Load[settings](loc, "settings")
		require.NoError(t, err, "pretty=%v", pretty)
		require.Equal(t, in, out)
	}
}

// TestTOMLIndent indents table bodies by two spaces only when pretty.
func TestTOMLIndent(t *testing.T) {
	v := settings{Name: "lvl", Volume: 7, Damage: dice.New(1, 6, 0), Keys: map[string]string{"up": "w"}}

	pretty, err := saveload.Marshal(saveload.TOML, true, v)
	require.NoError(t, err)
	require.Contains(t, string(pretty), "name = \"lvl\"\n")
	require.Contains(t, string(pretty), "damage = \"1d6\"\n")
	require.Contains(t, string(pretty), "[keys]\n  up = \"w\"\n")

	compact, err := saveload.Marshal(saveload.TOML, false, v)
	require.NoError(t, err)
	require.Contains(t, string(compact), "[keys]\nup = \"w\"\n")
	require.Equal(t, byte('\n'), compact[len(compact)-1])

	// A bare array has no TOML representation.
	_, err = saveload.Marshal(saveload.TOML, false, []int{1, 2})
	require.ErrorIs(t, err, saveload.ErrEncode)
}

// TestLoadErrors separates missing files from undecodable contents.
func TestLoadErrors(t *testing.T) {
	loc := saveload.NewLocation(t.TempDir(), saveload.JSON, false)

	_, err := saveload.Load[world](loc, "missing")
	require.ErrorIs(t, err, saveload.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(loc.Path("broken"), []byte("{not json"), 0o644))
	_, err = saveload.Load[world](loc, "broken")
	require.ErrorIs(t, err, saveload.ErrDecode)

	// Structurally valid JSON whose grid data disagrees with its size.
	bad := `{"tiles":{"size":[2,2],"data":[1,2,3]}}`
	require.NoError(t, os.WriteFile(loc.Path("short"), []byte(bad), 0o644))
	_, err = saveload.Load[world](loc, "short")
	require.ErrorIs(t, err, saveload.ErrDecode)
	require.ErrorIs(t, err, grid.ErrDataLength)
}

// TestSaveErrors reports encode and filesystem failures.
func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	loc := saveload.NewLocation(dir, saveload.JSON, false)

	err := saveload.Save(loc, "chan", make(chan int))
	require.ErrorIs(t, err, saveload.ErrEncode)
	require.False(t, saveload.Exists(loc, "chan"))

	// A regular file where the directory should be.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	err = saveload.Save(saveload.NewLocation(filepath.Join(blocker, "sub"), saveload.JSON, false), "x", 1)
	require.ErrorIs(t, err, saveload.ErrIO)

	err = saveload.Save(saveload.Location{Directory: dir, Format: saveload.Format(9)}, "x", 1)
	require.ErrorIs(t, err, saveload.ErrUnknownFormat)
}

// TestEmptyName refuses names that would address the directory itself.
func TestEmptyName(t *testing.T) {
	dir := t.TempDir()
	loc := saveload.NewLocation(dir, saveload.JSON, false)

	for _, name := range []string{"", "  "} {
		require.ErrorIs(t, saveload.Save(loc, name, 1), saveload.ErrEmptyName, "%q", name)
		_, err := saveload.Load[int](loc, name)
		require.ErrorIs(t, err, saveload.ErrEmptyName, "%q", name)
		require.False(t, saveload.Exists(loc, name))
		require.ErrorIs(t, saveload.Remove(loc, name), saveload.ErrEmptyName, "%q", name)
	}
	require.NoFileExists(t, dir+".json")
}

// TestRemove deletes files and tolerates missing ones.
func TestRemove(t *testing.T) {
	loc := saveload.NewLocation(t.TempDir(), saveload.YAML, false)
	require.NoError(t, saveload.Save(loc, "gone", 1))
	require.NoError(t, saveload.Remove(loc, "gone"))
	require.False(t, saveload.Exists(loc, "gone"))
	require.NoError(t, saveload.Remove(loc, "gone"))
}
