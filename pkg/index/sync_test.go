package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eflumerf/fnal-art/pkg/recipe"
	"github.com/eflumerf/fnal-art/pkg/registry"
)

// newRecipeRepo commits files (path -> content) to a fresh repository
func newRecipeRepo(t *testing.T, files map[string]string) *git.Repository {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))
	_, err = wt.Commit("add recipes", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return repo
}

func TestInstall(t *testing.T) {
	repo := newRecipeRepo(t, map[string]string{
		"recipes/mylib/recipe.toml":  "name = \"mylib\"\n\n[[versions]]\nname = \"1.0\"\n",
		"recipes/other/recipe.toml":  "description = \"named by its directory\"\n",
		"recipes/notes/README.md":    "not a recipe\n",
		"recipes/index.md":           "top-level file\n",
		"unrelated/skip/recipe.toml": "name = \"skip\"\n",
	})

	dest := t.TempDir()
	res, err := Install(repo, "recipes", dest)
	require.NoError(t, err)

	assert.Equal(t, []string{"mylib", "other"}, res.Recipes)
	assert.Len(t, res.Commit, 40)

	reg := registry.NewDir(dest)
	names, err := reg.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"mylib", "other"}, names)

	rec, err := reg.Load("other")
	require.NoError(t, err)
	assert.Equal(t, "other", rec.Name)
}

func TestInstall_InvalidRecipeWritesNothing(t *testing.T) {
	repo := newRecipeRepo(t, map[string]string{
		"recipes/good/recipe.toml": "name = \"good\"\n",
		"recipes/zbad/recipe.toml": "name = \"zbad\"\n\n[[environment.run]]\nop = \"bogus\"\nvar = \"PATH\"\nvalue = \"/x\"\n",
	})

	dest := t.TempDir()
	_, err := Install(repo, "recipes", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, recipe.ErrInvalidRecipe)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInstall_MissingDirectory(t *testing.T) {
	repo := newRecipeRepo(t, map[string]string{"README.md": "hi\n"})

	_, err := Install(repo, "recipes", t.TempDir())
	assert.Error(t, err)
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{Branch: "develop"}.withDefaults()
	assert.Equal(t, DefaultURL, o.URL)
	assert.Equal(t, "develop", o.Branch)
	assert.Equal(t, DefaultDir, o.Dir)
}

func TestInstall_NoRecipesStillCreatesDest(t *testing.T) {
	repo := newRecipeRepo(t, map[string]string{"recipes/README.md": "empty for now\n"})

	dest := filepath.Join(t.TempDir(), "nested", "recipes")
	res, err := Install(repo, "recipes", dest)
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.DirExists(t, dest)
}
