// pkg/index/sync.go
package index

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/eflumerf/fnal-art/pkg/registry"
)

const (
	DefaultURL    = "https://github.com/eflumerf/fnal-art"
	DefaultBranch = "main"
	DefaultDir    = "pkg/registry/packages"
)

// Options selects the repository and tree directory to sync from
type Options struct {
	URL    string
	Branch string
	Dir    string // directory inside the repo holding <name>/recipe.toml
	Logger *log.Logger
}

// Result describes a completed sync
type Result struct {
	Commit  string
	Recipes []string
}

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.Branch == "" {
		o.Branch = DefaultBranch
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	return o
}

// Sync shallow-clones the recipe repository into memory and installs
// every recipe under opts.Dir into dest
func Sync(ctx context.Context, dest string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if opts.Logger != nil {
		opts.Logger.Info("updating recipes", "url", opts.URL, "branch", opts.Branch)
	}

	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
		URL:           opts.URL,
		ReferenceName: plumbing.NewBranchReferenceName(opts.Branch),
		SingleBranch:  true,
		Depth:         1,
		Tags:          git.NoTags,
	})
	if err != nil {
		return nil, fmt.Errorf("git clone failed: %w", err)
	}

	res, err := Install(repo, opts.Dir, dest)
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.Info("recipes updated", "commit", res.Commit[:min(len(res.Commit), 12)], "count", len(res.Recipes))
	}
	return res, nil
}

// Install copies recipes from the HEAD commit of repo into dest.
// Every recipe is parsed and validated before anything is written, so a
// broken recipe leaves dest untouched.
func Install(repo *git.Repository, dir, dest string) (*Result, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", head.Hash(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	if dir != "" && dir != "." {
		if tree, err = tree.Tree(dir); err != nil {
			return nil, fmt.Errorf("recipe directory %q: %w", dir, err)
		}
	}

	recipes := make(map[string]string)
	for _, entry := range tree.Entries {
		if entry.Mode != filemode.Dir {
			continue
		}
		f, err := tree.File(path.Join(entry.Name, registry.RecipeFile))
		if errors.Is(err, object.ErrFileNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		content, err := f.Contents()
		if err != nil {
			return nil, err
		}
		if _, err := registry.Parse(entry.Name, []byte(content)); err != nil {
			return nil, err
		}
		recipes[entry.Name] = content
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dest, err)
	}

	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pkgDir := filepath.Join(dest, name)
		if err := os.MkdirAll(pkgDir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", pkgDir, err)
		}
		if err := os.WriteFile(filepath.Join(pkgDir, registry.RecipeFile), []byte(recipes[name]), 0644); err != nil {
			return nil, fmt.Errorf("writing %s recipe: %w", name, err)
		}
	}

	return &Result{Commit: head.Hash().String(), Recipes: names}, nil
}
