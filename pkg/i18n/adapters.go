package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// MapAdapter serves translations held in memory.
type MapAdapter struct {
	Data Translations
}

func (a *MapAdapter) Load(_ context.Context) (Translations, error) {
	if a.Data == nil {
		return Translations{}, nil
	}
	return a.Data, nil
}

// FileAdapter loads a single file from disk, choosing the parser by extension.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, filepath.Base(a.path), content)
}

// FSAdapter loads every JSON and YAML file of a directory in an fs.FS,
// e.g. an embed.FS or os.DirFS. Files are merged in name order; later files
// override earlier ones key by key.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (Translations, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && NewParserForFile(e.Name()) != nil {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	slices.Sort(names)

	all := make(Translations)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parseFile(ctx, name, content)
		if err != nil {
			return nil, err
		}
		for lang, messages := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			maps.Copy(all[lang], messages)
		}
	}
	return all, nil
}

func parseFile(ctx context.Context, name string, content []byte) (Translations, error) {
	parser := NewParserForFile(name)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, name)
	}
	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return translations, nil
}
