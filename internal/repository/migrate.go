package repository

import (
	"io/fs"
	"sort"
	"strings"
)

const dropAllFile = "000_drop_all.sql"

// migration is one *.up.sql file, named without the suffix.
type migration struct {
	name string
	sql  string
}

// loadMigrations returns the .up.sql files of fsys sorted by file name.
func loadMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]migration, 0, len(names))
	for _, n := range names {
		b, err := fs.ReadFile(fsys, n)
		if err != nil {
			return nil, err
		}
		out = append(out, migration{name: strings.TrimSuffix(n, ".up.sql"), sql: string(b)})
	}
	return out, nil
}
