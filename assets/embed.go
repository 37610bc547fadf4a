package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed dictionary.txt
var dictionary embed.FS

//go:embed sql/*.sql
var migrations embed.FS

func readLines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DictionaryLines returns the raw lines of the embedded dictionary,
// skipping blanks and # comments. Words are not normalized here.
func DictionaryLines() ([]string, error) {
	return readLines(dictionary, "dictionary.txt")
}

// Migrations exposes the embedded sql/*.sql files.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}
