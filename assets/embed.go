// assets/embed.go
//
// Embedded data files shipped inside the binary.
//   - words.txt: the fixed secret-word vocabulary.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// readLines returns the trimmed, non-comment lines of an embedded file.
// Casing is preserved.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
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

// WordList returns the secret-word vocabulary in file order.
func WordList() ([]string, error) {
	return readLines("words.txt")
}
