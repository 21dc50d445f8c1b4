// Package grep is a minimal file reader in the style of the classic
// "minigrep" tutorial: it takes a query and a filename, reads the whole
// file, and prints it. [Search] and [SearchInsensitive] add the line
// matching step on top.
//
// Reading never retries and never produces partial output: a missing file,
// a permission error, or contents that are not valid UTF-8 abort the run.
package grep

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/kata/pkg/errors"
)

// Config holds the two required positional arguments.
type Config struct {
	Query    string
	Filename string
}

// NewConfig builds a Config from a full argument vector, where args[0] is
// the program name. Fewer than three entries is a usage error.
func NewConfig(args []string) (Config, error) {
	if len(args) < 3 {
		return Config{}, errors.Invalid("not enough arguments")
	}
	cfg := Config{Query: args[1], Filename: args[2]}
	if err := errors.ValidateFilename(cfg.Filename); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadContents reads the whole file named by cfg and checks that it is
// valid UTF-8 text.
func ReadContents(cfg Config) (string, error) {
	data, err := os.ReadFile(cfg.Filename)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", cfg.Filename)
		}
		return "", errors.Wrap(errors.ErrCodeReadFailed, err, "read %s", cfg.Filename)
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeInvalidEncoding, "%s is not valid UTF-8 text", cfg.Filename)
	}
	return string(data), nil
}

// Run reads the file named by cfg and writes its contents to w, preceded by
// a "With text:" header.
func Run(cfg Config, w io.Writer) error {
	contents, err := ReadContents(cfg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "With text:\n%s\n", contents); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}

// Search returns the lines of contents that contain query.
func Search(query, contents string) []string {
	var matches []string
	for _, line := range strings.Split(contents, "\n") {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// SearchInsensitive is Search with both sides lower-cased before matching.
// The returned lines keep their original case.
func SearchInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	var matches []string
	for _, line := range strings.Split(contents, "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			matches = append(matches, line)
		}
	}
	return matches
}
