package parse

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// lineReader yields the non-comment lines of a file in order, mapping
// open/read failures to a parse.Error the way the file reader this is
// grounded on maps std::io::ErrorKind to a human-readable message.
type lineReader struct {
	path string
	file *os.File
	scan *bufio.Scanner
}

func newLineReader(path string) (*lineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, errorf(path, "the file does not exist")
		case os.IsPermission(err):
			return nil, errorf(path, "required permissions to open the file are missing")
		default:
			return nil, &Error{Path: path, Message: "an unexpected error occurred while opening the file", Cause: errors.Wrap(err, "open")}
		}
	}
	return &lineReader{path: path, file: f, scan: bufio.NewScanner(f)}, nil
}

func (r *lineReader) close() {
	_ = r.file.Close()
}

// next returns the next non-comment line, or ok=false at end of file.
func (r *lineReader) next() (string, bool, error) {
	for r.scan.Scan() {
		line := r.scan.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		return line, true, nil
	}
	if err := r.scan.Err(); err != nil {
		return "", false, &Error{Path: r.path, Message: "an unexpected error occurred while reading the file", Cause: err}
	}
	return "", false, nil
}
