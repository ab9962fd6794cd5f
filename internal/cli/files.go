package cli

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/pipeline"
)

// stdioPath names standard input or output on the command line.
const stdioPath = "-"

// readSource reads a QASM file, or standard input for "-". It returns the
// source and the name used in logs.
func readSource(path string, stdin io.Reader) ([]byte, string, error) {
	if path == stdioPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, pipeline.DefaultSourceName, nil
	}
	if err := perrors.ValidateInputPath(path); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", perrors.Wrap(perrors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, "", perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, filepath.Base(path), nil
}

// writeOutput writes data to path, or to w when path is empty or "-".
// It reports whether a file was written.
func writeOutput(w io.Writer, path string, data []byte) (bool, error) {
	if path == "" || path == stdioPath {
		_, err := w.Write(data)
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return true, nil
}

// derivedPath replaces the extension of input with suffix, placing the
// result in dir when dir is set. "bell.qasm" with ".opt.qasm" becomes
// "bell.opt.qasm".
func derivedPath(input, dir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + suffix
	if dir != "" {
		return filepath.Join(dir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
