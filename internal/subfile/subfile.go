// Package subfile reads subtitle files into UTF-8 text and writes results
// back without ever leaving a half-written file behind.
package subfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto detects UTF-16 by its byte order mark and treats anything else as UTF-8.
const Auto = "auto"

// ErrUnsupportedEncoding is returned for encoding names Read does not know.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encodings lists the names accepted by Read.
var Encodings = []string{Auto, "utf-8", "utf-16le", "utf-16be", "iso-8859-1", "windows-1252", "gbk", "big5"}

func decoderFor(name string, data []byte) (*encoding.Decoder, error) {
	switch strings.ToLower(name) {
	case "", Auto:
		if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
			return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), nil
		}
		return encoding.Nop.NewDecoder(), nil
	case "utf-8", "utf8":
		return encoding.Nop.NewDecoder(), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "gbk":
		return simplifiedchinese.GBK.NewDecoder(), nil
	case "big5", "big-5":
		return traditionalchinese.Big5.NewDecoder(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q (want one of %s)", name, strings.Join(Encodings, ", "))
	}
}

// Decode converts raw file bytes in the named encoding to UTF-8 text.
func Decode(data []byte, enc string) (string, error) {
	decoder, err := decoderFor(enc, data)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", errors.Wrap(err, "decode")
	}
	return string(decoded), nil
}

// Read loads path and decodes it to UTF-8 text.
func Read(path, enc string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read subtitle file")
	}
	text, err := Decode(data, enc)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return text, nil
}

// WriteAtomic writes text to path through a temporary file in the same
// directory, renamed into place once fully written. On failure path is left
// as it was.
func WriteAtomic(path, text string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.WriteString(tmp, text); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename into %s", path)
	}
	return nil
}
