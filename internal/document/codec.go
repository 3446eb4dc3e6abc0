package document

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Encoding selects the byte representation of a document.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingMsgpack
)

// File extensions for each encoding.
const (
	ExtJSON    = ".pcbj"
	ExtMsgpack = ".pcbm"
)

var (
	ErrUnknownEncoding    = errors.New("unknown document encoding")
	ErrNotDocument        = errors.New("not a pcb-reveng document")
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding maps "json" or "msgpack" to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return EncodingJSON, nil
	case "msgpack", "binary":
		return EncodingMsgpack, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// EncodingForPath picks the encoding from a file extension.
func EncodingForPath(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON, ".json":
		return EncodingJSON, nil
	case ExtMsgpack, ".msgpack":
		return EncodingMsgpack, nil
	}
	return 0, fmt.Errorf("%w: extension of %s", ErrUnknownEncoding, path)
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case EncodingMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("%w: %v", ErrUnknownEncoding, enc)
}

// Decode reads a document from r and checks its format tag and version.
func Decode(r io.Reader, enc Encoding) (*Document, error) {
	var doc Document
	switch enc {
	case EncodingJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case EncodingMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownEncoding, enc)
	}

	if doc.Format != FormatTag {
		return nil, fmt.Errorf("%w: format %q", ErrNotDocument, doc.Format)
	}
	if doc.Version < 1 || doc.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d (this build reads up to %d)", ErrUnsupportedVersion, doc.Version, CurrentVersion)
	}
	return &doc, nil
}

// Save writes doc to path using the encoding implied by the extension.
// The Modified timestamp is updated.
func Save(path string, doc *Document) error {
	enc, err := EncodingForPath(path)
	if err != nil {
		return err
	}
	doc.Modified = time.Now().UTC()

	err = writeFileAtomic(path, func(w io.Writer) error {
		return Encode(w, doc, enc)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	log.Printf("[Document] saved %s (%s, %d components)", path, enc, len(doc.Components))
	return nil
}

// writeFileAtomic writes through a temporary file in the target's directory
// and renames it over path, so a failed write leaves any existing file intact.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = write(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a document from path using the encoding implied by the extension.
func Load(path string) (*Document, error) {
	enc, err := EncodingForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(bufio.NewReader(f), enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("[Document] loaded %s (%s, v%d, %d components)", path, enc, doc.Version, len(doc.Components))
	return doc, nil
}
