// Package ingest loads source files for analysis: language detection,
// binary rejection, encoding fallback, and size limits.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/src-d/enry/v2"

	"github.com/refgauge/refgauge/pkg/syntax"
	"github.com/refgauge/refgauge/pkg/textutil"
)

// LanguageUnknown marks files whose language could not be determined.
const LanguageUnknown = "unknown"

// Sentinel errors for file loading.
var (
	ErrBinaryFile   = errors.New("binary file")
	ErrFileTooLarge = errors.New("file too large")
)

// extensionLanguages maps file extensions to canonical language tags.
var extensionLanguages = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "javascript",
	".tsx":  "javascript",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".c":    "c",
	".h":    "c",
	".go":   "go",
	".rb":   "ruby",
	".rs":   "rust",
}

// File is one loaded source file. Err is set when loading failed; the file
// still appears in batch results so one bad file never aborts a run.
type File struct {
	Path     string
	Language string
	Encoding string
	Content  string
	Err      error
}

// Loader reads source files with a size limit.
type Loader struct {
	maxFileSize int64
	log         *slog.Logger
}

// NewLoader creates a Loader. maxFileSize is in bytes.
func NewLoader(maxFileSize int64, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}

	return &Loader{maxFileSize: maxFileSize, log: log}
}

// Load reads every path and returns one File per path, in order. Per-file
// failures are captured on the File rather than aborting the batch.
func (l *Loader) Load(paths []string) []File {
	files := make([]File, 0, len(paths))

	for _, path := range paths {
		file, err := l.LoadFile(path)
		if err != nil {
			l.log.Warn("skipping file", "path", path, "error", err)

			files = append(files, File{Path: path, Language: LanguageUnknown, Err: err})

			continue
		}

		files = append(files, *file)
	}

	return files
}

// LoadFile reads a single source file. Binary files and files over the
// size limit are rejected; non-UTF-8 content falls back to Latin-1.
func (l *Loader) LoadFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	if info.Size() > l.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %s, limit %s", ErrFileTooLarge, path,
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(l.maxFileSize)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if textutil.IsBinary(data) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryFile, path)
	}

	content, encoding := decodeContent(data)

	return &File{
		Path:     path,
		Language: DetectLanguage(path, data),
		Encoding: encoding,
		Content:  content,
	}, nil
}

// DetectLanguage maps a file to a canonical language tag: by extension
// first, then by content classification, else "unknown".
func DetectLanguage(path string, content []byte) string {
	ext := strings.ToLower(filepath.Ext(path))

	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}

	detected := strings.ToLower(enry.GetLanguage(filepath.Base(path), content))
	if detected != "" && syntax.Supported(detected) {
		return syntax.NormalizeLanguage(detected)
	}

	return LanguageUnknown
}

// decodeContent interprets data as UTF-8 when valid, else as Latin-1.
// Latin-1 decoding is a direct byte-to-rune mapping, so it never fails.
func decodeContent(data []byte) (content, encoding string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}

	return string(runes), "latin-1"
}
