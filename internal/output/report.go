package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/retirement-savings/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// extensions maps canonical formatter names to output file extensions.
var extensions = map[string]string{
	"console": "txt",
	"csv":     "csv",
	"html":    "html",
	"json":    "json",
}

// GenerateReport writes the result in the named format to a timestamped file in dir
// and returns the written paths. Format "all" writes every registered format.
func GenerateReport(result *domain.ProjectionResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range AvailableFormatterNames() {
			p, err := WriteFormatted(GetFormatterByName(name), result, dir, extensions[name])
			if err != nil {
				return paths, fmt.Errorf("failed to write %s report: %w", name, err)
			}
			paths = append(paths, p)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	ext, ok := extensions[f.Name()]
	if !ok {
		ext = "txt"
	}
	p, err := WriteFormatted(f, result, dir, ext)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

// Render formats the result in memory without touching the filesystem.
func Render(result *domain.ProjectionResult, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return f.Format(result)
}
