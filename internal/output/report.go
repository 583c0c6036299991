package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Render formats results with the named formatter without touching the filesystem.
func Render(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	return f.Format(results)
}

// GenerateReport writes the named format to a timestamped file in dir and returns
// the paths written. "all" writes the console, detailed CSV and HTML reports.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var paths []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			p, err := WriteFormatted(GetFormatterByName(name), results, dir, ExtensionFor(name))
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	p, err := WriteFormatted(f, results, dir, ExtensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the available formatters and aliases.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a scenario file that LoadFromFile can read back.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
