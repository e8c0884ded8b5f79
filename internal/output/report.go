package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// GenerateReport writes the comparison in the named format to a file in dir.
// The format "all" writes the console, breakdown CSV and HTML reports.
func GenerateReport(results *domain.FilingComparison, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var files []string
		for _, name := range []string{"console", "breakdown-csv", "html"} {
			file, err := WriteFormatted(GetFormatterByName(name), results, dir, FileExtension(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	file, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// SaveConfiguration writes a filing configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
