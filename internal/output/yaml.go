package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aryankumar/execbench/internal/bench"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs a single data item as YAML
func (f *YAMLFormatter) Format(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(data)
}

// FormatReport outputs a benchmark report as YAML
func (f *YAMLFormatter) FormatReport(w io.Writer, report bench.Report) error {
	return f.Format(w, toDocument(report, f.options.Baseline))
}
