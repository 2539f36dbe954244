package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/aryankumar/execbench/internal/bench"
)

// TableFormatter formats output as a borderless table
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	table := f.createTable(w)

	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatMap(table, v)
	case []string:
		return f.formatList(table, v)
	case string:
		fmt.Fprintln(w, v)
		return nil
	default:
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatReport outputs a benchmark report as a table followed by a summary line
func (f *TableFormatter) FormatReport(w io.Writer, report bench.Report) error {
	if len(report.Results) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)
	base, hasBase := findResult(report.Results, f.options.Baseline)

	if !f.options.NoHeaders {
		fmt.Fprintf(w, "Run %s: n=%d, trials=%d, warmup=%d\n\n",
			report.RunID, report.ProblemSize, report.Trials, report.Warmup)
	}

	table := f.createTable(w)

	headers := []string{"CASE", "STATUS", "MEAN", "P99", "GB/S"}
	if f.options.Wide {
		headers = append(headers, "MIN", "MAX", "P50", "RELATIVE")
	}

	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, result := range report.Results {
		table.Append(f.formatResultRow(result, base, hasBase, colors))
	}

	table.Render()

	f.printFailures(w, report.Results, colors)
	f.printSummary(w, report.Results, colors)

	return nil
}

// formatResultRow formats a single result as a table row
func (f *TableFormatter) formatResultRow(result bench.Result, base bench.Result, hasBase bool, colors *ColorScheme) []string {
	failed := result.Error != nil

	name := result.Name
	if !colors.Disabled {
		name = colors.CaseName(name)
	}

	status := "Success"
	if failed {
		status = "Failed"
	}
	if !colors.Disabled {
		status = colors.StatusColor(failed)(status)
	}

	mean, p99, gbs := "-", "-", "-"
	if !failed {
		mean = formatDuration(result.Stats.Mean)
		p99 = formatDuration(result.Stats.P99)
		gbs = fmt.Sprintf("%.2f", result.BandwidthGBs)
		if !colors.Disabled {
			mean = colors.Duration(mean)
			p99 = colors.Duration(p99)
			gbs = colors.Bandwidth(gbs)
		}
	}

	row := []string{name, status, mean, p99, gbs}

	if f.options.Wide {
		if failed {
			row = append(row, "-", "-", "-", "-")
		} else {
			relative := "-"
			if hasBase {
				relative = fmt.Sprintf("%.2fx", bench.RelativeTo(result, base))
			}
			row = append(row,
				formatDuration(result.Stats.Min),
				formatDuration(result.Stats.Max),
				formatDuration(result.Stats.P50),
				relative,
			)
		}
	}

	return row
}

// formatMap formats a map as a two-column table (key-value pairs)
func (f *TableFormatter) formatMap(table *tablewriter.Table, data map[string]interface{}) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"KEY", "VALUE"})
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		table.Append([]string{k, fmt.Sprintf("%v", data[k])})
	}

	table.Render()
	return nil
}

// formatList formats a slice of names as a single-column table
func (f *TableFormatter) formatList(table *tablewriter.Table, data []string) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"NAME"})
	}

	for _, item := range data {
		table.Append([]string{item})
	}

	table.Render()
	return nil
}

// createTable creates a borderless, tab-padded table
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

// printFailures lists the error of every failed case below the table
func (f *TableFormatter) printFailures(w io.Writer, results []bench.Result, colors *ColorScheme) {
	failed := bench.FilterFailed(results)
	if len(failed) == 0 {
		return
	}

	fmt.Fprintln(w, "")
	for _, r := range failed {
		msg := fmt.Sprintf("%s: %v", r.Name, r.Error)
		if !colors.Disabled {
			msg = colors.Error(msg)
		}
		fmt.Fprintln(w, msg)
	}
}

// printSummary prints a summary of the results
func (f *TableFormatter) printSummary(w io.Writer, results []bench.Result, colors *ColorScheme) {
	summary := bench.Summarize(results)

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Summary: ")

	successText := fmt.Sprintf("%d successful", summary.Successful)
	if !colors.Disabled {
		successText = colors.Success(successText)
	}

	failedText := fmt.Sprintf("%d failed", summary.Failed)
	if !colors.Disabled && summary.Failed > 0 {
		failedText = colors.Error(failedText)
	}

	parts := []string{successText, failedText}
	if summary.Fastest != "" {
		fastestText := fmt.Sprintf("fastest=%s (%.2f GB/s)", summary.Fastest, summary.FastestGBs)
		if !colors.Disabled {
			fastestText = colors.Bandwidth(fastestText)
		}
		parts = append(parts, fastestText)
	}

	fmt.Fprintln(w, strings.Join(parts, ", "))
}

// formatDuration rounds d to a precision that keeps short and long timings readable
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
