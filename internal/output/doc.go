// Package output provides formatters for displaying execbench results.
//
// The package supports multiple output formats (table, JSON, YAML) behind one
// Formatter interface used for benchmark reports and for plain listings.
//
// # Basic Usage
//
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Format a benchmark report
//	report := runner.Run(ctx, cases)
//	formatter.FormatReport(os.Stdout, report)
//
//	// Format a single data item
//	formatter.Format(os.Stdout, saxpy.Names())
//
// # Options
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	    output.WithBaseline("for_loop"),
//	)
//
// Wide mode adds MIN, MAX, P50 and RELATIVE columns to the table. RELATIVE is the
// bandwidth of each case divided by the bandwidth of the baseline case.
//
// # Color Support
//
// Colors are enabled only for TTY outputs. Case names are cyan, successes green,
// failures red, durations blue and bandwidth figures magenta.
package output
