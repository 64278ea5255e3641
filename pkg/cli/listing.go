package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fliits/fliitsctl/pkg/export"
	"github.com/fliits/fliitsctl/pkg/listview"
)

// listFlags are the filter flags shared by every list and export command.
type listFlags struct {
	status string
	search string
	where  string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", listview.StatusAll, "Filter by status (\"all\" matches everything)")
	cmd.Flags().StringVar(&f.search, "search", "", "Case-insensitive substring search")
	cmd.Flags().StringVar(&f.where, "where", "", "Expression filter, e.g. 'totalEarnings > 1000'")
}

// loadView fetches a collection into a fresh controller and derives the
// filtered view. Export commands go through this too: exports always
// operate on the filtered view, never the full collection.
func loadView[T listview.Record](ctx context.Context, fetch func(context.Context) ([]T, error), flags listFlags) (*listview.Controller[T], []T, error) {
	ctrl := listview.New[T]()
	if err := ctrl.Load(ctx, fetch); err != nil {
		return nil, nil, err
	}
	ctrl.SetSearchTerm(flags.search)
	ctrl.SetStatusFilter(flags.status)
	view := ctrl.View()
	if flags.where != "" {
		var err error
		view, err = applyWhere(view, flags.where)
		if err != nil {
			return nil, nil, err
		}
	}
	return ctrl, view, nil
}

// reconcile merges a mutation response onto the collection element that
// was mutated. When the server answered 204 the request body we sent is
// merged instead, so the local record still reflects the change.
func reconcile[T listview.Record](ctrl *listview.Controller[T], rec T, partial json.RawMessage, sent map[string]any) (T, error) {
	body := partial
	if len(body) == 0 && sent != nil {
		encoded, err := json.Marshal(sent)
		if err != nil {
			return rec, err
		}
		body = encoded
	}
	merged, err := listview.Merge(rec, body)
	if err != nil {
		return rec, fmt.Errorf("failed to parse mutation response: %w", err)
	}
	ctrl.Replace(merged.RecordID(), merged)
	return merged, nil
}

// exportFlags configure the output file of an export command.
type exportFlags struct {
	listFlags
	output string
	format string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	f.listFlags.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default: <resource>_<timestamp>.<format>)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: csv, xlsx, json (default: csv or from extension)")
}

// writeExport renders rows to the requested file and format.
func writeExport[T any](flags exportFlags, prefix string, rows []T, columns []export.Column[T]) error {
	format := strings.ToLower(flags.format)
	if format == "" {
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(flags.output)), "."); ext != "" {
			format = ext
		} else {
			format = "csv"
		}
	}
	switch format {
	case "csv", "xlsx", "json":
	default:
		return fmt.Errorf("invalid format: %s (supported: csv, xlsx, json)", format)
	}

	path := flags.output
	if path == "" {
		path = export.Filename(prefix, format, time.Now())
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	switch format {
	case "csv":
		err = export.WriteCSV(file, rows, columns)
	case "xlsx":
		err = export.WriteXLSX(file, prefix, rows, columns)
	case "json":
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		err = enc.Encode(rows)
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	fmt.Printf("Exported %d records to %s\n", len(rows), path)
	return nil
}

// parseSetArgs turns repeated --set key=value flags into a mutation body.
// Values that look like numbers or booleans are sent as such.
func parseSetArgs(args []string) (map[string]any, error) {
	updates := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", arg)
		}
		switch {
		case value == "true" || value == "false":
			updates[key] = value == "true"
		default:
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				updates[key] = n
			} else {
				updates[key] = value
			}
		}
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("nothing to update; pass at least one --set key=value")
	}
	return updates, nil
}

// fmtAmount renders monetary values the way the console tables do.
func fmtAmount(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtInt(v int) string {
	return strconv.Itoa(v)
}
