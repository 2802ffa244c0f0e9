package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/team-lms-2026-1/LMS-project-sub001/pkg/lmsapi"
)

// column maps a table header to the row alias keys that fill it.
type column struct {
	header string
	keys   []string
}

// newListCmd builds a "<entity> list" command over a list endpoint. The
// named filters become flags; paging and keyword flags are shared.
func newListCmd(opts *cliOptions, entity, path string, filters []string, cols []column) *cobra.Command {
	parent := &cobra.Command{
		Use:   entity,
		Short: fmt.Sprintf("Manage %s", entity),
	}

	var (
		page    int
		size    int
		keyword string
		values  = make(map[string]*string, len(filters))
	)

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", entity),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			client, err := apiClient(ctx, opts)
			if err != nil {
				return err
			}

			lc := lmsapi.NewListController(size, client.ListFetcher(path))
			lc.SetKeyword(keyword)
			for name, val := range values {
				if *val != "" {
					if err := lc.SetFilter(ctx, name, *val); err != nil {
						return err
					}
				}
			}
			if err := lc.GoPage(ctx, page); err != nil {
				return err
			}

			printRows(cols, lc.Items(), lc.Meta())
			return nil
		},
	}

	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&size, "size", 20, "page size")
	list.Flags().StringVar(&keyword, "keyword", "", "keyword filter")
	for _, name := range filters {
		v := new(string)
		values[name] = v
		list.Flags().StringVar(v, name, "", fmt.Sprintf("filter by %s", name))
	}

	parent.AddCommand(list)
	return parent
}

func printRows(cols []column, rows []lmsapi.Row, meta lmsapi.PageMeta) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = row.Str(c.keys...)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	fmt.Printf("\npage %d/%d, %d total\n", meta.Page, meta.TotalPages, meta.TotalElements)
}
