package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	profilerepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/profile"
	workflowrepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/workflow"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
	"github.com/heartmarshall/creatorhub-backend/internal/service/discovery"
)

type listOptions struct {
	Search  string
	Filters []string
	Page    int
}

func newListCommand(configPath *string) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <creators|workflows>",
		Short: "Print one page of a public listing",
		Long: `Print one page of the public creator directory or workflow gallery,
computed from the approved records in the database.

Examples:
  hubctl list creators --filter experience_level=expert
  hubctl list workflows --search slack --page 2`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"creators", "workflows"},
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := parseFilters(opts.Filters)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e, err := openEnv(ctx, *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			lc := e.cfg.Listing
			switch args[0] {
			case "creators":
				repo := profilerepo.New(e.pool)
				s := listing.NewSession(listing.NewEngine(discovery.CreatorDescriptor(lc.CreatorsPageSize)))
				res, err := browse(ctx, s, func(ctx context.Context) ([]domain.Creator, error) {
					return repo.ListApproved(ctx, lc.FetchLimit)
				}, opts, filters)
				if err != nil {
					return err
				}
				return printCreators(cmd.OutOrStdout(), res)
			case "workflows":
				repo := workflowrepo.New(e.pool)
				s := listing.NewSession(listing.NewEngine(discovery.WorkflowDescriptor(lc.WorkflowsPageSize)))
				res, err := browse(ctx, s, func(ctx context.Context) ([]domain.Workflow, error) {
					return repo.ListApproved(ctx, lc.FetchLimit)
				}, opts, filters)
				if err != nil {
					return err
				}
				return printWorkflows(cmd.OutOrStdout(), res)
			default:
				return fmt.Errorf("unknown listing %q: want creators or workflows", args[0])
			}
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "search term")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "filter as name=value (repeatable)")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number")

	return cmd
}

func browse[T any](
	ctx context.Context,
	s *listing.Session[T],
	fetch func(context.Context) ([]T, error),
	opts *listOptions,
	filters map[string]string,
) (listing.Result[T], error) {
	if err := s.Load(ctx, fetch); err != nil {
		return listing.Result[T]{}, err
	}
	s.SetSearchTerm(opts.Search)
	for name, value := range filters {
		s.SetFilter(name, value)
	}
	s.GoTo(opts.Page)
	return s.View(), nil
}

func parseFilters(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, f := range raw {
		name, value, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid filter %q: want name=value", f)
		}
		out[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return out, nil
}

func printCreators(w io.Writer, res listing.Result[domain.Creator]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tLEVEL\tSKILLS")
	for _, c := range res.Items {
		level := ""
		if c.ExperienceLevel != nil {
			level = string(*c.ExperienceLevel)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, deref(c.Location), level, strings.Join(c.Skills, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return printFooter(w, res.CurrentPage, res.TotalPages, res.TotalCount)
}

func printWorkflows(w io.Writer, res listing.Result[domain.Workflow]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tTAGS")
	for _, wf := range res.Items {
		category := ""
		if wf.Category != nil {
			category = string(*wf.Category)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", wf.ID, wf.Title, category, strings.Join(wf.Tags, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return printFooter(w, res.CurrentPage, res.TotalPages, res.TotalCount)
}

func printFooter(w io.Writer, page, pages, total int) error {
	if total == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}
	_, err := fmt.Fprintf(w, "page %d of %d (%d total)\n", page, pages, total)
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
