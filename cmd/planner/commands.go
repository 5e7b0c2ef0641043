package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yishak-cs/campus-meals/data"
	"github.com/yishak-cs/campus-meals/internal/catalog"
	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/models"
	"github.com/yishak-cs/campus-meals/internal/services"
)

type rootOptions struct {
	catalogDir    string
	catalogConfig string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Browse campus menus and plan meals against a budget",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogDir, "catalog-dir", "", "read datasets from this directory instead of the bundled ones")
	root.PersistentFlags().StringVar(&opts.catalogConfig, "catalog-config", data.ConfigPath, "catalog config path inside the catalog directory")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log catalog loading")

	root.AddCommand(newRestaurantsCmd(opts), newItemsCmd(opts), newSampleCmd(opts))
	return root
}

func (o *rootOptions) service() (*services.RecommendationService, error) {
	var fsys fs.FS = data.FS
	if o.catalogDir != "" {
		fsys = os.DirFS(o.catalogDir)
	}

	log := logger.NewNop()
	if o.verbose {
		l, err := logger.New("dev")
		if err != nil {
			return nil, err
		}
		log = l
	}
	return services.NewRecommendationService(catalog.Source{FS: fsys, ConfigPath: o.catalogConfig}, log)
}

func newRestaurantsCmd(opts *rootOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants, optionally filtered by a search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			list := svc.Directory(query)
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No restaurants found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RESTAURANT\tITEMS\tLOGO")
			for _, r := range list {
				fmt.Fprintf(w, "%s\t%d\t%s\n", r.Name, r.ItemCount, r.LogoRef)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	return cmd
}

func newItemsCmd(opts *rootOptions) *cobra.Command {
	var sortKey string
	var desc bool

	cmd := &cobra.Command{
		Use:   "items <restaurant>",
		Short: "Show every item one restaurant serves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			items, err := svc.RestaurantItems(args[0])
			if err != nil {
				return err
			}
			if sortKey != "" {
				key, err := services.ParseSortKey(sortKey)
				if err != nil {
					return err
				}
				items = services.Rank(items, key, desc)
			}
			return printItems(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "", "rank by calories, protein or fat")
	cmd.Flags().BoolVar(&desc, "desc", false, "rank from highest to lowest")
	return cmd
}

type sampleOptions struct {
	balance, calories, protein, fat string
	sortKey                         string
	desc                            bool
	seed                            uint64
	selected                        string
}

func newSampleCmd(opts *rootOptions) *cobra.Command {
	so := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick one item from up to six restaurants and show what is left of your goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			goals, err := models.ParseGoals(so.balance, so.calories, so.protein, so.fat)
			if err != nil {
				return err
			}
			selected, err := models.ParseSelection(so.selected)
			if err != nil {
				return err
			}

			req := services.RecommendRequest{Goals: goals, Selected: selected, Descending: so.desc}
			if so.sortKey != "" {
				if req.SortKey, err = services.ParseSortKey(so.sortKey); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &so.seed
			}

			svc, err := opts.service()
			if err != nil {
				return err
			}
			rec := svc.Recommend(req)

			out := cmd.OutOrStdout()
			if err := printItems(out, rec.Items); err != nil {
				return err
			}
			fmt.Fprintln(out)
			printRemaining(out, rec.Remaining)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&so.balance, "balance", "", "starting balance in dollars")
	f.StringVar(&so.calories, "calories", "", "calorie goal")
	f.StringVar(&so.protein, "protein", "", "protein goal in grams")
	f.StringVar(&so.fat, "fat", "", "fat goal in grams")
	f.StringVar(&so.sortKey, "sort", "", "rank by calories, protein or fat")
	f.BoolVar(&so.desc, "desc", false, "rank from highest to lowest")
	f.Uint64Var(&so.seed, "seed", 0, "random seed for a repeatable sample")
	f.StringVar(&so.selected, "select", "", "comma separated item ids already chosen")
	return cmd
}

func printItems(out io.Writer, items []models.MenuItem) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRESTAURANT\tITEM\tPRICE\tKCAL\tPROTEIN\tFAT")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%.0f\t%.0fg\t%.0fg\n",
			it.ID, it.RestaurantName, it.Name, it.Price, it.Calories, it.Protein, it.Fat)
	}
	return w.Flush()
}

func printRemaining(out io.Writer, r models.Remaining) {
	line := func(label string, v *float64, format string) string {
		if v == nil {
			return label + ": -"
		}
		return label + ": " + fmt.Sprintf(format, *v)
	}
	fmt.Fprintln(out, strings.Join([]string{
		line("Balance", r.Balance, "$%.2f"),
		line("Calories", r.Calories, "%.0f"),
		line("Protein", r.Protein, "%.0fg"),
		line("Fat", r.Fat, "%.0fg"),
	}, "  "))
}
