package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gourmet-search/config"
	"gourmet-search/internal/gourmet"
	"gourmet-search/internal/pipeline"
	"gourmet-search/internal/render"
)

var searchOpts struct {
	keyword string
	count   int
	price   int
	station string
	output  string
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchOpts.keyword, "keyword", "k", "", "free-text keyword (default gourmet.keyword)")
	f.IntVarP(&searchOpts.count, "count", "n", 0, "number of shops to request, 1-100 (default gourmet.count)")
	f.IntVarP(&searchOpts.price, "price", "p", 0, "keep shops whose budget band contains this price in yen")
	f.StringVarP(&searchOpts.station, "station", "s", "", "keep shops whose station name occurs in this text")
	f.StringVarP(&searchOpts.output, "output", "o", "table", "output format: table or json")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [--keyword K] [--price P] [--station S]",
	Short: "Searches shops once and prints them.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchOpts.output != "table" && searchOpts.output != "json" {
			return fmt.Errorf("unknown output format %q", searchOpts.output)
		}
		if cmd.Flags().Changed("count") && (searchOpts.count < 1 || searchOpts.count > config.MaxCount) {
			return config.ErrInvalidCount
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		query := pipeline.Query{
			Keyword: cfg.Gourmet.Keyword,
			Count:   cfg.Gourmet.Count,
			Station: searchOpts.station,
		}
		if searchOpts.keyword != "" {
			query.Keyword = searchOpts.keyword
		}
		if cmd.Flags().Changed("count") {
			query.Count = searchOpts.count
		}
		if cmd.Flags().Changed("price") {
			if searchOpts.price < 0 {
				return fmt.Errorf("price must be non-negative, got %d", searchOpts.price)
			}
			query.Price = &searchOpts.price
		}

		report, err := pipeline.Run(cmd.Context(), gourmet.NewClient(cfg.Gourmet), query)
		if err != nil {
			return err
		}

		if searchOpts.output == "json" {
			return render.JSON(os.Stdout, report)
		}
		render.Table(os.Stdout, report.Shops)
		render.Problems(os.Stderr, report.Problems)
		return nil
	},
}
