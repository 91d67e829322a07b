/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/civiclink/internal/store"
)

var (
	historyDBPath   string
	historyLanguage string
	historySearch   string
	historyLimit    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the translation history",
	Long:  `List, summarise, delete and clear translations recorded in the SQLite history database.`,
}

func historyPath() string {
	if historyDBPath != "" {
		return historyDBPath
	}
	return appConfig.Store.Path
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded translations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(historyPath())
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.List(cmd.Context(), store.ListFilter{
			TargetLanguage: historyLanguage,
			Search:         historySearch,
			Limit:          historyLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to list translations: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No translations recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTARGET\tSERVICE\tCHUNKS\tQUALITY\tCREATED\tTEXT")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\t%s\n",
				r.ID, r.TargetLanguage, r.Service, r.ChunksProcessed, r.QualityScore,
				r.CreatedAt.Local().Format("2006-01-02 15:04"), truncate(r.OriginalText, 40))
		}
		return w.Flush()
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show translation history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(historyPath())
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Total translations: %d\n", stats.TotalTranslations)
		fmt.Printf("Total characters:   %d\n", stats.TotalCharacters)
		fmt.Printf("Average quality:    %.2f\n", stats.AverageQuality)

		langs := make([]string, 0, len(stats.ByLanguage))
		for l := range stats.ByLanguage {
			langs = append(langs, l)
		}
		sort.Strings(langs)
		for _, l := range langs {
			fmt.Printf("  %-6s %d\n", l, stats.ByLanguage[l])
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded translation by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(historyPath())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete translation: %w", err)
		}
		fmt.Printf("Deleted translation: %s\n", args[0])
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(historyPath())
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Cleared %d translations from history.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.PersistentFlags().StringVar(&historyDBPath, "db", "", "Database path (default from config)")

	historyListCmd.Flags().StringVarP(&historyLanguage, "language", "l", "", "Only show this target language")
	historyListCmd.Flags().StringVar(&historySearch, "search", "", "Only show translations containing this text")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of rows (at most 100)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
