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

	"github.com/valpere/civiclink/internal/languages"
	"github.com/valpere/civiclink/internal/translator"
)

var languagesProvider string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List civic languages or the languages a provider supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		if languagesProvider == "" {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tNATIVE\tPROVIDER NAME")
			for _, l := range languages.Civic() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Code, l.Name, l.Native, languages.ProviderName(l.Code))
			}
			return w.Flush()
		}

		provider := appConfig.Provider
		provider.Name = languagesProvider

		ctx := cmd.Context()
		svc, err := translator.NewFromConfig(ctx, provider)
		if err != nil {
			return err
		}
		defer closeService(svc)

		codes, err := svc.SupportedLanguages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list %s languages: %w", svc.Name(), err)
		}
		sort.Strings(codes)
		for _, c := range codes {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)

	languagesCmd.Flags().StringVar(&languagesProvider, "provider", "", "Ask a provider for its supported languages")
}
