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

	"github.com/spf13/cobra"

	"github.com/valpere/civiclink/internal/markdown"
	"github.com/valpere/civiclink/internal/orchestrator"
)

var (
	inputFile    string
	outputFile   string
	sourceLang   string
	targetLang   string
	providerName string
	maxChunkSize int
	isMarkdown   bool
	noHistory    bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text into a target language",
	Long: `Translate text read from --input, the command arguments or stdin.

The text is split at sentence boundaries into chunks of at most
--max-chunk-size characters, each chunk is translated in order and the
results are joined back together. Chunks that fail keep their original text.

Examples:
  civiclink translate -t es "Polling places open at 7am."
  civiclink translate -t zh -i notice.md --markdown -o notice.zh.txt
  cat guide.txt | civiclink translate -t vi --provider mymemory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, err := readInput(inputFile, args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if isMarkdown {
			text = markdown.ToPlainText([]byte(text))
		}

		cfg := *appConfig
		if providerName != "" {
			cfg.Provider.Name = providerName
		}
		if maxChunkSize > 0 {
			cfg.Translation.MaxChunkSize = maxChunkSize
		}

		ctx := cmd.Context()
		orch, svc, err := orchestrator.NewFromConfig(ctx, &cfg, appLog)
		if err != nil {
			return err
		}
		defer closeService(svc)

		result, err := orch.Translate(ctx, text, targetLang, sourceLang)
		if err != nil {
			return err
		}

		if !noHistory && cfg.Store.Enabled {
			db, err := openHistory(cfg.Store.Path)
			if err != nil {
				appLog.Warn("History disabled: %v", err)
			} else {
				defer db.Close()
				if id, err := db.SaveResult(ctx, result); err != nil {
					appLog.Warn("Failed to record translation: %v", err)
				} else {
					appLog.Debug("Recorded translation %s", id)
				}
			}
		}

		if err := writeOutput(outputFile, result.TranslatedText, cmd.OutOrStdout()); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Translated %d characters to %s via %s (%d chunk(s), quality %.2f)\n",
			result.TotalCharacters, result.TargetLanguage, result.TranslationService,
			result.ChunksProcessed, result.QualityScore)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (default: arguments or stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language code")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")
	translateCmd.Flags().StringVar(&providerName, "provider", "", "Translation provider: google, mymemory, amazon (default from config)")
	translateCmd.Flags().IntVar(&maxChunkSize, "max-chunk-size", 0, "Maximum characters per chunk (default from config)")
	translateCmd.Flags().BoolVar(&isMarkdown, "markdown", false, "Treat input as Markdown and translate its plain text")
	translateCmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the translation in the history database")

	translateCmd.MarkFlagRequired("target")
}
