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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/store"
	"github.com/valpere/civiclink/internal/translator"
)

const (
	exitFailure     = 1
	exitInvalid     = 2
	exitUnavailable = 3
)

// exitCode maps pipeline errors to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, internal.ErrInvalidInput):
		return exitInvalid
	case errors.Is(err, internal.ErrProviderUnavailable):
		return exitUnavailable
	default:
		return exitFailure
	}
}

// openHistory opens the history database, creating its directory if needed.
func openHistory(path string) (*store.Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// closeService releases provider resources when the provider holds any.
func closeService(svc translator.TranslationService) {
	if c, ok := svc.(io.Closer); ok {
		if err := c.Close(); err != nil {
			appLog.Warn("Failed to close %s client: %v", svc.Name(), err)
		}
	}
}

// readInput returns the text to translate from, in order of preference, the
// input file, the positional arguments or stdin.
func readInput(inputFile string, args []string, stdin io.Reader) (string, error) {
	switch {
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

func writeOutput(outputFile, text string, stdout io.Writer) error {
	if outputFile == "" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// truncate shortens s to at most n runes for tabular output.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
