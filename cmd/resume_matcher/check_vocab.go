package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var checkVocabCmd = &cobra.Command{
	Use:   "check-vocab",
	Short: "Validate a vocabulary JSON file",
	Long:  "Validate a vocabulary configuration file against the vocabulary schema, compile its patterns, and print the canonical skill inventory.",
	RunE:  runCheckVocab,
}

var checkVocabFile string

func init() {
	checkVocabCmd.Flags().StringVarP(&checkVocabFile, "file", "f", "", "Path to vocabulary JSON file (default: built-in vocabulary)")

	rootCmd.AddCommand(checkVocabCmd)
}

func runCheckVocab(cmd *cobra.Command, _ []string) error {
	vocabulary, err := loadVocabularyFlag(checkVocabFile)
	if err != nil {
		return err
	}

	source := checkVocabFile
	if source == "" {
		source = "built-in"
	}
	cmd.Printf("vocabulary %s: %d skills\n", source, vocabulary.Len())
	cmd.Println(strings.Join(vocabulary.IDs(), "\n"))
	return nil
}
