package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eleventy7/jruff/internal/diagfmt"
	"github.com/eleventy7/jruff/internal/javaparse"
	"github.com/eleventy7/jruff/internal/source"
)

var astCmd = &cobra.Command{
	Use:   "ast [file.java]",
	Short: "Dump the parsed syntax tree of a Java file",
	Long:  "Parse a single Java file and print its concrete syntax tree. With no argument the source is read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAst,
}

func runAst(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()

	var fileID source.FileID
	if len(args) == 1 {
		id, err := fileSet.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		fileID = id
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fileID = fileSet.AddVirtual("<stdin>", content)
	}

	file := fileSet.Get(fileID)
	parser := javaparse.NewParser()
	defer parser.Close()

	tree, err := parser.Parse(cmd.Context(), file.Content, fileID)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", file.Path, err)
	}

	diagfmt.DumpCST(os.Stdout, tree, file)
	return nil
}
