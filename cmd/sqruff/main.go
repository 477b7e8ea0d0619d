package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tentacle-scylla/scql/pkg/lint"
	"github.com/tentacle-scylla/scql/pkg/segment"
)

func main() {
	app := &cli.App{
		Name:    "sqruff",
		Usage:   "templated-aware SQL lexer, parser, and auto-fixer",
		Version: "0.1.0",
		Commands: []*cli.Command{
			parseCmd(),
			lintCmd(),
			fixCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:    "parse",
		Aliases: []string{"p"},
		Usage:   "Parse SQL and dump the segment tree",
		Flags:   []cli.Flag{fileFlag()},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}

			result := lint.Analyze(input)
			dumpTree(os.Stdout, result.Tree, 0)
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "%s\n", e.Error())
			}
			if result.Errors.HasErrors() {
				os.Exit(1)
			}
			return nil
		},
	}
}

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:    "lint",
		Aliases: []string{"l", "check"},
		Usage:   "Run the rule battery and print violations",
		Flags:   []cli.Flag{fileFlag()},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}

			result := lint.Analyze(input)
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "%s\n", e.Error())
			}
			for _, v := range result.Violations {
				fmt.Fprintf(os.Stdout, "%d:%d: %s: %s\n", v.Line, v.LinePos, v.Code, v.Description)
			}

			if result.Errors.HasErrors() || len(result.Violations) > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

func fixCmd() *cli.Command {
	return &cli.Command{
		Name:  "fix",
		Usage: "Apply the rule battery's fixes and print the corrected source",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result back to file (requires -f)",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}

			fixed, errs := lint.Fix(input)
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "%s\n", e.Error())
			}

			if c.Bool("write") && c.String("file") != "" {
				return os.WriteFile(c.String("file"), []byte(fixed), 0644)
			}

			fmt.Println(fixed)
			return nil
		},
	}
}

func dumpTree(w io.Writer, s *segment.Segment, depth int) {
	indent := strings.Repeat("  ", depth)
	if s.IsLeaf() {
		fmt.Fprintf(w, "%s%s %q\n", indent, s.Kind, s.Raw)
		return
	}
	fmt.Fprintf(w, "%s%s\n", indent, s.Kind)
	for _, c := range s.Children {
		dumpTree(w, c, depth+1)
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Read SQL from file",
	}
}

func getInput(c *cli.Context) (string, error) {
	if file := c.String("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	}

	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	fmt.Fprintln(os.Stderr, "Enter SQL (empty line or Ctrl+D to finish):")
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}
