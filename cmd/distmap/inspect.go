package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/distmap/array"
)

var inspectPreview int

var inspectCmd = &cobra.Command{
	Use:   "inspect <array>",
	Short: "Print the shape and dtype of an array artifact",
	Long: `Inspect maps an array artifact read-only and prints its dtype and
shape, plus the leading values of the first row with --preview.

Example:
  distmap inspect out/distmat.npy --preview 8`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVar(&inspectPreview, "preview", 0, "print the first n values of row 0")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if f, err := array.Open[float32](path); err == nil {
		defer f.Close()
		return printArray(path, "<f4", f.Rows(), f.Cols(), func(n int) ([]string, error) {
			row, err := f.Row(0)
			if err != nil {
				return nil, err
			}
			out := make([]string, 0, n)
			for _, v := range row[:n] {
				out = append(out, fmt.Sprintf("%g", v))
			}
			return out, nil
		})
	} else if !errors.Is(err, array.ErrDTypeMismatch) {
		return err
	}

	ix, err := array.Open[int32](path)
	if err != nil {
		return err
	}
	defer ix.Close()
	return printArray(path, "<i4", ix.Rows(), ix.Cols(), func(n int) ([]string, error) {
		row, err := ix.Row(0)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, n)
		for _, v := range row[:n] {
			out = append(out, fmt.Sprintf("%d", v))
		}
		return out, nil
	})
}

func printArray(path, dtype string, rows, cols int, preview func(n int) ([]string, error)) error {
	fmt.Println("file: ", path)
	fmt.Println("dtype:", dtype)
	fmt.Printf("shape: (%d, %d)\n", rows, cols)

	if inspectPreview <= 0 || rows == 0 {
		return nil
	}

	n := inspectPreview
	if n > cols {
		n = cols
	}
	vals, err := preview(n)
	if err != nil {
		return err
	}
	fmt.Printf("row 0: [%s]\n", strings.Join(vals, " "))
	return nil
}
