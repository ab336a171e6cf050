package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/distmap/geo"
)

var euclidDelim string

var euclidCmd = &cobra.Command{
	Use:   "euclid <coords> <outfile>",
	Short: "Write a dense Euclidean distance matrix from a coordinate table",
	Long: `Euclid reads an N x d coordinate table (one vertex per line) and
writes the full N x N pairwise Euclidean distance matrix as delimited
text, one row per line. The output is a valid input for prep.

Example:
  distmap euclid voxel_coordinates.txt distances.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runEuclid,
}

func init() {
	rootCmd.AddCommand(euclidCmd)

	euclidCmd.Flags().StringVar(&euclidDelim, "delimiter", "", "field delimiter for input and output (default from config)")
}

func runEuclid(cmd *cobra.Command, args []string) error {
	coordsFile, outFile := args[0], args[1]

	delim := cfg.Delimiter
	if euclidDelim != "" {
		delim = euclidDelim
	}

	coords, err := geo.ReadCoords(coordsFile, geo.WithDelimiter(delim))
	if err != nil {
		return err
	}

	logger.Info("computing euclidean distances", "vertices", len(coords), "dim", len(coords[0]))

	if err := geo.WriteEuclidean(coords, outFile, geo.WithDelimiter(delim)); err != nil {
		return err
	}

	fmt.Println("distmat:", outFile)
	return nil
}
