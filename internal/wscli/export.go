package wscli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/cluexport"
	"github.com/mkrause/wordspace/internal/validation"
)

var (
	exportFirstN  int
	exportMinSim  float64
	exportOutFile string
)

var exportCmd = &cobra.Command{
	Use:   "export <frequencies|graph|matrix>",
	Short: "Export the word space to a CLUTO-compatible file for external clustering",
	Long: `Export the word space to the flat file formats the CLUTO clustering tool
reads (spec.md §4.12): a word-frequency list, a sparse similarity graph
(edge list + labels), or a sparse feature matrix (matrix + labels). The
output filename is sanitized and the file is written with the "data"
file permissions of internal/validation's default permission set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openWordSpace()
		if err != nil {
			return err
		}

		sfo := validation.NewSecureFileOperations()

		switch args[0] {
		case "frequencies":
			var buf bytes.Buffer
			skipped, err := cluexport.WriteFrequencyList(&buf, h)
			if err != nil {
				return err
			}
			if err := writeExportFile(sfo, "frequencies.txt", buf.Bytes()); err != nil {
				return err
			}
			reportSkipped(skipped)
			return nil

		case "graph":
			var graph, labels bytes.Buffer
			skipped, err := cluexport.WriteSparseGraph(&graph, &labels, h, exportFirstN, exportMinSim)
			if err != nil {
				return err
			}
			if err := writeExportFile(sfo, "graph.clu", graph.Bytes()); err != nil {
				return err
			}
			if err := writeExportFile(sfo, "graph.labels", labels.Bytes()); err != nil {
				return err
			}
			reportSkipped(skipped)
			return nil

		case "matrix":
			var matrix, labels bytes.Buffer
			skipped, err := cluexport.WriteSparseMatrix(&matrix, &labels, h, exportFirstN)
			if err != nil {
				return err
			}
			if err := writeExportFile(sfo, "matrix.clu", matrix.Bytes()); err != nil {
				return err
			}
			if err := writeExportFile(sfo, "matrix.labels", labels.Bytes()); err != nil {
				return err
			}
			reportSkipped(skipped)
			return nil

		default:
			return fmt.Errorf("unknown export target %q (want frequencies, graph, or matrix)", args[0])
		}
	},
}

// writeExportFile sanitizes defaultName and writes data with the "data"
// file permissions into the directory named by --out (".", if unset).
// --out's own basename is intentionally not substituted per file: a graph
// export always produces two files (edges + labels), and reusing one
// caller-given name for both would make the second write silently clobber
// the first.
func writeExportFile(sfo *validation.SecureFileOperations, defaultName string, data []byte) error {
	dir := "."
	if exportOutFile != "" {
		dir = exportOutFile
	}

	path := filepath.Join(dir, validation.SanitizeFilename(defaultName))
	if err := sfo.WriteSecureFile(path, data, "data"); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func reportSkipped(skipped int) {
	if skipped > 0 {
		fmt.Printf("skipped %d word(s) with no dense/sparse vector\n", skipped)
	}
}

func init() {
	exportCmd.Flags().IntVar(&exportFirstN, "first-n", 0, "restrict the export to the first N vocabulary words (graph/matrix only; 0 = all)")
	exportCmd.Flags().Float64Var(&exportMinSim, "min-sim", 0, "minimum similarity for a graph edge to be kept")
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "f", "", "output directory for the exported file(s) (default: current directory)")
}
