package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvillar/annokit/internal/extract"
	"github.com/mvillar/annokit/internal/fasta"
)

var (
	listFile   string
	namesArg   string
	selectFA   string
	selectOut  string
	substring  bool
	ignoreCase bool
	fastaOrder bool
	selectWrap int
)

// selectCmd represents the select command
var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Extract FASTA records by a list of sequence names",
	Long: `Select copies the FASTA records whose names match a target list.

Targets come from a list file (one name per line, '#' comments allowed),
from --names (comma or space separated), or both; duplicates are dropped
while preserving order. Matching defaults to the exact first token of
each header; --match-substring matches anywhere in the full header.
Output follows list order unless --preserve-fasta-order is set.

Example:
  annokit select --list-file ids.txt --fasta sequences.faa -o extracted.faa
  annokit select --names "LMB_CAL9_8192.t1,LMB_CAL9_7202.t1" --fasta sequences.faa
  annokit select --list-file ids.txt --fasta sequences.faa --match-substring --ignore-case`,
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)

	selectCmd.Flags().StringVar(&listFile, "list-file", "", "text file with one sequence name per line")
	selectCmd.Flags().StringVar(&namesArg, "names", "", "comma- or space-separated names, e.g. 'id1,id2'")
	selectCmd.Flags().StringVar(&selectFA, "fasta", "", "input FASTA ('-' = stdin)")
	selectCmd.Flags().StringVarP(&selectOut, "out", "o", "extracted.faa", "output FASTA path")
	selectCmd.Flags().BoolVar(&substring, "match-substring", false, "match names as substrings anywhere in the header")
	selectCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "case-insensitive matching")
	selectCmd.Flags().BoolVar(&fastaOrder, "preserve-fasta-order", false, "write matches in FASTA order instead of list order")
	selectCmd.Flags().IntVar(&selectWrap, "wrap", 0, "wrap output sequences at this column (0 = no wrap)")

	_ = selectCmd.MarkFlagRequired("fasta")
}

func runSelect(cmd *cobra.Command, args []string) error {
	var targets []string
	if listFile != "" {
		names, err := extract.ReadNameList(listFile)
		if err != nil {
			return err
		}
		targets = append(targets, names...)
	}
	if namesArg != "" {
		targets = append(targets, extract.SplitNames(namesArg)...)
	}
	targets = extract.DedupeNames(targets)
	if len(targets) == 0 {
		return errors.New("no target names provided: use --list-file or --names")
	}
	logger.Debug("targets resolved", "count", len(targets))

	in, err := fasta.Open(selectFA)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(selectOut)
	if err != nil {
		return err
	}
	defer out.Close()

	stats, err := extract.ByNames(out, in, extract.NamesOptions{
		Targets:    targets,
		Substring:  substring,
		IgnoreCase: ignoreCase,
		FastaOrder: fastaOrder,
		Wrap:       selectWrap,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("OK: wrote %d sequences -> %s\n", stats.Written, selectOut)
	return nil
}
