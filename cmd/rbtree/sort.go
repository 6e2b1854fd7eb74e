package main

import (
	"fmt"
	"io"

	"github.com/cyraxred/rbtree"
	"github.com/cyraxred/rbtree/yaml"
	"github.com/spf13/cobra"
)

// sortCmd sorts the integers by inserting them into a tree and exporting it
var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort whitespace separated integers.",
	Long: `Reads int32 numbers from the file or from stdin, inserts them into a tree and prints
the in-order export as YAML together with its HighwayHash checksum.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger(cmd.Flags())
		keys, name, err := loadKeys(args)
		if err != nil {
			l.Error(err)
			return err
		}
		l.Infof("read %d keys from %s", len(keys), name)
		sorted, err := sortKeys(keys)
		if err != nil {
			l.Error(err)
			return err
		}
		printSorted(cmd.OutOrStdout(), name, sorted)
		return nil
	},
}

func sortKeys(keys []rbtree.Key) ([]rbtree.Key, error) {
	tree, err := buildTree(keys)
	if err != nil {
		return nil, err
	}
	defer tree.Destroy()
	sorted := make([]rbtree.Key, tree.Len())
	if _, err = tree.ToArray(sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

func printSorted(writer io.Writer, name string, sorted []rbtree.Key) {
	fmt.Fprintln(writer, "sort:")
	fmt.Fprintln(writer, "  source:", yaml.SafeString(name))
	fmt.Fprintln(writer, "  count:", len(sorted))
	if len(sorted) > 0 {
		fmt.Fprintln(writer, "  min:", sorted[0])
		fmt.Fprintln(writer, "  max:", sorted[len(sorted)-1])
	}
	fmt.Fprintln(writer, "  checksum:", checksum(sorted))
	yaml.PrintSequence(writer, sorted, 2, "keys", 16)
}
