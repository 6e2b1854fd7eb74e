package main

import (
	"fmt"
	"math/rand"

	"github.com/cyraxred/rbtree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// checkCmd runs the randomized invariant checker
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run random insertions and erasures validating the tree after each of them.",
	Long: `Executes a seeded random sequence of insert and erase operations on a single tree.
The red-black invariants, the element count and the cached extremes are verified
after every operation. The first violation stops the run with a non-zero exit code.`,
	Args: cobra.MaximumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		getInt := func(name string) int {
			value, err := flags.GetInt(name)
			if err != nil {
				panic(err)
			}
			return value
		}
		seed, err := flags.GetInt64("seed")
		if err != nil {
			panic(err)
		}
		l := newLogger(flags)
		ops, keys := getInt("ops"), getInt("keys")
		if keys <= 0 {
			l.Warnf("adjusted the key range to 1")
			keys = 1
		}
		report, err := runCheck(ops, keys, seed)
		if err != nil {
			l.Criticalf("check failed: %v", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "check:")
		fmt.Fprintln(cmd.OutOrStdout(), "  seed:", seed)
		fmt.Fprintln(cmd.OutOrStdout(), "  inserted:", report.Inserted)
		fmt.Fprintln(cmd.OutOrStdout(), "  erased:", report.Erased)
		fmt.Fprintln(cmd.OutOrStdout(), "  final_size:", report.FinalSize)
		fmt.Fprintln(cmd.OutOrStdout(), "  max_height:", report.MaxHeight)
		return nil
	},
}

type checkReport struct {
	Inserted  int
	Erased    int
	FinalSize int
	MaxHeight int
}

// runCheck performs `ops` random operations on keys from [0, keys).
// Two thirds of them are insertions.
func runCheck(ops, keys int, seed int64) (checkReport, error) {
	var report checkReport
	rnd := rand.New(rand.NewSource(seed))
	tree := rbtree.New()
	defer tree.Destroy()
	counts := map[rbtree.Key]int{}
	size := 0
	for i := 0; i < ops; i++ {
		key := rbtree.Key(rnd.Intn(keys))
		if rnd.Intn(3) == 0 {
			node := tree.Find(key)
			if node.Nil() != (counts[key] == 0) {
				return report, errors.Errorf("op %d: Find(%d) disagrees with the expected count %d",
					i, key, counts[key])
			}
			if !node.Nil() {
				if err := tree.Erase(node); err != nil {
					return report, errors.Wrapf(err, "op %d: erase %d", i, key)
				}
				counts[key]--
				size--
				report.Erased++
			}
		} else {
			if _, err := tree.Insert(key); err != nil {
				return report, errors.Wrapf(err, "op %d: insert %d", i, key)
			}
			counts[key]++
			size++
			report.Inserted++
		}
		if err := tree.Validate(); err != nil {
			return report, errors.Wrapf(err, "op %d", i)
		}
		if tree.Len() != size {
			return report, errors.Errorf("op %d: size %d, expected %d", i, tree.Len(), size)
		}
		if h := tree.Height(); h > report.MaxHeight {
			report.MaxHeight = h
		}
	}
	report.FinalSize = tree.Len()
	return report, nil
}

func init() {
	flags := checkCmd.Flags()
	flags.Int("ops", 20000, "Number of random operations.")
	flags.Int("keys", 1000, "Size of the key range; smaller ranges produce more duplicates.")
	flags.Int64("seed", 1, "Random generator seed.")
}
