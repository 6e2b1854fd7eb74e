package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/Jeffail/tunny"
	"github.com/cyraxred/rbtree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
	progress "gopkg.in/cheggaaa/pb.v1"
)

// benchCmd measures the tree throughput
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure insertion, export and erasure throughput.",
	Long: `Builds --rounds random trees of --size keys each in a pool of --workers goroutines.
Every tree is exported, optionally hibernated and booted, then erased node by node
in random order. The report is printed as YAML.`,
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
		getBool := func(name string) bool {
			value, err := flags.GetBool(name)
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
		opts := benchOptions{
			Size:      getInt("size"),
			Rounds:    getInt("rounds"),
			Workers:   getInt("workers"),
			Seed:      seed,
			Hibernate: getBool("hibernate"),
		}
		if opts.Workers <= 0 {
			opts.Workers = runtime.NumCPU()
		}
		if opts.Rounds <= 0 {
			l.Warnf("adjusted the number of rounds to 1")
			opts.Rounds = 1
		}
		var bar *progress.ProgressBar
		if !getBool("quiet") {
			bar = progress.New(opts.Rounds)
			bar.Callback = func(msg string) {
				os.Stderr.WriteString("\033[2K\r" + msg)
			}
			bar.NotPrint = true
			bar.ShowPercent = false
			bar.ShowSpeed = false
			bar.SetMaxWidth(80).Start()
			opts.OnRound = func() { bar.Increment() }
		}
		l.Infof("running %d rounds of %d keys on %d workers", opts.Rounds, opts.Size, opts.Workers)
		report, err := runBench(opts)
		if bar != nil {
			bar.Finish()
			fmt.Fprint(os.Stderr, "\033[2K\r")
		}
		if err != nil {
			l.Critical(err)
			return err
		}
		printBenchReport(cmd.OutOrStdout(), opts, report)
		return nil
	},
}

type benchOptions struct {
	Size      int
	Rounds    int
	Workers   int
	Seed      int64
	Hibernate bool
	OnRound   func()
}

type benchRound struct {
	Insert     time.Duration
	Export     time.Duration
	Erase      time.Duration
	Height     int
	Hibernated int
	Checksum   uint64
	Err        error
}

type benchReport struct {
	Insert     time.Duration
	Export     time.Duration
	Erase      time.Duration
	Nodes      int
	MaxHeight  int
	Hibernated int
	Checksum   uint64
}

// benchmarkRound builds one tree from the seeded random keys and tears it down.
func benchmarkRound(size int, seed int64, hibernate bool) benchRound {
	var result benchRound
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]rbtree.Key, size)
	for i := range keys {
		keys[i] = rbtree.Key(rnd.Int31())
	}
	allocator := rbtree.NewAllocator()
	tree := rbtree.NewTree(allocator)
	defer tree.Destroy()

	start := time.Now()
	nodes := make([]rbtree.Node, 0, size)
	for _, key := range keys {
		node, err := tree.Insert(key)
		if err != nil {
			result.Err = err
			return result
		}
		nodes = append(nodes, node)
	}
	result.Insert = time.Since(start)
	result.Height = tree.Height()

	if hibernate {
		allocator.Hibernate()
		result.Hibernated = allocator.HibernatedSize()
		allocator.Boot()
	}

	start = time.Now()
	sorted := make([]rbtree.Key, tree.Len())
	if _, err := tree.ToArray(sorted); err != nil {
		result.Err = err
		return result
	}
	result.Export = time.Since(start)
	result.Checksum = checksum(sorted)

	// erasure moves keys between nodes, so the erased node is looked up by key each time
	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	start = time.Now()
	for _, key := range keys {
		if err := tree.Erase(tree.Find(key)); err != nil {
			result.Err = errors.Wrapf(err, "erase %d", key)
			return result
		}
	}
	result.Erase = time.Since(start)
	if tree.Len() != 0 {
		result.Err = errors.Errorf("%d nodes left after erasing everything", tree.Len())
	}
	return result
}

func runBench(opts benchOptions) (benchReport, error) {
	var report benchReport
	pool := tunny.NewFunc(opts.Workers, func(payload interface{}) interface{} {
		seed := payload.(int64)
		return benchmarkRound(opts.Size, seed, opts.Hibernate)
	})
	defer pool.Close()
	results := make(chan benchRound, opts.Rounds)
	for i := 0; i < opts.Rounds; i++ {
		go func(seed int64) {
			results <- pool.Process(seed).(benchRound)
		}(opts.Seed + int64(i))
	}
	var firstErr error
	for i := 0; i < opts.Rounds; i++ {
		round := <-results
		if opts.OnRound != nil {
			opts.OnRound()
		}
		if round.Err != nil {
			if firstErr == nil {
				firstErr = round.Err
			}
			continue
		}
		report.Insert += round.Insert
		report.Export += round.Export
		report.Erase += round.Erase
		report.Nodes += opts.Size
		report.Hibernated += round.Hibernated
		// rounds finish in any order
		report.Checksum ^= round.Checksum
		if round.Height > report.MaxHeight {
			report.MaxHeight = round.Height
		}
	}
	return report, firstErr
}

func printBenchReport(writer io.Writer, opts benchOptions, report benchReport) {
	perNode := func(d time.Duration) int64 {
		if report.Nodes == 0 {
			return 0
		}
		return d.Nanoseconds() / int64(report.Nodes)
	}
	fmt.Fprintln(writer, "rbtree:")
	fmt.Fprintf(writer, "  version: %d\n", rbtree.BinaryVersion)
	fmt.Fprintln(writer, "  hash:", rbtree.BinaryGitHash)
	fmt.Fprintln(writer, "bench:")
	fmt.Fprintln(writer, "  size:", opts.Size)
	fmt.Fprintln(writer, "  rounds:", opts.Rounds)
	fmt.Fprintln(writer, "  workers:", opts.Workers)
	fmt.Fprintln(writer, "  seed:", opts.Seed)
	fmt.Fprintln(writer, "  nodes:", report.Nodes)
	fmt.Fprintln(writer, "  max_height:", report.MaxHeight)
	fmt.Fprintln(writer, "  insert_ns_per_node:", perNode(report.Insert))
	fmt.Fprintln(writer, "  export_ns_per_node:", perNode(report.Export))
	fmt.Fprintln(writer, "  erase_ns_per_node:", perNode(report.Erase))
	if opts.Hibernate {
		fmt.Fprintln(writer, "  hibernated_bytes:", report.Hibernated)
	}
	fmt.Fprintln(writer, "  checksum:", report.Checksum)
}

func init() {
	flags := benchCmd.Flags()
	flags.Int("size", 100000, "Number of keys in each tree.")
	flags.Int("rounds", 16, "Number of trees to build.")
	flags.Int("workers", 0, "Number of concurrent workers; 0 means the number of CPUs.")
	flags.Int64("seed", 1, "Random generator seed of the first round.")
	flags.Bool("hibernate", false, "Compress and restore the node allocator of each tree before exporting it.")
	flags.Bool("quiet", !terminal.IsTerminal(int(os.Stdin.Fd())),
		"Do not print status updates to stderr.")
}
