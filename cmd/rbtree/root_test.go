package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyraxred/rbtree"
	"github.com/cyraxred/rbtree/internal/core"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeys(t *testing.T) {
	keys, err := readKeys(strings.NewReader(" 5 -3\n\t2147483647 -2147483648 0\n"))
	assert.Nil(t, err)
	assert.Equal(t, []rbtree.Key{5, -3, 2147483647, -2147483648, 0}, keys)
	keys, err = readKeys(strings.NewReader(""))
	assert.Nil(t, err)
	assert.Len(t, keys, 0)
	_, err = readKeys(strings.NewReader("1 2 three"))
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "key #3")
	_, err = readKeys(strings.NewReader("2147483648"))
	assert.NotNil(t, err)
}

func TestLoadKeys(t *testing.T) {
	tempdir, err := ioutil.TempDir("", "rbtree-")
	require.Nil(t, err)
	defer os.RemoveAll(tempdir)
	path := filepath.Join(tempdir, "keys.txt")
	require.Nil(t, ioutil.WriteFile(path, []byte("3 1 2"), 0666))
	keys, name, err := loadKeys([]string{path})
	assert.Nil(t, err)
	assert.Equal(t, path, name)
	assert.Equal(t, []rbtree.Key{3, 1, 2}, keys)
	_, _, err = loadKeys([]string{filepath.Join(tempdir, "missing")})
	assert.NotNil(t, err)
}

func TestChecksum(t *testing.T) {
	a := checksum([]rbtree.Key{1, 2, 3})
	assert.Equal(t, a, checksum([]rbtree.Key{1, 2, 3}))
	assert.NotEqual(t, a, checksum([]rbtree.Key{3, 2, 1}))
	assert.NotEqual(t, a, checksum([]rbtree.Key{1, 2}))
}

func TestSortKeys(t *testing.T) {
	sorted, err := sortKeys([]rbtree.Key{5, -1, 5, 3, 0})
	assert.Nil(t, err)
	assert.Equal(t, []rbtree.Key{-1, 0, 3, 5, 5}, sorted)
	sorted, err = sortKeys(nil)
	assert.Nil(t, err)
	assert.Len(t, sorted, 0)
}

func TestPrintSorted(t *testing.T) {
	var buf bytes.Buffer
	printSorted(&buf, "keys.txt", []rbtree.Key{1, 2, 30})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "sort:\n  source: \"keys.txt\"\n  count: 3\n  min: 1\n  max: 30\n"))
	assert.True(t, strings.HasSuffix(out, "  keys: [ 1,  2, 30]\n"))
	buf.Reset()
	printSorted(&buf, "<stdin>", nil)
	assert.NotContains(t, buf.String(), "min:")
	assert.Contains(t, buf.String(), "  keys: []\n")
}

func TestDumpTreeText(t *testing.T) {
	tree, err := buildTree([]rbtree.Key{10, 20, 30})
	require.Nil(t, err)
	defer tree.Destroy()
	var buf bytes.Buffer
	assert.Nil(t, dumpTree(&buf, tree, "text"))
	assert.Equal(t, "20 BLACK\n  10 RED\n  30 RED\n", buf.String())
}

func TestDumpTreeDot(t *testing.T) {
	tree, err := buildTree([]rbtree.Key{1})
	require.Nil(t, err)
	defer tree.Destroy()
	var buf bytes.Buffer
	assert.Nil(t, dumpTree(&buf, tree, "dot"))
	assert.True(t, strings.HasPrefix(buf.String(), "digraph RBTree {\n"))
	assert.Contains(t, buf.String(), "\"#1 1\" [fillcolor=black]")
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.NotNil(t, dumpTree(&buf, tree, "svg"))
}

func TestRunCheck(t *testing.T) {
	report, err := runCheck(3000, 50, 7)
	assert.Nil(t, err)
	assert.True(t, report.Inserted+report.Erased <= 3000)
	assert.True(t, report.Inserted > report.Erased)
	assert.True(t, report.Erased > 0)
	assert.Equal(t, report.Inserted-report.Erased, report.FinalSize)
	assert.True(t, report.MaxHeight > 0)
	same, err := runCheck(3000, 50, 7)
	assert.Nil(t, err)
	assert.Equal(t, report, same)
	report, err = runCheck(0, 10, 1)
	assert.Nil(t, err)
	assert.Equal(t, checkReport{}, report)
}

func TestBenchmarkRound(t *testing.T) {
	round := benchmarkRound(1000, 3, true)
	assert.Nil(t, round.Err)
	assert.True(t, round.Hibernated > 0)
	assert.True(t, round.Height >= 10)
	assert.True(t, round.Height <= 20)
	again := benchmarkRound(1000, 3, false)
	assert.Nil(t, again.Err)
	assert.Equal(t, round.Checksum, again.Checksum)
	assert.Equal(t, 0, again.Hibernated)
}

func TestRunBench(t *testing.T) {
	rounds := 0
	report, err := runBench(benchOptions{
		Size: 500, Rounds: 6, Workers: 3, Seed: 10, Hibernate: true,
		OnRound: func() { rounds++ },
	})
	assert.Nil(t, err)
	assert.Equal(t, 6, rounds)
	assert.Equal(t, 3000, report.Nodes)
	var expected uint64
	for i := 0; i < 6; i++ {
		expected ^= benchmarkRound(500, 10+int64(i), false).Checksum
	}
	assert.Equal(t, expected, report.Checksum)
	var buf bytes.Buffer
	printBenchReport(&buf, benchOptions{Size: 500, Rounds: 6, Workers: 3, Seed: 10, Hibernate: true}, report)
	assert.Contains(t, buf.String(), "  nodes: 3000\n")
	assert.Contains(t, buf.String(), "  hibernated_bytes: ")
}

func TestNewLogger(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("json-log", false, "")
	flags.Bool("verbose", false, "")
	l := newLogger(flags).(cliLogger)
	assert.False(t, l.verbose)
	assert.IsType(t, &core.DefaultLogger{}, l.Logger)
	assert.Nil(t, flags.Parse([]string{"--json-log", "--verbose"}))
	l = newLogger(flags).(cliLogger)
	assert.True(t, l.verbose)
	assert.IsType(t, &core.LogrusLogger{}, l.Logger)
}

func TestErrorsCause(t *testing.T) {
	tree := rbtree.New()
	tree.Allocator().MaxNodes = 1
	_, err := tree.Insert(1)
	assert.Nil(t, err)
	_, err = tree.Insert(2)
	assert.Equal(t, rbtree.ErrOutOfMemory, errors.Cause(err))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOutput(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "Version: 1\nGit:     <unknown>\n", buf.String())
}
