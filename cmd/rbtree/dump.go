package main

import (
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/cyraxred/rbtree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// dumpCmd renders the tree built from the integers
var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the tree built from whitespace separated integers.",
	Long: `Reads int32 numbers from the file or from stdin, inserts them into a tree in the same
order and prints the resulting tree either as a Graphviz digraph or as indented text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger(cmd.Flags())
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			panic(err)
		}
		keys, name, err := loadKeys(args)
		if err != nil {
			l.Error(err)
			return err
		}
		l.Infof("read %d keys from %s", len(keys), name)
		tree, err := buildTree(keys)
		if err != nil {
			l.Error(err)
			return err
		}
		defer tree.Destroy()
		if err = dumpTree(cmd.OutOrStdout(), tree, format); err != nil {
			l.Error(err)
		}
		return err
	},
}

type dumpLine struct {
	Depth int
	Key   rbtree.Key
	Color string
}

const textDumpTemplate = `{{range .}}{{printf "%d %s" .Key (upper .Color) | indent (mul .Depth 2 | int)}}
{{end}}`

func dumpTree(writer io.Writer, tree *rbtree.Tree, format string) error {
	switch format {
	case "dot":
		_, err := io.WriteString(writer, tree.Serialize()+"\n")
		return err
	case "text":
		var lines []dumpLine
		tree.Walk(func(depth int, n rbtree.Node) {
			lines = append(lines, dumpLine{Depth: depth, Key: n.Key(), Color: n.Color().String()})
		})
		t := template.New("dump").Funcs(sprig.TxtFuncMap())
		template.Must(t.Parse(textDumpTemplate))
		return t.Execute(writer, lines)
	default:
		return errors.Errorf("unsupported dump format: %s", format)
	}
}

func init() {
	dumpCmd.Flags().String("format", "dot", "Output format: \"dot\" or \"text\".")
}
