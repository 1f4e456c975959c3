package cmd

import (
	"fmt"

	"github.com/jjtimmons/gfa/config"
	"github.com/jjtimmons/gfa/internal/gfa"
	"github.com/spf13/cobra"
)

var statsIn string

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count the records of each kind in a GFA file",
	Long: `Count the records of each kind in a GFA file

"gfa stats" parses the whole file and prints how many records of each
kind it holds, in the order they are serialized. A malformed line
anywhere in the file fails the command with that line's number.`,
	Run: runStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsIn, "in", "i", "", "path to the input GFA file")
	statsCmd.MarkFlagRequired("in")
}

func runStats(cmd *cobra.Command, args []string) {
	c := config.New()

	text, err := readInput(statsIn)
	if err != nil {
		stderr.Fatal(err)
	}

	// counts are representation independent, parse as text
	if c.GFA1 {
		doc, err := gfa.NewTextParserV1(c.Tags).Parse(text)
		if err != nil {
			stderr.Fatal(err)
		}

		fmt.Printf("headers\t%d\n", len(doc.Headers))
		fmt.Printf("segments\t%d\n", len(doc.Segments))
		fmt.Printf("links\t%d\n", len(doc.Links))
		fmt.Printf("containments\t%d\n", len(doc.Containments))
		fmt.Printf("paths\t%d\n", len(doc.Paths))
		return
	}

	doc, err := gfa.NewTextParser(c.Tags).Parse(text)
	if err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("headers\t%d\n", len(doc.Headers))
	fmt.Printf("segments\t%d\n", len(doc.Segments))
	fmt.Printf("fragments\t%d\n", len(doc.Fragments))
	fmt.Printf("edges\t%d\n", len(doc.Edges))
	fmt.Printf("gaps\t%d\n", len(doc.Gaps))
	fmt.Printf("ordered groups\t%d\n", len(doc.GroupsO))
	fmt.Printf("unordered groups\t%d\n", len(doc.GroupsU))
}
