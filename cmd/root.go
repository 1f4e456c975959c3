// Package cmd is for command line interactions with the gfa application
package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

var idRepresentation string
var keepTags bool
var gfa1Input bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gfa",
	Short: `Parse, validate and re-serialize Graphical Fragment Assembly files.
Both the GFA2 and the older GFA1 record sets are supported`,
	Version: "0.1.0",
}

func init() {
	// flags shared by every subcommand
	RootCmd.PersistentFlags().StringVar(&idRepresentation, "ids", "text", "identifier representation: text or numeric")
	RootCmd.PersistentFlags().BoolVar(&keepTags, "tags", true, "keep the optional tags trailing each record")
	RootCmd.PersistentFlags().BoolVar(&gfa1Input, "gfa1", false, "treat the input as GFA1 instead of GFA2")

	// Bind the parameters to viper
	viper.BindPFlag("ids", RootCmd.PersistentFlags().Lookup("ids"))
	viper.BindPFlag("tags", RootCmd.PersistentFlags().Lookup("tags"))
	viper.BindPFlag("gfa1", RootCmd.PersistentFlags().Lookup("gfa1"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// readInput reads a whole GFA file into memory for the core parser.
// Only .gfa and .gfa2 files are accepted.
func readInput(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gfa", ".gfa2":
	default:
		return "", fmt.Errorf("unrecognized file extension on %s: want .gfa or .gfa2", path)
	}

	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %v", err)
	}

	return string(dat), nil
}
