//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/tedit/pkg/commander"
	"github.com/timburks/tedit/pkg/config"
	"github.com/timburks/tedit/pkg/editor"
	"github.com/timburks/tedit/pkg/fsys"
	"github.com/timburks/tedit/pkg/screen"
)

// set with -ldflags at build time
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes tedit with the given args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "tedit: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var script, configPath string
	root := &cobra.Command{
		Use:           "tedit [filename]",
		Short:         "tedit is a small text editor that saves and loads one file at a time",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := fsys.OSFS{}
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			cfg, err := config.Load(files, configPath)
			if err != nil {
				return err
			}

			// The editor manages all text manipulation.
			e := editor.NewEditor(files)

			// The commander converts user inputs into commands for the editor.
			c := commander.NewCommander(e)

			if script != "" {
				return runScript(c, args, script, stdout, stderr)
			}
			return runInteractive(c, args, cfg)
		},
	}
	root.Flags().StringVar(&script, "eval", "", "evaluate a lisp script instead of opening the editor")
	root.Flags().StringVar(&configPath, "config", "", "configuration file (default $HOME/.tedit.toml)")
	root.AddCommand(newVersionCmd(stdout))
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tedit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "tedit %s\n", version)
		},
	}
}

// open the file named on the command line as if it were typed and loaded
func loadArgument(c *commander.Commander, args []string) error {
	if len(args) == 0 {
		return nil
	}
	c.GetControl().SetFilename(args[0])
	return c.Load()
}

// Run a script against the editor and exit.
func runScript(c *commander.Commander, args []string, script string, stdout, stderr io.Writer) error {
	log.SetOutput(stderr)
	c.SetBatch(stderr)
	if err := loadArgument(c, args); err != nil {
		return err
	}
	result, ok, err := c.ParseEvalString(script)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(stdout, result)
	}
	return nil
}

func runInteractive(c *commander.Commander, args []string, cfg config.Config) error {
	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()

	if err := loadArgument(c, args); err != nil {
		log.Printf("%+v", err)
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg.Title)
	if err != nil {
		return err
	}
	defer s.Close()

	// Run the main event loop. Errors stop at this boundary and are logged.
	for c.IsRunning() {
		s.Render(c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Printf("%+v", err)
		}
	}
	return nil
}
