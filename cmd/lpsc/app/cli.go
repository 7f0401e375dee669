package app

import (
	"github.com/spf13/cobra"
)

// Domain: CLI Application Structure
// This file wires the root Cobra command, its flags and subcommands

// options holds every flag the root command accepts.
type options struct {
	verbose       bool
	showVersion   bool
	initProgram   bool
	saveAsDefault bool
	setWorkspace  string
	noCache       bool

	debug       bool
	debugTokens bool
	debugAST    bool
	debugJSON   bool
	debugFull   bool
	debugInput  string
}

// App is the lpsc command-line application.
type App struct {
	version string
	commit  string
	date    string

	opts    options
	rootCmd *cobra.Command
}

// NewApp builds the root command with all flags and subcommands bound.
func NewApp(version, commit, date string) *App {
	a := &App{version: version, commit: commit, date: date}

	a.rootCmd = &cobra.Command{
		Use:   "lpsc [flags] <input.lps1> <output.c>",
		Short: "Compile LPS1 programs to C",
		Long: `lpsc is the compiler for the LPS1 toy language.

LPS1 programs are built from one-letter commands: '=' assigns, 'G' reads
an integer from standard input, '+ - * / %' combine two values into a
variable, 'P' prints, 'I' and 'W' guard a command with a comparison, and
'{ }' group commands. Variables are single lowercase letters, literals
are single digits.

Examples:
  lpsc program.lps1 program.c   # Compile program.lps1 into program.c
  lpsc --init                   # Create a starter LPS1 program
  lpsc --debug --debug-tokens   # Show lexer tokens
  lpsc --debug --debug-ast      # Show the parsed program tree

Built-in Commands:
  Use the 'cmd:' prefix for built-in commands:
  lpsc cmd:completion bash      # Generate shell completion
  lpsc cmd:cache stats          # Inspect the compile cache`,
		RunE:          a.run,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	a.bindFlags()
	a.rootCmd.AddCommand(a.completionCommand(), a.cacheCommand())

	return a
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) bindFlags() {
	f := a.rootCmd.Flags()

	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Narrate each compilation stage")
	f.BoolVar(&a.opts.showVersion, "version", false, "Print version and build details")
	f.BoolVar(&a.opts.initProgram, "init", false, "Create a starter LPS1 program")
	f.BoolVar(&a.opts.saveAsDefault, "save-as-default", false, "Remember the --init file name as the workspace default")
	f.StringVar(&a.opts.setWorkspace, "set-workspace", "", "Record a default LPS1 source file for this workspace")
	f.BoolVar(&a.opts.noCache, "no-cache", false, "Skip the compile cache and always recompile")

	f.BoolVar(&a.opts.debug, "debug", false, "Inspect the pipeline instead of compiling")
	f.BoolVar(&a.opts.debugTokens, "debug-tokens", false, "Print lexer tokens (with --debug)")
	f.BoolVar(&a.opts.debugAST, "debug-ast", false, "Print the parsed program tree (with --debug)")
	f.BoolVar(&a.opts.debugJSON, "debug-json", false, "Print the program tree as JSON (with --debug)")
	f.BoolVar(&a.opts.debugFull, "debug-full", false, "Print tokens, tree and parse status together (with --debug)")
	f.StringVar(&a.opts.debugInput, "debug-input", "", "Inspect a source string instead of a file (with --debug)")
}

// run dispatches on mode flags; plain invocations compile.
func (a *App) run(cmd *cobra.Command, args []string) error {
	switch {
	case a.opts.showVersion:
		ShowVersion(a.version, a.commit, a.date)
		return nil
	case a.opts.initProgram:
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return InitializeProgram(name, a.opts.saveAsDefault)
	case a.opts.setWorkspace != "":
		return SetWorkspaceDefault(a.opts.setWorkspace)
	case a.opts.debug:
		return HandleDebugMode(a.opts.debugInput, a.opts.debugFull, a.opts.debugTokens, a.opts.debugAST, a.opts.debugJSON, args)
	default:
		return RunCompile(args, a.opts.verbose, a.opts.noCache)
	}
}
