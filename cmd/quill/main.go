package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quillgen/quill/internal/cli"
	"github.com/quillgen/quill/internal/utils"
)

func main() {
	var (
		outFlag     = flag.String("out", ".", "Directory to write generated files into")
		checkFlag   = flag.Bool("check", false, "Verify generated files are up to date without writing")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <schema-files...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Quill Schema Compiler\n")
		fmt.Fprintf(os.Stderr, "Compiles declarative TOML schemas into Rust source files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  schema-files       One or more .toml schema files to compile\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s types.toml                         # Compile one schema into ./\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --out src/generated types.toml    # Choose the output directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --check types.toml api.toml       # CI guard: fail when output is stale\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose types.toml              # Detailed progress output\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one schema file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("Quill Schema Compiler")

	generator := cli.NewGenerator(diagnostics, *outFlag, *checkFlag)
	if err := generator.Run(args); err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}
}
