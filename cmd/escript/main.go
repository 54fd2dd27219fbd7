package main

import (
	"flag"
	"fmt"
	"os"

	"escript/pkg/driver"
)

// sampleSource is the built-in program scanned when no input is given.
const sampleSource = `
function plus(a, b) {
  return a + b
}
`

func main() {
	exprFlag := flag.String("e", "", "Scan the given expression and exit")
	tokensFlag := flag.Bool("tokens", false, "Dump the token stream")
	astFlag := flag.Bool("ast", false, "Dump the program's statement list")

	flag.Parse()

	opts := driver.Options{ShowTokens: *tokensFlag, ShowAST: *astFlag}
	if !opts.ShowTokens && !opts.ShowAST {
		// With nothing else requested the token dump is the useful output.
		opts.ShowTokens = true
	}

	if *exprFlag != "" {
		if !driver.RunCode(*exprFlag, opts) {
			os.Exit(65) // Exit code 65: input data error
		}
		return
	}

	switch flag.NArg() {
	case 0:
		if !driver.RunCode(sampleSource, opts) {
			os.Exit(65)
		}
	case 1:
		if !driver.RunFile(flag.Arg(0), opts) {
			os.Exit(65)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: escript [script] or escript -e \"expression\"\n")
		os.Exit(64) // Exit code 64: command line usage error
	}
}
