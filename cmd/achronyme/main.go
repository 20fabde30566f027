// Command achronyme is a small local-development driver for the core
// engine: a one-shot expression evaluator (optionally echoing the parsed
// expression) and an interactive REPL, both going through the eval()
// slow path. It is not part of the engine's external ABI — it
// exists purely so a developer working on this repository can poke the
// engine from a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"achronyme/abi"
	"achronyme/config"
	"achronyme/parser"
	"achronyme/trace"
)

func main() {
	evalExpr := flag.String("eval", "", "evaluate a single expression and print the result")
	explain := flag.Bool("explain", false, "print the parsed expression (unparsed) before evaluating")
	limitsPath := flag.String("limits", "", "path to a YAML config.Limits document")
	traceEnabled := flag.Bool("trace", false, "enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "trace filter pattern (glob, comma-separated, e.g. 'eval.call,fastpath.fft*')")
	repl := flag.Bool("repl", false, "start an interactive read-eval-print loop")

	flag.Parse()

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	limits := config.Default()
	if *limitsPath != "" {
		loaded, err := config.Load(*limitsPath)
		if err != nil {
			log.Fatalf("achronyme: %v", err)
		}
		limits = loaded
	}

	engine := abi.NewEngine(limits)

	switch {
	case *evalExpr != "":
		runEval(engine, *evalExpr, *explain)
	case *repl:
		runRepl(engine, *explain)
	default:
		fmt.Fprintln(os.Stderr, "usage: achronyme -eval EXPR | -repl [-explain] [-trace] [-limits FILE]")
		os.Exit(2)
	}
}

func runEval(engine *abi.Engine, src string, explain bool) {
	if explain {
		printExplain(src)
	}
	value, errCode := engine.Eval(src)
	if errCode != 0 {
		fmt.Fprintf(os.Stderr, "error: %s: %s\n", errCode.String(), errCode.Message())
		os.Exit(1)
	}
	fmt.Println(value)
}

func runRepl(engine *abi.Engine, explain bool) {
	fmt.Fprintln(os.Stderr, "achronyme core repl — Ctrl-D to quit, \"reset\" clears the arena")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stderr)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "reset" {
			engine.Reset()
			continue
		}
		if explain {
			printExplain(line)
		}
		value, errCode := engine.Eval(line)
		if errCode != 0 {
			fmt.Printf("error: %s: %s\n", errCode.String(), errCode.Message())
			continue
		}
		fmt.Println(value)
	}
}

// printExplain parses src and prints its unparsed form, quoting exactly
// what the evaluator will see once the literal text has round-tripped
// through the parser — useful for spotting precedence surprises.
func printExplain(src string) {
	p := parser.NewParser(src)
	node, err := p.ParseProgram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "# %s\n", parser.Unparse(node))
}
