package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/boolfn/batch"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users may enter boolean expressions
// or truth tables. If an expression is given as program arguments, it is
// evaluated and the program exits. With flag -batch, a YAML job file is run
// instead.
//
// Exit codes: 1 = a batch job failed, 2 = an expression given as argument could
// not be evaluated, 3 = set-up error.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	jobfile := flag.String("batch", "", "YAML job file to run non-interactively")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if *jobfile != "" {
		os.Exit(runBatch(*jobfile))
	}
	intp := &Intp{}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("boolrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to the boolean function REPL")
	tracer().Infof("Quit with <ctrl>D or :quit")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// runBatch runs a job file and prints one line per job. It returns the exit code.
func runBatch(path string) int {
	jobs, err := batch.Load(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 3
	}
	code := 0
	data := pterm.TableData{{"job", "table", "dnf", "fingerprint"}}
	for _, r := range batch.Run(jobs) {
		if r.Failed() {
			pterm.Error.Printf("%s: %v\n", r.Job, r.Err)
			code = 1
			continue
		}
		data = append(data, []string{r.Job, r.Table.String(), dnfString(r.DNF), r.Fingerprint})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return code
}
