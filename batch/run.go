package batch

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/bdd"
	"github.com/npillmayer/boolfn/dnf"
	"github.com/npillmayer/boolfn/scanner"
	"github.com/npillmayer/boolfn/table"
)

// Result is the outcome of a job. If Err is set, the other fields except Job
// are undefined.
type Result struct {
	Job         string
	Names       []string
	Table       table.Table
	DNF         boolfn.Tokens
	Fingerprint string
	Err         error
}

// Failed is true if the job produced an error or did not meet its expectation.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Run executes jobs in order. A failing job does not stop the run.
func Run(jobs []Job) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		r := runJob(job)
		if r.Err != nil {
			tracer().Infof("job %q failed: %v", job.Name, r.Err)
		} else {
			tracer().Debugf("job %q: %s", job.Name, r.Table)
		}
		results = append(results, r)
	}
	return results
}

func runJob(job Job) Result {
	r := Result{Job: job.Name}
	var tokens boolfn.Tokens
	var err error
	if job.IsSynthesis() {
		r.Names = job.Names
		r.Table = table.FromString(job.Table)
	} else {
		if tokens, _, err = scanner.Tokenize(job.Expr); err != nil {
			r.Err = err
			return r
		}
		if r.Table, err = table.Parse(tokens); err != nil {
			r.Err = err
			return r
		}
		r.Names = boolfn.VariableNames(tokens)
	}
	if r.DNF, err = dnf.Synthesize(r.Table, r.Names, job.Parens); err != nil {
		r.Err = err
		return r
	}
	if job.Expect != "" && !r.Table.Equal(table.FromString(job.Expect)) {
		r.Err = fmt.Errorf("job %q: expected table %s, got %s", job.Name,
			table.FromString(job.Expect), r.Table)
		return r
	}
	if job.Verify && tokens != nil {
		if err = verify(tokens, r.DNF); err != nil {
			r.Err = fmt.Errorf("job %q: %w", job.Name, err)
			return r
		}
	}
	if r.Fingerprint, err = Fingerprint(r.Names, r.Table); err != nil {
		r.Err = err
	}
	return r
}

// verify checks that d denotes the same function as ts.
func verify(ts, d boolfn.Tokens) error {
	if len(d) == 0 {
		d = boolfn.Tokens{boolfn.ZERO}
	}
	eq, err := bdd.Equivalent(ts, d)
	if err != nil {
		return err
	}
	if !eq {
		return fmt.Errorf("DNF %s is not equivalent to %s", d, ts)
	}
	tracer().Debugf("verified %s", d)
	return nil
}

// fingerprinted is the hashed form of a function.
type fingerprinted struct {
	Names []string
	Table string
}

// Fingerprint hashes a function given by variable names and truth table.
func Fingerprint(names []string, t table.Table) (string, error) {
	if names == nil {
		names = []string{}
	}
	return structhash.Hash(fingerprinted{Names: names, Table: t.String()}, 1)
}
