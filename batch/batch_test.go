package batch

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobFile = `
jobs:
  - name: and
    expr: "a & b"
    expect: "0001"
  - name: and-from-table
    table: "0001"
    names: [a, b]
    parens: true
  - name: implication
    expr: "a -> b"
    verify: true
`

func TestParse(t *testing.T) {
	t.Run("valid jobs", func(t *testing.T) {
		jobs, err := Parse([]byte(jobFile))
		require.NoError(t, err)
		assert.Len(t, jobs, 3)
		assert.Equal(t, "and", jobs[0].Name)
		assert.False(t, jobs[0].IsSynthesis())
		assert.True(t, jobs[1].IsSynthesis())
		assert.True(t, jobs[1].Parens)
		assert.True(t, jobs[2].Verify)
		assert.Equal(t, []string{"a", "b"}, jobs[1].Names)
	})

	t.Run("no jobs", func(t *testing.T) {
		_, err := Parse([]byte("jobs: []"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no jobs")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Parse([]byte("jobs:\n  - expr: a"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := Parse([]byte("jobs:\n  - name: f\n    expr: a\n  - name: f\n    expr: b"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("expr and table", func(t *testing.T) {
		_, err := Parse([]byte("jobs:\n  - name: f\n    expr: a\n    table: \"01\""))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "both")
	})

	t.Run("neither expr nor table", func(t *testing.T) {
		_, err := Parse([]byte("jobs:\n  - name: f"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "neither")
	})

	t.Run("bad table", func(t *testing.T) {
		_, err := Parse([]byte("jobs:\n  - name: f\n    table: \"01x1\"\n    names: [a, b]"))
		assert.Error(t, err)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := Parse([]byte("jobs: [unclosed"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse job YAML")
	})
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "boolfn-batch")
		require.NoError(t, err)
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "jobs.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte(jobFile), 0644))
		jobs, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, jobs, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(os.TempDir(), "boolfn-does-not-exist.yaml"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(unwrapAll(err)))
	})
}

func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.batch")
	defer teardown()
	//
	jobs, err := Parse([]byte(jobFile))
	require.NoError(t, err)
	results := Run(jobs)
	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err, "job %s", r.Job)
		assert.False(t, r.Failed())
		assert.NotEmpty(t, r.Fingerprint)
	}
	assert.Equal(t, "0001", results[0].Table.String())
	assert.Equal(t, "a ∧ b", results[0].DNF.String())
	assert.Equal(t, "(a ∧ b)", results[1].DNF.String())
	assert.Equal(t, "1101", results[2].Table.String())
	assert.Equal(t, results[0].Fingerprint, results[1].Fingerprint,
		"equal functions should have equal fingerprints")
	assert.NotEqual(t, results[0].Fingerprint, results[2].Fingerprint)
}

func TestRunFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.batch")
	defer teardown()
	//
	results := Run([]Job{
		{Name: "syntax", Expr: "a & & b"},
		{Name: "lexical", Expr: "a $ b"},
		{Name: "shape", Table: "011", Names: []string{"a", "b"}},
		{Name: "expectation", Expr: "a | b", Expect: "0001"},
		{Name: "ok", Expr: "!a"},
		{Name: "contradiction", Expr: "a & !a", Verify: true},
	})
	require.Len(t, results, 6)
	assert.Equal(t, boolfn.SyntaxError, boolfn.KindOf(results[0].Err))
	assert.Equal(t, boolfn.IllegalInput, boolfn.ReasonOf(results[1].Err))
	assert.Equal(t, boolfn.ShapeError, boolfn.KindOf(results[2].Err))
	assert.True(t, results[3].Failed())
	assert.Contains(t, results[3].Err.Error(), "expected table 0001")
	assert.NoError(t, results[4].Err)
	assert.Equal(t, "10", results[4].Table.String())
	assert.NoError(t, results[5].Err)
	assert.Empty(t, results[5].DNF)
}

func TestFingerprint(t *testing.T) {
	f1, err := Fingerprint([]string{"a", "b"}, []bool{false, true, true, false})
	require.NoError(t, err)
	f2, err := Fingerprint([]string{"b", "a"}, []bool{false, true, true, false})
	require.NoError(t, err)
	assert.NotEqual(t, f1, f2, "variable order is part of the function")
	f3, err := Fingerprint(nil, []bool{true})
	require.NoError(t, err)
	f4, err := Fingerprint([]string{}, []bool{true})
	require.NoError(t, err)
	assert.Equal(t, f3, f4)
}
