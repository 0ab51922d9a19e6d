package batch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes a single function. Either Expr or Table is set.
type Job struct {
	Name   string   `yaml:"name"`
	Expr   string   `yaml:"expr,omitempty"`
	Table  string   `yaml:"table,omitempty"`
	Names  []string `yaml:"names,omitempty"`
	Parens bool     `yaml:"parens,omitempty"`
	// Expect optionally holds the expected truth table, as a 0/1 string
	Expect string `yaml:"expect,omitempty"`
	// Verify checks the DNF against the expression with a BDD
	Verify bool `yaml:"verify,omitempty"`
}

// IsSynthesis is true for jobs which start from a truth table.
func (j Job) IsSynthesis() bool {
	return j.Table != ""
}

// Load reads and validates a job file.
func Load(path string) ([]Job, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML job data.
func Parse(data []byte) ([]Job, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse job YAML: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return f.Jobs, nil
}

func validate(f *File) error {
	if len(f.Jobs) == 0 {
		return fmt.Errorf("job file has no jobs")
	}
	seen := make(map[string]bool, len(f.Jobs))
	for i, j := range f.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if seen[j.Name] {
			return fmt.Errorf("duplicate job name %q", j.Name)
		}
		seen[j.Name] = true
		switch {
		case j.Expr == "" && j.Table == "":
			return fmt.Errorf("job %q has neither expr nor table", j.Name)
		case j.Expr != "" && j.Table != "":
			return fmt.Errorf("job %q has both expr and table", j.Name)
		case j.Expr != "" && len(j.Names) > 0:
			return fmt.Errorf("job %q: names are taken from the expression", j.Name)
		case j.Verify && j.Expr == "":
			return fmt.Errorf("job %q: verify needs an expression", j.Name)
		}
		if !isBits(j.Table) || !isBits(j.Expect) {
			return fmt.Errorf("job %q: tables must consist of 0 and 1", j.Name)
		}
	}
	return nil
}

// isBits checks for a 0/1 string, blanks allowed.
func isBits(s string) bool {
	for _, c := range s {
		if c != '0' && c != '1' && c != ' ' {
			return false
		}
	}
	return true
}
