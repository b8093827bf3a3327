package model

import (
	"github.com/sabhiram/go-gitignore"
)

// Filter decides which directory entries are candidates for the register.
type Filter struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`

	incMatcher *ignore.GitIgnore
	excMatcher *ignore.GitIgnore
}

// DefaultFilter excludes OS junk files that routinely contaminate evidence
// directories copied from desktop machines.
func DefaultFilter() *Filter {
	return &Filter{
		Exclude: []string{
			".*",
			".DS_Store",
			"._*",
			"Thumbs.db",
			"ehthumbs.db",
			"Desktop.ini",
			"desktop.ini",
			"~$*",
		},
	}
}

func (flt *Filter) ValidPath(pathToTest string) bool {

	if flt.incMatcher == nil {
		incMatcher, err := ignore.CompileIgnoreLines(flt.Include...)
		if err != nil {
			return true
		}
		flt.incMatcher = incMatcher
	}
	if flt.excMatcher == nil {
		excMatcher, err := ignore.CompileIgnoreLines(flt.Exclude...)
		if err != nil {
			return true
		}
		flt.excMatcher = excMatcher
	}

	//includes always override excludes
	if flt.incMatcher.MatchesPath(pathToTest) {
		return true
	}

	if flt.excMatcher.MatchesPath(pathToTest) {
		return false
	}

	//by default, every file is a candidate
	return true
}
