package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kmerasm/internal/fragio"
	"github.com/katalvlaran/kmerasm/kmer"
	"github.com/katalvlaran/kmerasm/overlap"
)

var errSource = errors.New("exactly one of --file, --sequence or --fragment is required")

// Source selects where the fragment list comes from.
type Source struct {
	File      string   `short:"f" type:"existingfile" help:"FASTA or one-per-line fragment file"`
	Whole     bool     `help:"Treat --file as one sequence and split it into k-mers"`
	Sequence  string   `short:"s" help:"Sequence to split into k-mers"`
	K         int      `short:"k" default:"3" help:"k-mer length for --sequence and --whole"`
	Fragments []string `name:"fragment" help:"Fragment, repeatable"`
}

// fragments resolves the configured source into a fragment list.
func (s *Source) fragments() ([]string, error) {
	set := 0
	for _, ok := range []bool{s.File != "", s.Sequence != "", len(s.Fragments) > 0} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, errSource
	}

	switch {
	case s.Sequence != "":
		return kmer.Kmerize(s.Sequence, s.K)
	case s.File != "":
		rs, err := fragio.ReadFile(s.File)
		if err != nil {
			return nil, err
		}
		if s.Whole {
			return kmer.Kmerize(rs.Sequence(), s.K)
		}

		return rs.Fragments(), nil
	default:
		rs, err := fragio.Parse([]byte(strings.Join(s.Fragments, "\n")))
		if err != nil {
			return nil, fmt.Errorf("--fragment: %w", err)
		}

		return rs.Fragments(), nil
	}
}

// graph builds the overlap graph of the configured source.
func (s *Source) graph() (*overlap.Graph, error) {
	frags, err := s.fragments()
	if err != nil {
		return nil, err
	}

	return overlap.NewGraph(frags)
}
