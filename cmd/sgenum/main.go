// The sgenum command enumerates a finitely generated transformation
// semigroup, and optionally runs Todd-Coxeter coset enumeration over a
// congruence on it, printing a report of both. Its flag-based shape
// mirrors cmd/godoctor/main.go: parse flags, do the work, print a plain
// report to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mtorpey/libsemigroups/congruence"
	"github.com/mtorpey/libsemigroups/element"
	"github.com/mtorpey/libsemigroups/report"
	"github.com/mtorpey/libsemigroups/semigroup"
)

var (
	gensFlag      = flag.String("gens", "", "semicolon-separated transformation generators, each a comma-separated image list, e.g. \"0,1,0;0,1,2\"")
	relationsFlag = flag.String("relations", "", "comma-separated word=word relations for a standalone congruence, e.g. \"000=0,01=10\" (digits name generator letters); ignored if -gens is given")
	extraFlag     = flag.String("extra", "", "comma-separated word=word extra relations defining the congruence")
	typeFlag      = flag.String("type", "twosided", "congruence type: left, right, or twosided")
	nrGensFlag    = flag.Int("nrgens", 0, "number of generators for a standalone -relations congruence (required if -gens is not given)")
	prefillFlag   = flag.Bool("prefill", false, "seed the congruence's coset table from the semigroup's Cayley graph instead of tracing relations (-gens only)")
	threadsFlag   = flag.Int("threads", 1, "threads to use when counting idempotents")
	batchFlag     = flag.Int("batch", 8192, "enumeration batch size")
	verboseFlag   = flag.Bool("v", false, "print progress messages as enumeration runs")
)

func main() {
	flag.Parse()

	ctype, err := congruence.ParseCongType(*typeFlag)
	if err != nil {
		fail(err)
	}

	var reporter report.Reporter = report.Nop
	if *verboseFlag {
		reporter = report.NewStdReporter(log.New(os.Stderr, "", 0))
	}

	if *gensFlag != "" {
		runSemigroup(ctype, reporter)
		return
	}

	if *nrGensFlag <= 0 {
		fail(fmt.Errorf("need either -gens or -nrgens with -relations"))
	}
	runStandaloneCongruence(ctype, reporter)
}

func runSemigroup(ctype congruence.CongType, reporter report.Reporter) {
	gens, err := parseGenerators(*gensFlag)
	if err != nil {
		fail(err)
	}

	s, err := semigroup.New(gens)
	if err != nil {
		fail(err)
	}
	s.SetReporter(reporter)
	s.SetBatchSize(*batchFlag)

	fmt.Printf("size: %d\n", s.Size())
	fmt.Printf("nr_gens: %d\n", s.NrGens())
	fmt.Printf("nr_rules: %d\n", s.NrRules())
	fmt.Printf("nr_idempotents: %d\n", s.NrIdempotents(*threadsFlag))

	dups := s.DuplicateGens()
	if len(dups) == 0 {
		fmt.Println("duplicate_gens: none")
	} else {
		var parts []string
		for _, d := range dups {
			parts = append(parts, fmt.Sprintf("%d=%d", d.I, d.J))
		}
		fmt.Printf("duplicate_gens: %s\n", strings.Join(parts, ", "))
	}

	extra, err := parseRelations(*extraFlag)
	if err != nil {
		fail(err)
	}
	if len(extra) == 0 {
		return
	}

	table := congruence.NewWithSemigroup(ctype, s, extra, *prefillFlag)
	table.SetReporter(reporter)
	printCongruenceReport(table)
}

func runStandaloneCongruence(ctype congruence.CongType, reporter report.Reporter) {
	relations, err := parseRelations(*relationsFlag)
	if err != nil {
		fail(err)
	}
	extra, err := parseRelations(*extraFlag)
	if err != nil {
		fail(err)
	}

	table := congruence.New(ctype, *nrGensFlag, relations, extra)
	table.SetReporter(reporter)
	printCongruenceReport(table)
}

func printCongruenceReport(table *congruence.CosetTable) {
	ctx := context.Background()
	n, err := table.NrClasses(ctx)
	if err != nil {
		fail(err)
	}
	fmt.Printf("nr_classes: %d\n", n)

	if err := table.Compress(ctx); err != nil {
		fail(err)
	}
	t := table.Table()
	fmt.Printf("coset_table (%d cosets x %d generators):\n", t.Rows(), t.Cols())
	for r := 0; r < t.Rows(); r++ {
		row := t.Row(r)
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Printf("  %d: %s\n", r, strings.Join(parts, " "))
	}
}

func parseGenerators(s string) ([]element.Element, error) {
	parts := strings.Split(s, ";")
	gens := make([]element.Element, 0, len(parts))
	for _, p := range parts {
		images, err := parseInts(p)
		if err != nil {
			return nil, fmt.Errorf("invalid generator %q: %w", p, err)
		}
		gens = append(gens, element.NewTransformation(images))
	}
	return gens, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func parseWord(s string) ([]int, error) {
	word := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid generator letter %q in word %q", r, s)
		}
		word = append(word, int(r-'0'))
	}
	if len(word) == 0 {
		return nil, fmt.Errorf("empty word in relation %q", s)
	}
	return word, nil
}

func parseRelations(s string) ([]congruence.Relation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []congruence.Relation
	for _, clause := range strings.Split(s, ",") {
		sides := strings.SplitN(clause, "=", 2)
		if len(sides) != 2 {
			return nil, fmt.Errorf("relation %q must have the form word=word", clause)
		}
		lhs, err := parseWord(strings.TrimSpace(sides[0]))
		if err != nil {
			return nil, err
		}
		rhs, err := parseWord(strings.TrimSpace(sides[1]))
		if err != nil {
			return nil, err
		}
		out = append(out, congruence.Relation{Lhs: lhs, Rhs: rhs})
	}
	return out, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
