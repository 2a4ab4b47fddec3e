package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/qkolj/dpll-2wl"
)

type args struct {
	Path    string `arg:"positional,required" help:"path to a DIMACS CNF file"`
	Verbose bool   `arg:"-v,--verbose" help:"print the trail's diagnostic dump before the verdict"`
	Naive   bool   `arg:"-n,--naive" help:"use the legacy linear-scan solver instead of the watched-literal one"`
}

func (args) Description() string {
	return "dpll-2wl solves a Boolean satisfiability problem given in DIMACS CNF format."
}

func main() {
	log.SetFlags(0)

	var a args
	arg.MustParse(&a)

	f, err := os.Open(a.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var (
		solution *dpll2wl.Assignment
		numVars  int
		dbg      func() string
	)
	if a.Naive {
		s, err := dpll2wl.NewNaiveSolverFromDIMACS(f)
		if err != nil {
			log.Fatalln("error reading DIMACS input:", err)
		}
		numVars = s.NumVars()
		dbg = s.DebugString
		solution, err = s.Solve()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		s, err := dpll2wl.NewSolverFromDIMACS(f)
		if err != nil {
			log.Fatalln("error reading DIMACS input:", err)
		}
		numVars = s.NumVars()
		dbg = s.DebugString
		solution, err = s.Solve()
		if err != nil {
			log.Fatal(err)
		}
	}

	if a.Verbose {
		fmt.Fprintf(os.Stderr, "problem: %d variables\n", numVars)
		fmt.Fprintln(os.Stderr, dbg())
	}

	if solution == nil {
		fmt.Println("UNSAT")
		return
	}
	fmt.Println("SAT")
	fmt.Println(solution)
	if a.Verbose {
		fmt.Fprintf(os.Stderr, "model: %d variables\n", solution.NumVars())
	}
}
