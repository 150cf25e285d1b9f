// Command vecctl evaluates a single vector or line operation and prints the
// result.
//
//	vecctl -op cross -a 1,0,0 -b 0,1,0
//	vecctl -op segment -a 0,0,0 -b 0,0,5
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var (
	op  = flag.String("op", "", "Operation: "+opNames())
	a   = flag.String("a", "", "First vector as x,y,z")
	b   = flag.String("b", "", "Second vector as x,y,z")
	k   = flag.Float64("k", 1, "Scalar for mul/div")
	idx = flag.Int("i", 0, "Component index for at")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("vecctl: ")

	if *op == "" {
		flag.Usage()
		os.Exit(2)
	}

	args := Args{Scalar: *k, Index: *idx}
	var err error
	if args.A, err = ParseVec3(*a); err != nil {
		log.Fatalf("-a: %v", err)
	}
	if args.B, err = ParseVec3(*b); err != nil {
		log.Fatalf("-b: %v", err)
	}

	out, err := Eval(*op, args)
	if err != nil {
		log.Fatalf("%s: %v", *op, err)
	}
	fmt.Println(out)
}
