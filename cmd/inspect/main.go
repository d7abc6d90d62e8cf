// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"sort"

	"github.com/cpmech/gosl/utl"
	"github.com/joho/godotenv"

	"github.com/rconan/fem/modal"
)

func main() {

	utl.Tsilent = false
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
		}
	}()

	utl.PfWhite("\nfem-inspect -- discrete modal state-space model inspector\n\n")

	_ = godotenv.Load() // optional .env with FEM_REPO / STATIC_FEM_REPO; ignored if absent

	repo := flag.String("repo", "", "path to a FEM archive or directory (overrides FEM_REPO)")
	hz := flag.Float64("max-hz", 0, "if > 0, set the builder's eigenfrequency cap; the Hankel singular values are computed for every mode regardless")
	hsv := flag.Float64("hsv", 0, "if > 0, request the Hankel singular values; this tool selects no groups, so only a notice that they are unavailable is printed")
	flag.Parse()

	var fem *modal.FEM
	var err error
	if *repo != "" {
		fem, err = modal.FromArchive(*repo)
	} else {
		fem, err = modal.FromEnv()
	}
	if err != nil {
		utl.Panic("%v", err)
	}

	utl.Pf("%s", fem.String())

	if *hz > 0 || *hsv > 0 {
		builder := modal.NewBuilder(fem)
		if *hz > 0 {
			builder.MaxEigenFrequency(*hz)
		}
		printHsvHistogram(builder, *hsv)
	}
}

func printHsvHistogram(builder *modal.Builder, threshold float64) {
	// Hankel singular values require at least one input and output group
	// selected. This tool never selects a group, so HankelSingularValues
	// returns an error here and only the notice below is printed.
	hsv, err := builder.HankelSingularValues()
	if err != nil {
		utl.Pfyel("(no groups selected: Hankel singular values unavailable)\n")
		return
	}
	idx := make([]int, len(hsv))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return hsv[idx[i]] > hsv[idx[j]] })

	utl.PfWhite("\nHankel singular values (descending):\n")
	for rank, k := range idx {
		marker := ""
		if threshold > 0 && hsv[k] <= threshold {
			marker = "  (truncated)"
		}
		utl.Pf("  #%-4d mode %-4d hsv=%.6e%s\n", rank, k, hsv[k], marker)
	}
}
