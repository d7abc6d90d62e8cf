// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"archive/zip"
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	gslio "github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// archiveFile is the name of the payload entry inside the reduced archive
// format FromArchive reads. The full tabular/columnar archive format this
// engine's payloads are originally shipped in (arrow record batches inside
// a parquet-backed zip) is out of scope (spec.md §1); this is a stand-in
// container carrying the same fields in a single gob-encoded entry.
const archiveFile = "fem.gob"

// archivePayload mirrors FEM's exported fields in a form gob can encode
// directly, flattening the three gonum matrices (inputs-to-modes,
// modes-to-outputs and the optional static gain) to row-major data plus
// dimensions.
type archivePayload struct {
	ModelDescription string

	Inputs  []IOGroup
	Outputs []IOGroup

	EigenFrequenciesHz []float64
	Damping            []float64

	InputsToModesRows, InputsToModesCols int
	InputsToModesData                    []float64

	ModesToOutputsRows, ModesToOutputsCols int
	ModesToOutputsData                     []float64

	HasStaticGain            bool
	StaticGainRows, StaticGainCols int
	StaticGainData           []float64
}

// FromEnv loads the FEM payload referenced by the FEM_REPO environment
// variable, and - if STATIC_FEM_REPO is also set - overlays the
// static-gain matrix from that second archive, mirroring the two-archive
// layout (dynamic model plus a separately shipped static-gain companion)
// this engine is commonly deployed with.
func FromEnv() (*FEM, error) {
	repo := os.Getenv("FEM_REPO")
	if repo == "" {
		return nil, chk.Err("environment variable FEM_REPO is not set")
	}
	fem, err := FromArchive(repo)
	if err != nil {
		return nil, err
	}
	if staticRepo := os.Getenv("STATIC_FEM_REPO"); staticRepo != "" {
		aux, err := FromArchive(staticRepo)
		if err != nil {
			return nil, chk.Err("loading STATIC_FEM_REPO archive %q: %v", staticRepo, err)
		}
		if aux.StaticGain == nil {
			return nil, chk.Err("auxiliary archive %q (STATIC_FEM_REPO) carries no static-gain matrix", staticRepo)
		}
		fem.StaticGain = aux.StaticGain
	}
	return fem, nil
}

// FromArchive loads a FEM payload from path, either a zip archive directly
// or a directory containing one named modal_state_space_model_2ndOrder.zip
// (the name this engine's payload is conventionally published under).
func FromArchive(path string) (*FEM, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, chk.Err("FEM archive %q not found: %v", path, err)
	}
	archivePath := path
	if info.IsDir() {
		archivePath = filepath.Join(path, "modal_state_space_model_2ndOrder.zip")
	}
	key := gslio.FnKey(archivePath)

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, chk.Err("cannot open FEM archive %q: %v", archivePath, err)
	}
	defer r.Close()

	var entry *zip.File
	for _, f := range r.File {
		if f.Name == archiveFile {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, chk.Err("archive %q (model %q) has no %s payload", archivePath, key, archiveFile)
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, chk.Err("cannot read %s in %q: %v", archiveFile, archivePath, err)
	}
	defer rc.Close()

	var payload archivePayload
	if err := gob.NewDecoder(rc).Decode(&payload); err != nil {
		return nil, chk.Err("cannot decode %s in %q: %v", archiveFile, archivePath, err)
	}

	fem := &FEM{
		ModelDescription:   payload.ModelDescription,
		Inputs:             payload.Inputs,
		Outputs:            payload.Outputs,
		EigenFrequenciesHz: payload.EigenFrequenciesHz,
		Damping:            payload.Damping,
		InputsToModes:      mat.NewDense(payload.InputsToModesRows, payload.InputsToModesCols, payload.InputsToModesData),
		ModesToOutputs:     mat.NewDense(payload.ModesToOutputsRows, payload.ModesToOutputsCols, payload.ModesToOutputsData),
	}
	if payload.HasStaticGain {
		fem.StaticGain = mat.NewDense(payload.StaticGainRows, payload.StaticGainCols, payload.StaticGainData)
	}
	return fem, nil
}
