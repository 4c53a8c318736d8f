// SPDX-License-Identifier: MIT

// Package entry defines the immutable (composition, energy) record the phase
// diagram is built from, and its on-disk record formats.
//
// An Entry carries a total energy for its composition as written (not
// normalized); EnergyPerAtom divides by the atom count. Entries are created
// once, shared by pointer, and never mutated.
//
// Record formats (Load/Save dispatch on the file extension):
//
//	.csv        Name,<El1>,<El2>,...,Energy   one row per entry
//	.json       [{"name":..,"composition":"Fe2O3","energy":..,"attribute":{..}}]
//	.yaml/.yml  the same records as YAML
//
// Every reader returns the element set implied by the file together with the
// entries; load(save(x)) preserves name, composition and energy exactly.
package entry
