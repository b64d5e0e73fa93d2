// Package submatch is your in-process toolkit for finding chemical
// substructures — matching a small labeled pattern graph against a
// larger labeled target graph via backtracking subgraph isomorphism.
//
// 🚀 What is submatch?
//
//	A resumable, single-threaded matcher built from four layers:
//		• molgraph: arena-backed labeled atom/bond graphs
//		• label: vertex/edge predicates layered over element/order equality
//		• plan: DFS flattening of a pattern into a linear candidate plan
//		• engine: explicit-stack backtracking search over that plan
//	with submatch.Matcher composing all four behind an iterator/dedup API,
//	and smiles/fixture as optional collaborators outside the matching
//	core's import boundary.
//
// ✨ Why choose submatch?
//
//   - Resumable — NextMatch resumes the search exactly where the last
//     match left off, no re-scan from scratch
//   - Deterministic — stable insertion order in, stable match order out
//   - Configurable overlap/permute policy without touching the engine
//   - Pure Go — no cgo, predicates are plain closures
//
// Under the hood, everything is organized under subpackages:
//
//	molgraph/ — the labeled graph arena (AtomHandle, BondHandle, Molecule)
//	label/    — vertex/edge predicates and the PredicateSet they compose into
//	plan/     — pattern flattening into Anchor/Edge/RingClose steps
//	engine/   — the backtracking search itself
//	submatch/ — Matcher: the public construct/bind/next_match API
//	smiles/   — a minimal organic-subset SMILES reader for examples and fixtures
//	fixture/  — a reader/writer for the flat scenario-file format
//
// The module ships no demo programs; the Example functions in the
// molgraph, smiles and submatch test files show the public API in use.
//
// Quick example, using the smiles and submatch packages together:
//
//	pattern, _ := smiles.Parse("C(=O)Cl")
//	target, _ := smiles.Parse("C1CCCC1C(Cl)=O")
//	m, _ := submatch.NewMatcher(pattern)
//	_ = m.Bind(target)
//	match, _ := m.NextMatch() // -> vertex map onto the acyl carbon, O, Cl
//
//	go get github.com/katalvlaran/submatch
package submatch
