// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// Package builder assembles deterministic graph fixtures for tests,
// benchmarks and demos.
//
// A Constructor appends vertices and edges of one topology to a shared
// blueprint; BuildGraph runs constructors in order and hands the blueprint to
// graph.New. Vertex insertion is idempotent, so constructors sharing IDs glue
// their topologies together.
//
// Components:
//
//   - Topologies: Path, Cycle, Star, Complete, Grid.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Options: WithIDScheme, WithSeed, WithRand, WithWeightFn,
//     WithConstantWeight, WithUniformWeight, WithGraphOptions.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrConstructFailed) and never panic.
//   - Validation errors from graph.New propagate unchanged in kind.
package builder
