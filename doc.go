// Package fatigue is an in-memory toolkit for fatigue-load analysis of
// scalar stress/strain histories — from turning-point reduction to rainflow
// cycle counting, load spectra and damage estimates.
//
// 🚀 What is fatigue?
//
//	A small, deterministic library that brings together:
//		• Turning points: reduce a raw sample history to alternating peaks & valleys
//		• Rainflow: ASTM E1049-85 three-point cycle counting with residual flush
//		• Spectra: range–mean rainflow matrices & cumulative exceedance tables
//		• Damage: Basquin S–N curves with Palmgren–Miner accumulation
//		• Signals: reproducible synthetic load histories for tests & demos
//
// ✨ Why choose fatigue?
//
//   - Standards-faithful – exact ASTM tie-breaks (X ≥ Y closes, strict extrema)
//   - Deterministic – pure functions of their input, no hidden state
//   - Pure Go – no cgo, no hidden deps in the computational core
//   - Composable – each stage consumes the previous stage's plain slices
//
// Everything is organized under small focused subpackages:
//
//	extrema/  — turning-point (peak/valley) reduction of a sample history
//	rainflow/ — ASTM E1049-85 cycle counting, the heart of the module
//	spectrum/ — range–mean matrix and exceedance spectrum over counted cycles
//	damage/   — S–N curves, Miner's rule, equivalent stress range
//	signal/   — deterministic synthetic histories (sine, block, Gaussian)
//	cmd/      — the `fatigue` CLI: count, spectrum and damage over CSV input
//
// Quick ASCII picture of the pipeline:
//
//	samples ──▶ extrema ──▶ cycles ──▶ {matrix, exceedance, damage}
//
// Dive into the per-package docs for the exact contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/fatigue
package fatigue
