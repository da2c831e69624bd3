// fixturegen is a tool that generates repetitive C# unit tests for the math library.
//
// It produces two documents:
//
//   - polynomial-root fixtures: each case multiplies linear factors (x - r), or
//     (x - r + i*s) in complex mode, with roots drawn from a seeded generator,
//     expands the product, solves it and checks every root;
//   - trig-table fixtures: for each function and each denominator i in 1..29, minus
//     a per-function exclusion list, compares Func(2*pi/i) evaluated directly with the
//     value after simplification.
//
// Example:
//
//	fixturegen                       # regenerate both documents
//	fixturegen trig --stdout         # print the trig fixtures
//	fixturegen --config tables.yaml  # use custom tables and output paths
//	fixturegen config > tables.yaml  # dump the built-in tables
//
// The default generator is bit-compatible with java.util.Random, so the committed
// fixtures (seed 44) regenerate without diffs.
package main
