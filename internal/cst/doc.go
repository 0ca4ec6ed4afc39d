// Package cst exposes the read-only concrete-syntax-tree contract the
// linter analyses: typed nodes with byte ranges, field-named children, text
// slicing, and a single pre-order walker. It wraps the external
// grammar-driven parser so that rules never touch parser internals.
package cst
