// Package dutree builds and renders disk usage trees.
//
// A Builder walks one or more root paths into a tree of Entry values, sorted
// by size with small entries optionally folded into an "<aggregated>" node.
// A Printer renders that tree line by line with branch connectors, truncated
// names, nested proportional bars and human readable sizes.
package dutree
