// Package fsmeta reads the filesystem metadata dutree needs for a single path:
// logical size, allocated size, kind, permission bits and, for symbolic links,
// whether the link target exists.
//
// Links are never followed for the reported size or kind.
package fsmeta
