// Package ioformat reads the line-oriented input corpus and writes the
// computed matrix in two output formats. It is an external
// collaborator of matrix and strval: it only ever calls their
// exported accessors, never reaching into unexported fields.
package ioformat
