/*
Package fasta provides routines for reading and writing FASTA files.

A FASTA file is a sequence of records. Each record starts with a header line
beginning with '>', followed by an identifier, optionally a single run of
whitespace and a free-text description. Every following line up to the next
header is part of the record's sequence.

Sequence data is not checked against any alphabet. Line endings are stripped
when reading and written back as a single '\n'.

ReadFile and WriteFile are the path level entry points. Reader and Writer work
on any io.Reader or io.Writer.
*/
package fasta
