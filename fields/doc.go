/*
Package fields converts FASTA records to and from loosely typed mappings of
named fields, and encodes lists of such mappings as JSON or MessagePack.

A record maps to three keys: "seq_id", "description" and "sequence". All three
are required when building a record from a mapping.
*/
package fields
