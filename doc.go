// Package molmass computes molecular masses from chemical formulas.
//
// Formulas are written the way you'd write them in your notes: "H2O",
// "Ca(OH)2", "K4[Fe(CN)6]". An element symbol is an uppercase letter,
// optionally followed by one lowercase letter, and a count is a run of digits
// following an element or a bracketed group. Groups may use round, square, or
// curly brackets and nest to any depth.
//
// Parsing and mass computation are separate steps, so a formula can be parsed
// once and its tally inspected or computed at several precisions. Evaluate
// does both and classifies any failure as either a problem with the input or
// a bug in this package.
//
package molmass
