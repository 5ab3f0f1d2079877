// Package pipeline implements the content transformation stages.
//
// Each stage is a pure function from string to string:
//   - LaTeX delimiter normalization (\[...\] and \(...\) to dollar form)
//   - Mhchem command escaping inside math spans
//   - Currency escaping ($ before a digit)
//   - Citation marker rewriting ([n] to link references)
//   - Incomplete-formula extraction for streamed content
//
// Every stage recomputes protected ranges over its own input via the
// segment package and leaves bytes inside those ranges untouched, so
// stages compose in any order without corrupting code or math spans.
package pipeline
