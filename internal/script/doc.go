// Package script compiles model metadata into the client-side model definition
// script.
//
// The emitted unit is a single modelData(template, data) function that, in this
// fixed order:
//
//   - declares one constructor and one cmn.defineObject block per record,
//     following the collection's insertion order;
//   - declares an array wrapper constructor after every array record;
//   - builds the ctors registry;
//   - calls cmn.implementRoot and instantiates TRoot;
//   - optionally reports system values through cmn.setModelInfo.
//
// Blocks are assembled by joining finite sequences, so no separator cleanup is
// needed. The Compiler keeps no per-call state and may be shared between
// goroutines.
package script
