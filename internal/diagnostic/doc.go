// Package diagnostic provides structured errors and warnings produced while
// checking model metadata before code generation.
//
// Every diagnostic carries a stable code, the type it relates to and, when
// relevant, the field, so reports can be filtered and compared in tests.
package diagnostic
