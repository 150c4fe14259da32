// Package jsonpathq evaluates RFC 9535 JSONPath expressions against decoded
// JSON values.
//
// It backs the $-rooted query dialect: expressions opening with $ are
// compiled and selected here, while dot-and-bracket expressions stay with
// the pathexpr engine. Selection returns every matched node in document
// order; an empty result is not an error.
package jsonpathq
