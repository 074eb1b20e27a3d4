// Package lexcore is the lexical front end of a Solidity/Yul compiler: a
// byte-oriented cursor that turns source text into a stream of raw tokens
// (package cursor), the character classification tables it runs on (package
// charclass), a string-literal unescape engine shared by the cursor and any
// later semantic pass (package unescape), a global byte-position axis and
// source map spanning every file registered in a compilation (packages span
// and sourcemap), a must-consume structured diagnostic system with pluggable
// emitters (package diag), a session type tying a diagnostic context and a
// source map together with sequential-or-parallel work dispatch (package
// session), and the builtin-name catalog injected into scope before any
// user code is analysed (package builtin).
//
// cmd/solarlex wires all of the above into a batch driver: load a config,
// register input files, lex each one, render diagnostics.
//
// This module stops at the token stream. Parsing, name resolution, type
// checking, and code generation are out of scope.
package lexcore
