// Package delimregex parses regular expressions written in the slash-delimited
// "/body/flags" notation used by JavaScript and many configuration formats.
//
// Parse accepts the flag alphabet g, i, m, s, u and y. A body that contains a
// bare "/" is rejected because other consumers of the same text would split it
// differently. Escaped delimiters are unescaped before compiling, and the body
// is compiled with regexp2 in ECMAScript mode so lookbehind, backreferences
// and the other JavaScript constructs behave as they would in a browser.
//
// Every rejection, whatever its cause, is reported as ErrInvalid.
package delimregex
