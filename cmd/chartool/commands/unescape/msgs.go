package unescape

// Message constants
const (
	MsgShort   = "Decode \\uXXXX and \\u{...} escapes in text"
	MsgLong    = "Decode JavaScript-style Unicode escapes. Text comes from the arguments, joined\nwith spaces, or from stdin when no argument is given.\n\nSurrogate pairs written as two escapes combine into one character, lone\nsurrogates become U+FFFD and malformed escapes are left as they are."
	MsgExample = `  chartool unescape 'caf\u00e9'
  chartool unescape '\u{1F600}'
  echo '\ud83d\ude00' | chartool unescape`
	MsgErrRead = "failed to read input: %w"
)
