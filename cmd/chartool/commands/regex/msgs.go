package regex

// Message constants
const (
	MsgShort   = "Parse, test and escape slash-delimited regular expressions"
	MsgLong    = "Work with patterns written as /body/flags, where flags are drawn from gimsuy.\nBodies follow ECMAScript regular expression syntax."
	MsgExample = `  chartool regex parse '/a\/b/gi'
  chartool regex test '/(\d+)/g' 'a1b22'
  chartool regex escape --delimited 'a/b.c'`

	MsgParseShort   = "Validate a delimited pattern and show its parts"
	MsgParseExample = `  chartool regex parse '/^hello$/im'
  chartool regex parse --first-only '/a\/b\/c/'`
	MsgTestShort   = "Match a delimited pattern against text"
	MsgTestExample = `  chartool regex test '/o/g' 'foo'
  chartool regex test --replace '[$&]' '/o/g' 'foo'`
	MsgEscapeShort   = "Escape text for literal use inside a pattern"
	MsgEscapeExample = `  chartool regex escape '1+1=2'
  chartool regex escape --delimited 'path/to/file'`

	MsgFlagFirstOnly = "Unescape only the first \\/ in the body"
	MsgFlagReplace   = "Print the text with matches replaced ($&, $1, $<name> expand)"
	MsgFlagDelimited = "Also escape / for use inside /.../"

	MsgFieldPattern = "pattern"
	MsgFieldSource  = "source"
	MsgFieldFlags   = "flags"
	MsgFieldStd     = "go regexp"
	MsgFieldResult  = "result"

	MsgValid         = "Pattern is valid"
	MsgMatchesFormat = "%d match(es)"
	MsgMatchFormat   = "%q at %d-%d"
	MsgStdOK         = "compatible"
	MsgStdNo         = "not RE2 compatible"
	MsgNoFlags       = "(none)"
)
