package prune

// Message constants
const (
	MsgShort   = "Remove empty directories below a root"
	MsgLong    = "Remove, deepest first, every directory that holds nothing but ignorable files\n(.DS_Store and friends, see prune.ignore) and other removable directories.\nThe root itself goes too unless --keep-root is set. Symlinks are never\nfollowed and keep their directory alive."
	MsgExample = `  chartool prune build/
  chartool prune --keep-root --ignore .gitkeep assets/`
	MsgFlagKeepRoot = "Never remove the root directory itself"
	MsgFlagIgnore   = "File name that does not keep a directory alive (repeatable)"

	MsgFieldRoot   = "root"
	MsgRemoved     = "Removed %d directories"
	MsgNothingToDo = "No empty directories"
)
