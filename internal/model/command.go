package model

// CommandKind identifies one step of a transcript session.
type CommandKind int

const (
	CmdRoot    CommandKind = iota // cd /
	CmdParent                     // cd ..
	CmdDescend                    // cd <name>
	CmdList                       // ls
)

func (k CommandKind) String() string {
	switch k {
	case CmdRoot:
		return "root"
	case CmdParent:
		return "parent"
	case CmdDescend:
		return "descend"
	case CmdList:
		return "list"
	default:
		return "unknown"
	}
}

// Entry is one line of ls output: either a directory or a sized file.
type Entry struct {
	Name string
	Dir  bool
	Size int64 // Ignored for directories
}

// FileEntry returns a file listing entry.
func FileEntry(name string, size int64) Entry {
	return Entry{Name: name, Size: size}
}

// DirEntry returns a directory listing entry.
func DirEntry(name string) Entry {
	return Entry{Name: name, Dir: true}
}

// Command is a single navigation or listing step in session order.
type Command struct {
	Kind    CommandKind
	Name    string  // Target of CmdDescend
	Entries []Entry // Output of CmdList
	Line    int     // 1-based transcript line, 0 when built by hand
}

// Root returns a "cd /" command.
func Root() Command { return Command{Kind: CmdRoot} }

// Parent returns a "cd .." command.
func Parent() Command { return Command{Kind: CmdParent} }

// Descend returns a "cd <name>" command.
func Descend(name string) Command { return Command{Kind: CmdDescend, Name: name} }

// List returns an "ls" command with its output.
func List(entries ...Entry) Command { return Command{Kind: CmdList, Entries: entries} }
