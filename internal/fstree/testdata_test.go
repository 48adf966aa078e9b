package fstree

import "dirsize/internal/model"

// sampleSession is the example session from the puzzle statement.
func sampleSession() []model.Command {
	return []model.Command{
		model.Root(),
		model.List(
			model.DirEntry("a"),
			model.FileEntry("b.txt", 14848514),
			model.FileEntry("c.dat", 8504156),
			model.DirEntry("d"),
		),
		model.Descend("a"),
		model.List(
			model.DirEntry("e"),
			model.FileEntry("f", 29116),
			model.FileEntry("g", 2557),
			model.FileEntry("h.lst", 62596),
		),
		model.Descend("e"),
		model.List(model.FileEntry("i", 584)),
		model.Parent(),
		model.Parent(),
		model.Descend("d"),
		model.List(
			model.FileEntry("j", 4060174),
			model.FileEntry("d.log", 8033020),
			model.FileEntry("d.ext", 5626152),
			model.FileEntry("k", 7214296),
		),
	}
}
