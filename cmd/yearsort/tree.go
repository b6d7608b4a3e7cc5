package main

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// fileTree renders destination paths as a tree rooted at the organized
// directory, grouping files under the year directories they land in.
type fileTree struct {
	root gotree.Tree
	dirs map[string]gotree.Tree
}

func newFileTree(label string) fileTree {
	return fileTree{root: gotree.New(label), dirs: make(map[string]gotree.Tree)}
}

func (t fileTree) dir(path string) gotree.Tree {
	if path == "." {
		return t.root
	}
	node := t.dirs[path]
	if node == nil {
		parent := t.dir(filepath.Dir(path))
		node = parent.Add(filepath.Base(path))
		t.dirs[path] = node
	}
	return node
}

func (t fileTree) insert(path string, prefix string) {
	t.dir(filepath.Dir(path)).Add(prefix + filepath.Base(path))
}

func (t fileTree) render() string {
	return t.root.Print()
}
