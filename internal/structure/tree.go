package structure

import (
	"io"
	"path"

	"github.com/ddddddO/gtree"
)

// RenderTree writes m as a directory tree rooted at rootName. Directories
// carry a trailing slash; important files are their leaves. Intermediate
// directories that hold nothing important are drawn so that every recorded
// path hangs off the root.
func RenderTree(w io.Writer, m *Map, rootName string) error {
	root := gtree.NewRoot(rootName)
	nodes := map[string]*gtree.Node{RootPath: root}

	var dirNode func(rel string) *gtree.Node
	dirNode = func(rel string) *gtree.Node {
		if n, ok := nodes[rel]; ok {
			return n
		}
		parentRel := path.Dir(rel)
		parent := root
		if parentRel != rel {
			parent = dirNode(parentRel)
		}
		n := parent.Add(path.Base(rel) + "/")
		nodes[rel] = n
		return n
	}

	for _, d := range m.Directories() {
		n := dirNode(d.Path)
		for _, f := range d.ImportantFiles {
			n.Add(f)
		}
	}

	return gtree.OutputFromRoot(w, root)
}
