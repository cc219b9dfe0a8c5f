package format

import "strings"

// HasPathTraversal reports whether path contains a traversal component by
// any of the four rules the format fixes: a "../" or "..\" substring
// anywhere, the whole string being exactly "..", or — after stripping one
// leading slash — the remainder starting with ".." followed by end-of-string
// or a slash. This predicate is applied identically to entry filenames and
// to any decoded stored-outdir string.
func HasPathTraversal(path string) bool {
	if strings.Contains(path, "../") || strings.Contains(path, "..\\") {
		return true
	}
	if path == ".." {
		return true
	}
	p := path
	if strings.HasPrefix(p, "/") {
		p = p[1:]
	}
	if strings.HasPrefix(p, "..") {
		rest := p[2:]
		if rest == "" || strings.HasPrefix(rest, "/") {
			return true
		}
	}
	return false
}
