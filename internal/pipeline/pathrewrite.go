package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// localRefs lists the element attributes that may point at files next to
// the notebook.
var localRefs = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// ResolveLocalPaths rewrites relative image and link targets in page to
// file:// URLs under baseDir, so the page still finds them when loaded from
// a temporary location. Targets that are URLs, anchors, absolute paths or
// that escape baseDir are left alone. An empty baseDir is a no-op.
func ResolveLocalPaths(page, baseDir string) (string, error) {
	if baseDir == "" {
		return page, nil
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if key, ok := localRefs[n.DataAtom]; ok && n.Type == html.ElementNode {
			for i := range n.Attr {
				if n.Attr[i].Key == key && n.Attr[i].Namespace == "" {
					n.Attr[i].Val = resolveLocal(n.Attr[i].Val, base)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var b strings.Builder
	if err := html.Render(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// resolveLocal returns the file:// URL for a relative target under base, or
// target unchanged.
func resolveLocal(target, base string) string {
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return target
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" || filepath.IsAbs(u.Path) || u.Path == "" {
		return target
	}
	abs := filepath.Join(base, filepath.FromSlash(u.Path))
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return target
	}
	resolved := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), Fragment: u.Fragment}
	return resolved.String()
}
