package crawl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/katalvlaran/pagerank/corpus"
)

// ErrNoPages is returned when the crawled directory contains no HTML files.
var ErrNoPages = errors.New("crawl: directory contains no HTML pages")

// Directory reads every *.html file in dir (non-recursive) and builds the
// corpus of their cross-links. Page IDs are plain file names; anchors
// pointing at the page itself or outside the crawled set are dropped during
// corpus construction.
//
// Complexity: O(total HTML size) parsing plus corpus construction.
func Directory(dir string) (*corpus.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("crawl: read directory %s: %w", dir, err)
	}

	b := corpus.NewBuilder(corpus.DropUnknown())
	found := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		found = true

		targets, err := pageLinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		b.Add(corpus.Page(entry.Name()), targets...)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, dir)
	}

	return b.Build()
}

// pageLinks parses one HTML file and returns the href target of every <a>
// element, in document order, unfiltered.
func pageLinks(path string) ([]corpus.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crawl: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("crawl: parse %s: %w", path, err)
	}

	var targets []corpus.Page
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					targets = append(targets, corpus.Page(attr.Val))

					break // first href wins; duplicates are invalid HTML
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return targets, nil
}
