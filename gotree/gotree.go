// Package gotree builds and prints text trees.
package gotree

import (
	"strings"
)

const (
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a node with text and child nodes.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

type tree struct {
	text  string
	items []Tree
}

// New returns a tree with a single root node.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a leaf and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree with box-drawing connectors, one node per line.
// Multi-line node text is indented under its connector.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text + "\n")
	printItems(&sb, t.items, nil)
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, spaces []bool) {
	for i, item := range items {
		last := i == len(items)-1
		printText(sb, item.Text(), spaces, last)
		if len(item.Items()) > 0 {
			printItems(sb, item.Items(), append(spaces[:len(spaces):len(spaces)], last))
		}
	}
}

func printText(sb *strings.Builder, text string, spaces []bool, last bool) {
	var prefix strings.Builder
	for _, space := range spaces {
		if space {
			prefix.WriteString(emptySpace)
		} else {
			prefix.WriteString(continueItem)
		}
	}

	for i, line := range strings.Split(text, "\n") {
		indicator := middleItem
		switch {
		case i == 0 && last:
			indicator = lastItem
		case i > 0 && last:
			indicator = emptySpace
		case i > 0:
			indicator = continueItem
		}
		sb.WriteString(prefix.String() + indicator + line + "\n")
	}
}
