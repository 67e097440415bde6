package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button. Class and ID select its style;
// Bounds is resolved by Engine.Layout or set by the owner.
type Node struct {
	Class  string // ".label" matches Class "label"
	ID     string // "#modal" matches ID "modal"
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with optional class, id and text.
func NewNode(class, id, text string) *Node {
	return &Node{Class: class, ID: id, Text: text}
}

// Contains reports whether the screen point p lies inside the node.
func (n *Node) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, n.Bounds)
}
