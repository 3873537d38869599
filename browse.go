// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/cybrota/avlprune/avl"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// nodeLabel is the text shown for one tree node in the browser.
type nodeLabel struct {
	side   string // "root", "L" or "R"
	key    int
	height int
	bal    int
}

func (l nodeLabel) String() string {
	return fmt.Sprintf("%s %d  (h=%d, bf=%+d)", l.side, l.key, l.height, l.bal)
}

// buildTreeNodes converts the subtree at root into termui tree nodes. Levels
// above expandDepth start expanded.
func buildTreeNodes(root *avl.Node, expandDepth int) []*widgets.TreeNode {
	if root == nil {
		return nil
	}
	return []*widgets.TreeNode{toTreeNode(root, "root", 0, expandDepth)}
}

func toTreeNode(n *avl.Node, side string, depth, expandDepth int) *widgets.TreeNode {
	tn := &widgets.TreeNode{
		Value: nodeLabel{
			side:   side,
			key:    n.Key(),
			height: n.Height(),
			bal:    n.Left().Height() - n.Right().Height(),
		},
		Expanded: depth < expandDepth,
	}
	if n.Left() != nil {
		tn.Nodes = append(tn.Nodes, toTreeNode(n.Left(), "L", depth+1, expandDepth))
	}
	if n.Right() != nil {
		tn.Nodes = append(tn.Nodes, toTreeNode(n.Right(), "R", depth+1, expandDepth))
	}
	return tn
}

func browseSummary(tree *avl.Tree) string {
	return fmt.Sprintf(
		"keys: %d   height: %d\n"+
			"[j/k](fg:green) move  [enter](fg:green) toggle  [E/C](fg:green) expand/collapse all  "+
			"[g/G](fg:green) top/bottom  [q](fg:green) quit",
		tree.Len(), tree.Height())
}

// runBrowser shows tree in a collapsible termui tree widget until the user
// quits.
func runBrowser(tree *avl.Tree) error {
	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize termui")
	}
	defer ui.Close()
	DisableMouseInput()
	InitializeColors()

	treeWidget := widgets.NewTree()
	treeWidget.Title = " AVL Tree "
	treeWidget.TextStyle = StyleText()
	treeWidget.SelectedRowStyle = StylePrimary()
	treeWidget.BorderStyle = StyleBorder(true)
	treeWidget.WrapText = false
	treeWidget.SetNodes(buildTreeNodes(tree.Root(), 3))

	summary := widgets.NewParagraph()
	summary.Title = " Summary "
	summary.Text = browseSummary(tree)
	summary.TextStyle = StyleTextMuted()
	summary.BorderStyle = StyleBorder(false)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.85, treeWidget),
		ui.NewRow(0.15, summary),
	)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "j", "<Down>":
			treeWidget.ScrollDown()
		case "k", "<Up>":
			treeWidget.ScrollUp()
		case "<Enter>", "<Space>":
			treeWidget.ToggleExpand()
		case "E":
			treeWidget.ExpandAll()
		case "C":
			treeWidget.CollapseAll()
		case "g", "<Home>":
			treeWidget.ScrollTop()
		case "G", "<End>":
			treeWidget.ScrollBottom()
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			}
			ui.Clear()
		}
		ui.Render(grid)
	}
}
