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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const usageMarkdown = `

 **avlprune %s**

An ordered set of unique integer keys kept in an AVL tree, with a cyclic
pruner that removes alternating level-order nodes until the root has no left
child.

Built with Go %s

# 1. Commands
* **avlprune** or **avlprune run**: interactive menu
* **avlprune shell**: line-oriented shell; reads commands from stdin
* **avlprune browse [keys...]**: collapsible tree view
* **avlprune verify**: randomized insert/delete stress run with invariant checks
* **avlprune settings**: show or create ~/.avlprune.yaml
* **avlprune version**: print the version

# 2. Menu
1. Insert a key
2. Generate unique random keys
3. Print the tree
4. Delete a key
5. Search with step count (breadth-first walk)
6. Cyclic removal of alternating nodes
7. Quit

# 3. Notes
* Inserting a key twice is a no-op; deleting a missing key is a no-op
* Search reports the number of steps from the root to the key
* Pruning prints the tree after every pass

# License
Licensed under the Apache License, Version 2.0

`

func getHelpMessage() string {
	message := fmt.Sprintf(usageMarkdown, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// menuHelpMarkdown is rendered with glamour inside the menu UI.
const menuHelpMarkdown = `# avlprune

Pick an action on the left and press **enter**. Actions that need a number
ask for it in the input box below the menu.

| Key | Action |
| --- | --- |
| enter | run the selected action |
| 1-7 | jump to a menu item |
| tab | switch focus between menu and output |
| ctrl+y | copy the current tree to the clipboard |
| f1 | show this help |
| esc | cancel input, or quit |

Search counts the steps of a single root-to-key descent, although the menu
keeps its breadth-first label.
`
