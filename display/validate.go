// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"

	"github.com/gogpu/swfkit"
)

// Validate checks a decoded display list for structural errors before
// instantiation: nil nodes and nodes reachable through more than one
// parent (which would make the tree a graph and break exclusive
// ownership). A failure is fatal for this asset only; it never affects
// running instances of other assets.
func Validate(root DisplayObject) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", swfkit.ErrMalformedTree)
	}
	seen := make(map[*Base]string)
	return validateNode(root, "root", seen)
}

func validateNode(node DisplayObject, path string, seen map[*Base]string) error {
	if node == nil {
		return fmt.Errorf("%w: nil child at %s", swfkit.ErrMalformedTree, path)
	}
	base := node.Base()
	if prev, dup := seen[base]; dup {
		return fmt.Errorf("%w: node at %s already owned at %s",
			swfkit.ErrMalformedTree, path, prev)
	}
	seen[base] = path

	clip, ok := node.(*MovieClip)
	if !ok {
		return nil
	}
	for i, child := range clip.Children() {
		childPath := fmt.Sprintf("%s/%d", path, i)
		if child != nil && child.Base().Name != "" {
			childPath = fmt.Sprintf("%s/%s", path, child.Base().Name)
		}
		if err := validateNode(child, childPath, seen); err != nil {
			return err
		}
	}
	return nil
}
