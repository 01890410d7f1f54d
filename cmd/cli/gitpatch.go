package main

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

// patchFromHead diffs a local repository's HEAD commit against its first
// parent and returns the per-file patches.
func patchFromHead(dir string) ([]filePatch, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD commit: %w", err)
	}
	if commit.NumParents() == 0 {
		return nil, fmt.Errorf("HEAD commit %s has no parent to diff against", head.Hash())
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent commit: %w", err)
	}
	patch, err := parent.Patch(commit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute patch: %w", err)
	}

	return splitPatchByFile(patch.String()), nil
}

// splitPatchByFile cuts a multi-file unified diff on its "diff --git"
// boundaries. The new-side name is taken from the header; patches for files
// without hunks (binary changes, pure renames) come out empty and are dropped
// later by the hunk parser.
func splitPatchByFile(text string) []filePatch {
	var files []filePatch
	var cur *filePatch

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			files = append(files, filePatch{name: newSideName(line)})
			cur = &files[len(files)-1]
			continue
		}
		if cur == nil {
			continue
		}
		cur.patch += line + "\n"
	}

	// A bare hunk-only diff has no file headers; review it as one nameless file.
	if len(files) == 0 && strings.Contains(text, "@@") {
		files = append(files, filePatch{name: "(patch)", patch: text})
	}
	return files
}

// newSideName extracts NAME from `diff --git a/NAME b/NAME`.
func newSideName(header string) string {
	fields := strings.Fields(header)
	if len(fields) < 4 {
		return header
	}
	return strings.TrimPrefix(fields[3], "b/")
}
