package server

import "strings"

// TargetKind classifies what a request path points at.
type TargetKind int

const (
	TargetNotFound TargetKind = iota
	TargetIndex
	TargetPage
	TargetStatus
	TargetFeed
)

// Target is a resolved request path. Name carries the page id or feed name
// for TargetPage and TargetFeed.
type Target struct {
	Kind TargetKind
	Name string
}

// Resolve maps a request path to the page tree. Page ids may contain
// slashes; paths escaping the tree resolve to not-found.
func Resolve(path string) Target {
	switch path {
	case "/", "/index.mu", "/page/index.mu":
		return Target{Kind: TargetIndex}
	case "/status.mu":
		return Target{Kind: TargetStatus}
	}

	if name, ok := strings.CutPrefix(path, "/feed/"); ok {
		name, ok = strings.CutSuffix(name, ".mu")
		if !ok || name == "" || strings.Contains(name, "/") {
			return Target{Kind: TargetNotFound}
		}
		return Target{Kind: TargetFeed, Name: name}
	}

	if id, ok := strings.CutPrefix(path, "/page/"); ok {
		id, ok = strings.CutSuffix(id, ".mu")
		if !ok || id == "" || !safeID(id) {
			return Target{Kind: TargetNotFound}
		}
		return Target{Kind: TargetPage, Name: id}
	}

	return Target{Kind: TargetNotFound}
}

// safeID rejects ids whose segments would escape the output dir.
func safeID(id string) bool {
	for _, segment := range strings.Split(id, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}
	return true
}
