package repository

import (
	"bufio"
	"strings"
)

const originPrefix = "origin/"

// ParseRemoteShow extracts the fetch URL and the remote branch names from
// the output of "git remote show origin".
func ParseRemoteShow(output string) (fetchURL string, branches []string) {
	inBranches := false
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(trimmed, "Fetch URL:"); ok {
			fetchURL = strings.TrimSpace(rest)
			continue
		}
		if strings.HasPrefix(trimmed, "Remote branch") {
			inBranches = true
			continue
		}
		if inBranches {
			// Branch entries are indented deeper than section headers.
			if !strings.HasPrefix(line, "    ") || trimmed == "" {
				inBranches = false
				continue
			}
			if fields := strings.Fields(trimmed); len(fields) > 0 {
				branches = append(branches, fields[0])
			}
		}
	}
	return fetchURL, branches
}

// ParseDecoration returns the branch named by the ref decoration printed by
// "git show -s --pretty=%D HEAD", or "" when HEAD is not on a branch tip.
//
//	"HEAD -> main, origin/main, origin/HEAD"  → "main"
//	"HEAD, origin/release/2.0"                → "release/2.0"
//	"HEAD"                                    → ""
func ParseDecoration(decoration string) string {
	for _, ref := range strings.Split(strings.TrimSpace(decoration), ",") {
		ref = strings.TrimSpace(ref)
		switch {
		case ref == "" || ref == "HEAD" || strings.HasPrefix(ref, "tag: "):
			continue
		case strings.HasPrefix(ref, "HEAD -> "):
			return strings.TrimPrefix(ref, "HEAD -> ")
		case strings.HasPrefix(ref, originPrefix):
			if name := strings.TrimPrefix(ref, originPrefix); name != "HEAD" {
				return name
			}
		default:
			return ref
		}
	}
	return ""
}

// ParseContainingBranch returns the first remote branch listed by
// "git branch -r --contains <sha>", without the origin/ prefix.
func ParseContainingBranch(output string) string {
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.Contains(line, "->") {
			continue
		}
		return strings.TrimPrefix(line, originPrefix)
	}
	return ""
}

// NameFromURL is the last path segment of a remote URL.
func NameFromURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}
	return strings.TrimSuffix(url, ".git")
}
