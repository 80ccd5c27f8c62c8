// Package commitmsg validates commit messages against the merge
// request template: a typed header plus Problem/Task, Solution, Test,
// JIRA and Author sections.
package commitmsg

import (
	"fmt"
	"regexp"
	"strings"
)

// emailDomain is organizational policy, deliberately not configurable.
const emailDomain = "is.ic"

var (
	headerRe = regexp.MustCompile(`^(\w+)\[(\w+)\]: (.+)$`)
	jiraRe   = regexp.MustCompile(`^[A-Z0-9]+-[0-9]+`)
)

type checkFunc func(msg string) (bool, string)

var checks = []checkFunc{
	checkHeader,
	checkProblemTask,
	checkSolution,
	checkTest,
	checkJIRA,
	checkAuthorEmail,
}

// Validate runs every template check against msg. All checks run
// regardless of earlier failures; reasons come back in check order.
// An empty reason list means the message is valid.
func Validate(msg string) (bool, []string) {
	var reasons []string
	for _, check := range checks {
		if ok, reason := check(msg); !ok {
			reasons = append(reasons, reason)
		}
	}
	return len(reasons) == 0, reasons
}

func checkHeader(msg string) (bool, string) {
	var header string
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			header = line
			break
		}
	}
	if header == "" {
		return false, "Empty commit message"
	}
	if !headerRe.MatchString(header) {
		return false, "Invalid header format. Should be: <type>[<SCOPE>]: <short-summary>"
	}
	return true, ""
}

func checkProblemTask(msg string) (bool, string) {
	if !hasPrefixedLine(msg, "Problem:", "Task:") {
		return false, "Missing 'Problem/Task:' section"
	}
	return true, ""
}

func checkSolution(msg string) (bool, string) {
	if !hasPrefixedLine(msg, "Solution:") {
		return false, "Missing 'Solution:' section"
	}
	return true, ""
}

func checkTest(msg string) (bool, string) {
	if !hasPrefixedLine(msg, "Test:") {
		return false, "Missing 'Test:' section"
	}
	return true, ""
}

func checkJIRA(msg string) (bool, string) {
	for _, line := range strings.Split(msg, "\n") {
		if !strings.HasPrefix(line, "JIRA:") {
			continue
		}
		ref := strings.TrimSpace(strings.TrimPrefix(line, "JIRA:"))
		if !jiraRe.MatchString(ref) {
			return false, "JIRA reference should be in format: <PROJ-123>"
		}
		return true, ""
	}
	return false, "Missing 'JIRA:' section"
}

func checkAuthorEmail(msg string) (bool, string) {
	// The last Author line wins: git appends one from the commit
	// metadata after the body, and that is the one to cross-check.
	var name, email string
	found := false
	for _, line := range strings.Split(msg, "\n") {
		if !strings.HasPrefix(line, "Author:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		found = true
		name, email = fields[1], fields[2]
	}
	if !found {
		return false, "Missing author or email"
	}
	if email != fmt.Sprintf("<%s@%s>", name, emailDomain) {
		return false, fmt.Sprintf("%s %s: email does not format: <username>@%s", name, email, emailDomain)
	}
	return true, ""
}

func hasPrefixedLine(msg string, prefixes ...string) bool {
	for _, line := range strings.Split(msg, "\n") {
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return true
			}
		}
	}
	return false
}
