// Package pseudocode lints pseudocode blocks for determinism hazards,
// common logic errors and big-picture issues such as missing error
// handling or unbounded nesting.
package pseudocode

import (
	"fmt"
	"regexp"
	"strings"
)

// IssueLevel is the severity of a detected issue.
type IssueLevel string

const (
	LevelInfo     IssueLevel = "info"
	LevelWarning  IssueLevel = "warning"
	LevelError    IssueLevel = "error"
	LevelCritical IssueLevel = "critical"
)

// Issue is one finding. Line is 1-based; 0 means the issue concerns the
// block as a whole.
type Issue struct {
	Level      IssueLevel
	Category   string
	Message    string
	Line       int
	Suggestion string
}

// Issue categories.
const (
	CategoryNonDeterministic = "Non-Deterministic"
	CategoryLogicError       = "Logic Error"
	CategoryErrorHandling    = "Error Handling"
	CategoryResources        = "Resource Management"
	CategoryVariableUsage    = "Variable Usage"
	CategoryComplexity       = "Complexity"
)

// Keywords that indicate operations whose output varies between runs.
var nonDeterministicRes = []*regexp.Regexp{
	regexp.MustCompile(`\brandom\b`),
	regexp.MustCompile(`\brand\b`),
	regexp.MustCompile(`\bcurrent[_\s]time\b`),
	regexp.MustCompile(`\bnow\(\)`),
	regexp.MustCompile(`\btoday\(\)`),
	regexp.MustCompile(`\btimestamp\b`),
	regexp.MustCompile(`\buuid\b`),
	regexp.MustCompile(`\bguid\b`),
}

type logicPattern struct {
	re         *regexp.Regexp
	message    string
	suggestion string
}

var logicPatterns = []logicPattern{
	{
		re:         regexp.MustCompile(`for\s+\w+\s*=\s*\d+\s+to\s+\d+`),
		message:    "Potential off-by-one error in loop",
		suggestion: "Verify loop bounds are correct (inclusive vs exclusive)",
	},
	{
		re:         regexp.MustCompile(`while\s+true`),
		message:    "Infinite loop detected - ensure there's a break condition",
		suggestion: "Add explicit break condition or use bounded loop",
	},
	{
		re:         regexp.MustCompile(`if\s+\w+\s*==\s*true`),
		message:    "Redundant comparison with boolean",
		suggestion: "Use variable directly: IF variable THEN",
	},
	{
		re:         regexp.MustCompile(`if\s+.*=[^=]`),
		message:    "Assignment operator (=) used instead of comparison (==)",
		suggestion: "Use == for comparison, = for assignment",
	},
}

var (
	errorHandlingRe = regexp.MustCompile(`(?i)\b(try|catch|throw|error|exception)\b`)
	nullCheckRe     = regexp.MustCompile(`(?i)\bis\s+null\b|\bnull\s+check\b|if\s+not\s+\w+`)
	acquireRe       = regexp.MustCompile(`\b(open|allocate|create|connect|acquire)\b`)
	releaseRe       = regexp.MustCompile(`\b(close|free|delete|disconnect|release|cleanup)\b`)
	declarationRe   = regexp.MustCompile(`(?i)\b(declare|let|var|set)\s+(\w+)`)
	identifierRe    = regexp.MustCompile(`(?i)\b[a-z_]\w*\b`)
)

var builtinWords = map[string]bool{"true": true, "false": true, "null": true, "none": true}

const maxNestingDepth = 4

// Validate runs every check over the pseudocode and returns the findings
// in check order.
func Validate(code string) []Issue {
	lines := strings.Split(code, "\n")

	var issues []Issue
	issues = append(issues, checkDeterminism(lines)...)
	issues = append(issues, checkLogic(lines)...)
	issues = append(issues, checkErrorHandling(lines)...)
	issues = append(issues, checkResourceCleanup(lines)...)
	issues = append(issues, checkVariableInitialization(lines)...)
	issues = append(issues, checkComplexity(lines)...)
	return issues
}

// GroupByCategory buckets issues by their category, preserving order
// within each bucket.
func GroupByCategory(issues []Issue) map[string][]Issue {
	grouped := make(map[string][]Issue)
	for _, issue := range issues {
		grouped[issue.Category] = append(grouped[issue.Category], issue)
	}
	return grouped
}

func checkDeterminism(lines []string) []Issue {
	var issues []Issue
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, re := range nonDeterministicRes {
			if re.MatchString(lower) {
				issues = append(issues, Issue{
					Level:      LevelWarning,
					Category:   CategoryNonDeterministic,
					Message:    fmt.Sprintf("Potential non-deterministic operation detected: %s", re.String()),
					Line:       i + 1,
					Suggestion: "Consider using a seeded random generator, fixed timestamp, or parameterized input",
				})
			}
		}
	}
	return issues
}

func checkLogic(lines []string) []Issue {
	var issues []Issue
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, p := range logicPatterns {
			if p.re.MatchString(lower) {
				issues = append(issues, Issue{
					Level:      LevelError,
					Category:   CategoryLogicError,
					Message:    p.message,
					Line:       i + 1,
					Suggestion: p.suggestion,
				})
			}
		}
	}
	return issues
}

func checkErrorHandling(lines []string) []Issue {
	hasHandling := false
	hasNullChecks := false
	for _, line := range lines {
		if errorHandlingRe.MatchString(line) {
			hasHandling = true
		}
		if nullCheckRe.MatchString(line) {
			hasNullChecks = true
		}
	}

	var issues []Issue
	if !hasHandling && len(lines) > 10 {
		issues = append(issues, Issue{
			Level:      LevelWarning,
			Category:   CategoryErrorHandling,
			Message:    "No error handling detected",
			Suggestion: "Consider adding try-catch blocks for error handling",
		})
	}
	if !hasNullChecks {
		issues = append(issues, Issue{
			Level:      LevelInfo,
			Category:   CategoryErrorHandling,
			Message:    "No null checks detected",
			Suggestion: "Consider adding null/undefined checks for inputs",
		})
	}
	return issues
}

func checkResourceCleanup(lines []string) []Issue {
	var opens []int
	hasRelease := false
	for i, line := range lines {
		lower := strings.ToLower(line)
		if acquireRe.MatchString(lower) {
			opens = append(opens, i+1)
		}
		if releaseRe.MatchString(lower) {
			hasRelease = true
		}
	}

	if len(opens) == 0 || hasRelease {
		return nil
	}
	return []Issue{{
		Level:      LevelWarning,
		Category:   CategoryResources,
		Message:    "Resources are opened/allocated but not explicitly closed/freed",
		Line:       opens[0],
		Suggestion: "Add cleanup code to close/free resources",
	}}
}

// checkVariableInitialization flags identifiers appearing on the right
// side of an assignment before any declaration introduced them. It is a
// heuristic: pseudocode has no real scoping to analyze.
func checkVariableInitialization(lines []string) []Issue {
	var issues []Issue
	declared := make(map[string]bool)

	for i, line := range lines {
		if m := declarationRe.FindStringSubmatch(line); m != nil {
			declared[strings.ToLower(m[2])] = true
		}

		if !strings.Contains(line, "=") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) < 2 {
			continue
		}
		for _, word := range identifierRe.FindAllString(parts[1], -1) {
			lower := strings.ToLower(word)
			if declared[lower] || builtinWords[lower] {
				continue
			}
			issues = append(issues, Issue{
				Level:      LevelWarning,
				Category:   CategoryVariableUsage,
				Message:    fmt.Sprintf("Variable '%s' may be used before declaration", word),
				Line:       i + 1,
				Suggestion: fmt.Sprintf("Ensure '%s' is declared before use", word),
			})
		}
	}
	return issues
}

func checkComplexity(lines []string) []Issue {
	var issues []Issue

	maxNesting, nesting, nestingLine := 0, 0, 0
	for i, line := range lines {
		stripped := strings.ToLower(strings.TrimSpace(line))

		if containsAny(stripped, "if", "for", "while", "loop", "function") {
			nesting++
			if nesting > maxNesting {
				maxNesting = nesting
				nestingLine = i + 1
			}
		}
		if containsAny(stripped, "end", "endif", "endfor", "endwhile") {
			if nesting > 0 {
				nesting--
			}
		}
	}
	if maxNesting > maxNestingDepth {
		issues = append(issues, Issue{
			Level:      LevelWarning,
			Category:   CategoryComplexity,
			Message:    fmt.Sprintf("High nesting depth detected: %d levels", maxNesting),
			Line:       nestingLine,
			Suggestion: "Consider refactoring into separate functions to reduce complexity",
		})
	}

	codeLines := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
			codeLines++
		}
	}
	if codeLines > 100 {
		issues = append(issues, Issue{
			Level:      LevelInfo,
			Category:   CategoryComplexity,
			Message:    fmt.Sprintf("Long code block: %d lines", codeLines),
			Suggestion: "Consider breaking into smaller functions",
		})
	}

	return issues
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
