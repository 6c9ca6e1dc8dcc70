// Package markdown extracts structured information from free-form
// instruction documents: sections, numbered task steps with dependency
// references, fenced code blocks, open questions and ambiguous wording.
package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Section is one header-delimited region of the document.
type Section struct {
	Level   int
	Title   string
	Content string
	Line    int
}

// TaskStep is a numbered step with any dependency references found in its
// description.
type TaskStep struct {
	Number       int
	Description  string
	Dependencies []string
	Parallel     bool
}

// CodeBlock is a fenced code block with its declared language.
type CodeBlock struct {
	Language string
	Code     string
}

// Ambiguity flags a line containing vague wording.
type Ambiguity struct {
	Line int
	Text string
	Term string
}

// Document is the fully parsed instruction file.
type Document struct {
	Sections    []Section
	Tasks       []TaskStep
	CodeBlocks  []CodeBlock
	Questions   []string
	Ambiguities []Ambiguity
}

var (
	headerRe     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	numberedRe   = regexp.MustCompile(`^\s*(\d+)\.\s+(.+)$`)
	taskIDRe     = regexp.MustCompile(`T\d{3,}`)
	dependencyRe = regexp.MustCompile(`(?i)(?:depends on|requires|after|following).*?(T\d{3,}(?:,\s*T\d{3,})*)`)
	listMarkerRe = regexp.MustCompile(`^\s*[-*\d+.]\s*`)
)

// Vague terms that usually hide an unstated decision.
var ambiguousTerms = []string{
	"maybe", "perhaps", "possibly", "might", "could",
	"some", "few", "several", "various", "etc",
	"and so on", "or something", "kind of", "sort of",
}

// Parse extracts every supported structure from the document content.
func Parse(content string) *Document {
	lines := strings.Split(content, "\n")
	return &Document{
		Sections:    parseSections(lines),
		Tasks:       extractTasks(lines),
		CodeBlocks:  extractCodeBlocks(lines),
		Questions:   extractQuestions(lines),
		Ambiguities: findAmbiguities(lines),
	}
}

// parseSections splits the document on ATX headers. Content between two
// headers belongs to the earlier one.
func parseSections(lines []string) []Section {
	var sections []Section
	var current *Section
	var content []string

	for i, line := range lines {
		m := headerRe.FindStringSubmatch(line)
		if m != nil {
			if current != nil {
				current.Content = strings.TrimSpace(strings.Join(content, "\n"))
				sections = append(sections, *current)
			}
			current = &Section{
				Level: len(m[1]),
				Title: strings.TrimSpace(m[2]),
				Line:  i + 1,
			}
			content = nil
			continue
		}
		if current != nil {
			content = append(content, line)
		}
	}
	if current != nil {
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		sections = append(sections, *current)
	}

	return sections
}

// extractTasks collects numbered list lines as task steps. Dependency IDs
// are pulled from "depends on/requires/after/following T###" phrases; a
// step is marked parallel when its description says so or carries "||".
func extractTasks(lines []string) []TaskStep {
	var tasks []TaskStep

	for _, line := range lines {
		m := numberedRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		desc := strings.TrimSpace(m[2])

		var deps []string
		if dm := dependencyRe.FindStringSubmatch(desc); dm != nil {
			deps = taskIDRe.FindAllString(dm[1], -1)
		}

		lower := strings.ToLower(desc)
		parallel := strings.Contains(lower, "parallel") || strings.Contains(desc, "||")

		tasks = append(tasks, TaskStep{
			Number:       num,
			Description:  desc,
			Dependencies: deps,
			Parallel:     parallel,
		})
	}

	return tasks
}

func extractCodeBlocks(lines []string) []CodeBlock {
	var blocks []CodeBlock
	inBlock := false
	var lang string
	var body []string

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inBlock {
				inBlock = true
				lang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
				body = nil
			} else {
				inBlock = false
				blocks = append(blocks, CodeBlock{Language: lang, Code: strings.Join(body, "\n")})
			}
			continue
		}
		if inBlock {
			body = append(body, line)
		}
	}

	return blocks
}

// extractQuestions returns trimmed lines ending in "?", with any leading
// list markers removed.
func extractQuestions(lines []string) []string {
	var questions []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "?") {
			questions = append(questions, listMarkerRe.ReplaceAllString(line, ""))
		}
	}
	return questions
}

// findAmbiguities flags each line containing a vague term. Only the first
// matching term per line is reported.
func findAmbiguities(lines []string) []Ambiguity {
	var ambiguities []Ambiguity
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, term := range ambiguousTerms {
			if strings.Contains(lower, term) {
				ambiguities = append(ambiguities, Ambiguity{
					Line: i + 1,
					Text: strings.TrimSpace(line),
					Term: term,
				})
				break
			}
		}
	}
	return ambiguities
}
