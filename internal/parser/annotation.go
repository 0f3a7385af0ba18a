package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Annotation holds a parsed @varstruct annotation.
type Annotation struct {
	Name string // Generated type base name; empty means use the struct name
}

// ParseAnnotation parses a @varstruct annotation from comment text.
//
// Expected format:
//
//	// @varstruct
//	// @varstruct name=Packet
//
// Params are space-separated key=value pairs.
func ParseAnnotation(comment string) (*Annotation, error) {
	re := regexp.MustCompile(`@varstruct\b(?:\s+(.+))?`)
	matches := re.FindStringSubmatch(comment)
	if len(matches) < 1 {
		return nil, fmt.Errorf("no @varstruct annotation found")
	}

	anno := &Annotation{}
	if len(matches) < 2 || matches[1] == "" {
		return anno, nil
	}

	pairRe := regexp.MustCompile(`(\w+)=([\w-]+)`)
	pairs := pairRe.FindAllStringSubmatch(matches[1], -1)

	for _, pair := range pairs {
		key := pair[1]
		value := pair[2]

		switch key {
		case "name":
			anno.Name = value
		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return anno, nil
}

// FindAnnotation searches comment lines for a @varstruct annotation.
// Returns the annotation and true if found.
func FindAnnotation(comments []string) (*Annotation, bool) {
	for _, comment := range comments {
		anno, err := ParseAnnotation(comment)
		if err == nil {
			return anno, true
		}
	}
	return nil, false
}

// CleanComment removes comment markers from a line.
// "// @varstruct name=Packet" → "@varstruct name=Packet"
// "/* @varstruct */" → "@varstruct"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		return strings.TrimSpace(line)
	}

	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		return strings.TrimSpace(line)
	}

	return line
}
