package deck

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// NormalizeFronts trims identifiers and drops blanks and repeats, keeping
// first-seen order. A repeated front would otherwise land on four cards.
func NormalizeFronts(fronts []string) []string {
	seen := make(map[string]struct{}, len(fronts))
	out := make([]string, 0, len(fronts))
	for _, front := range fronts {
		front = strings.TrimSpace(front)
		if front == "" {
			continue
		}
		if _, ok := seen[front]; ok {
			continue
		}
		seen[front] = struct{}{}
		out = append(out, front)
	}
	return out
}

// LoadFronts reads one front identifier per line from the provided file path.
func LoadFronts(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only fronts file.
			_ = cerr
		}
	}()

	var fronts []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fronts = append(fronts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(fronts) == 0 {
		return nil, fmt.Errorf("fronts file is empty")
	}
	return fronts, nil
}
