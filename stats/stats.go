package stats

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/1B05H1N/resilient-go/logger"
)

// Stats summarizes the lines of a text file.
type Stats struct {
	TotalLines int
	EmptyLines int
	AvgLength  float64
}

// Processor reads a text file and produces line statistics. Useful for
// sizing request payloads built from line-oriented input files.
type Processor struct {
	path   string
	logger logger.Logger
}

func NewProcessor(path string, log logger.Logger) (*Processor, error) {
	if log == nil {
		log = logger.Noop{}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file not found: %s: %w", path, err)
	}
	return &Processor{
		path:   path,
		logger: log,
	}, nil
}

// ReadLines returns the file's lines with surrounding whitespace
// trimmed. Empty lines are kept so they can be counted.
func (p *Processor) ReadLines() ([]string, error) {
	f, err := os.Open(p.path)
	if err != nil {
		p.logger.Errorf("error reading file: %s", err)
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		p.logger.Errorf("error reading file: %s", err)
		return nil, err
	}
	return lines, nil
}

// Analyze computes statistics over the given lines.
func (p *Processor) Analyze(lines []string) Stats {
	s := Stats{
		TotalLines: len(lines),
	}
	if len(lines) == 0 {
		return s
	}
	total := 0
	for _, line := range lines {
		if line == "" {
			s.EmptyLines++
		}
		total += len(line)
	}
	s.AvgLength = float64(total) / float64(len(lines))
	return s
}

// Process reads the file and returns its statistics.
func (p *Processor) Process() (Stats, error) {
	p.logger.Infof("processing file: %s", p.path)
	lines, err := p.ReadLines()
	if err != nil {
		return Stats{}, err
	}
	return p.Analyze(lines), nil
}
