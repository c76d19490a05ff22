package problems

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/machinery-systems/genepool-go/pkg/errors"
	"github.com/machinery-systems/genepool-go/pkg/evolution"
)

// Expression marks whether one base of the sequence is kept in the decoded
// subsequence.
type Expression int

const (
	Silent Expression = iota
	Expressed
)

// Introns is the puzzle from the 2017 Stepik bioinformatics contest: given
// a DNA sequence and a set of reads, find a subsequence that contains every
// read as a substring. A specimen flags each base as silent or expressed;
// fitness is the percentage of reads contained in the expressed bases.
type Introns struct {
	sequence string
	reads    []string
	shape    [][]Expression
}

// NewIntrons creates the introns puzzle for the given sequence and reads.
func NewIntrons(sequence string, reads []string) (*Introns, error) {
	if sequence == "" {
		return nil, errors.New(errors.InvalidInput, "sequence must not be empty")
	}
	if len(reads) == 0 {
		return nil, errors.New(errors.InvalidInput, "at least one read is required")
	}

	slot := []Expression{Silent, Expressed}
	shape := make([][]Expression, len(sequence))
	for i := range shape {
		shape[i] = slot
	}

	return &Introns{
		sequence: sequence,
		reads:    append([]string(nil), reads...),
		shape:    shape,
	}, nil
}

// ParseIntronsPuzzle reads the contest input format: a sequence line, a
// line with the number of reads, then one read per line.
func ParseIntronsPuzzle(r io.Reader) (*Introns, error) {
	scanner := bufio.NewScanner(r)

	sequence, err := scanLine(scanner, "sequence")
	if err != nil {
		return nil, err
	}

	countLine, err := scanLine(scanner, "read count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(countLine)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidInput, "read count is not a number"),
			errors.Fields{"line": countLine})
	}
	if count <= 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "read count must be positive"),
			errors.Fields{"count": count})
	}

	reads := make([]string, 0, count)
	for i := 0; i < count; i++ {
		read, err := scanLine(scanner, "read")
		if err != nil {
			return nil, errors.WithFields(err, errors.Fields{"read_index": i})
		}
		reads = append(reads, read)
	}

	return NewIntrons(sequence, reads)
}

func scanLine(scanner *bufio.Scanner, what string) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, errors.InvalidInput, "reading puzzle input")
		}
		return "", errors.Newf(errors.InvalidInput, "puzzle input is missing the %s line", what)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func (p *Introns) Shape() [][]Expression {
	return p.shape
}

// Sequence returns the full DNA sequence being searched.
func (p *Introns) Sequence() string {
	return p.sequence
}

// Reads returns a copy of the reads the solution must contain.
func (p *Introns) Reads() []string {
	return append([]string(nil), p.reads...)
}

// Decode keeps the expressed bases of the sequence, in order.
func (p *Introns) Decode(specimen evolution.Specimen[Expression]) string {
	p.mustMatchShape(specimen)

	var b strings.Builder
	for i, expression := range specimen {
		if expression == Expressed {
			b.WriteByte(p.sequence[i])
		}
	}
	return b.String()
}

// Fitness scores a specimen as the percentage of reads contained in its
// decoded subsequence.
func (p *Introns) Fitness(specimen evolution.Specimen[Expression]) float64 {
	decoded := p.Decode(specimen)

	numReads := 0
	for _, read := range p.reads {
		if strings.Contains(decoded, read) {
			numReads++
		}
	}
	return float64(numReads) / float64(len(p.reads)) * 100
}

func (p *Introns) mustMatchShape(specimen evolution.Specimen[Expression]) {
	if len(specimen) != len(p.sequence) {
		panic(errors.WithFields(
			errors.New(errors.InvalidEncoding, "specimen length does not match shape"),
			errors.Fields{"want": len(p.sequence), "got": len(specimen)}))
	}
}
