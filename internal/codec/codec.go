package codec

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/models"
)

// fixedFields is the number of integer stats preceding the equipment count.
const fixedFields = 6

// Encode renders p in the save-file text format.
func Encode(p models.Party) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail.
	_ = Write(&buf, p)
	return buf.Bytes()
}

// Write streams p to w in the save-file text format.
func Write(w io.Writer, p models.Party) error {
	bw := bufio.NewWriter(w)

	line := make([]byte, 0, 64)
	line = strconv.AppendInt(line, int64(len(p.Characters)), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return err
	}

	for _, c := range p.Characters {
		line = line[:0]
		for i, v := range c.Stats() {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(v), 10)
		}
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(len(c.Equipment)), 10)
		for _, eq := range c.Equipment {
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(eq), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode parses a party from data.
func Decode(data []byte) (models.Party, error) {
	return Read(bytes.NewReader(data))
}

// Read parses a party from r. Failures are *DecodeError, except for errors
// returned by r itself which are passed through unchanged. Lines have no
// length limit.
func Read(r io.Reader) (models.Party, error) {
	lr := newLineReader(r)

	header, ok, err := lr.next()
	if err != nil {
		return models.Party{}, err
	}
	if !ok {
		return models.Party{}, decodeErr(MalformedCount, 1, "missing count line")
	}
	count, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil {
		return models.Party{}, &DecodeError{Kind: MalformedCount, Line: lr.lineNo, Err: err}
	}
	if count < 0 {
		return models.Party{}, decodeErr(MalformedCount, lr.lineNo, "negative count %d", count)
	}

	party := models.Party{Characters: make([]models.Character, 0, min(count, 64))}
	for i := 0; i < count; i++ {
		line, ok, err := lr.next()
		if err != nil {
			return models.Party{}, err
		}
		if !ok {
			return models.Party{}, decodeErr(MalformedRecord, lr.lineNo+1, "expected %d records, got %d", count, i)
		}
		c, err := parseRecord(line, lr.lineNo)
		if err != nil {
			return models.Party{}, err
		}
		party.Characters = append(party.Characters, c)
	}

	for {
		line, ok, err := lr.next()
		if err != nil {
			return models.Party{}, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return models.Party{}, decodeErr(MalformedRecord, lr.lineNo, "unexpected content after %d records", count)
		}
	}

	return party, nil
}

// lineReader yields newline-terminated lines without the terminator or a
// trailing carriage return. A final line without a newline still counts.
type lineReader struct {
	br     *bufio.Reader
	lineNo int
	done   bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

func (l *lineReader) next() (string, bool, error) {
	if l.done {
		return "", false, nil
	}
	line, err := l.br.ReadString('\n')
	if errors.Is(err, io.EOF) {
		l.done = true
		if line == "" {
			return "", false, nil
		}
	} else if err != nil {
		return "", false, err
	}
	l.lineNo++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

func parseRecord(line string, lineNo int) (models.Character, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < fixedFields+1 {
		return models.Character{}, decodeErr(MalformedRecord, lineNo, "want at least %d fields, got %d", fixedFields+1, len(tokens))
	}

	ints := make([]int, fixedFields+1)
	for i := range ints {
		v, err := parseInt(tokens[i], lineNo)
		if err != nil {
			return models.Character{}, err
		}
		ints[i] = v
	}

	eqCount := ints[fixedFields]
	if eqCount < 0 {
		return models.Character{}, decodeErr(MalformedRecord, lineNo, "negative equipment count %d", eqCount)
	}
	rest := tokens[fixedFields+1:]
	if len(rest) != eqCount {
		return models.Character{}, decodeErr(MalformedRecord, lineNo, "declared %d equipment, found %d", eqCount, len(rest))
	}

	c := models.Character{
		ClassID:   ints[0],
		Health:    ints[1],
		Mana:      ints[2],
		Strength:  ints[3],
		Agility:   ints[4],
		Wisdom:    ints[5],
		Equipment: make([]int, eqCount),
	}
	for i, tok := range rest {
		v, err := parseInt(tok, lineNo)
		if err != nil {
			return models.Character{}, err
		}
		c.Equipment[i] = v
	}
	return c, nil
}

func parseInt(tok string, lineNo int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &DecodeError{Kind: NumberFormat, Line: lineNo, Err: err}
	}
	return v, nil
}
