package responselog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Reasons a block is skipped.
const (
	SkipNoHeader = "no_header"
	SkipBadID    = "bad_id"
	SkipNoFormat = "unknown_format"
)

// Skip describes a malformed block ignored by Parse.
type Skip struct {
	Line   int
	Reason string
}

// Result is the outcome of parsing a whole log.
type Result struct {
	Records []domain.ResponseRecord
	Skipped []Skip
}

type line struct {
	n    int
	text string
}

type detector struct {
	name  string
	match func(header string, block []line) bool
	parse func(header string, block []line) (domain.ResponseRecord, error)
}

// detectors are tried in order; the first match parses the block.
var detectors = []detector{
	{name: "boxed", match: matchBoxed, parse: parseBoxed},
	{name: "legacy", match: matchLegacy, parse: parseLegacy},
}

var errBadID = errors.New("bad id")

// Parse reads every record in a response log. Malformed blocks are reported
// in Result.Skipped and never abort the scan.
func Parse(text string) Result {
	var (
		res   Result
		chunk []line
	)
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, "\r")
		if isDelimiter(l) {
			parseChunk(chunk, &res)
			chunk = chunk[:0]
			continue
		}
		chunk = append(chunk, line{n: i + 1, text: l})
	}
	parseChunk(chunk, &res)
	return res
}

// parseChunk splits the lines between two delimiters at header lines, so
// logs written without delimiters still yield one block per record.
func parseChunk(lines []line, res *Result) {
	var block []line
	emit := func() {
		defer func() { block = nil }()
		if blank(block) {
			return
		}
		rec, reason := parseBlock(block)
		if reason != "" {
			res.Skipped = append(res.Skipped, Skip{Line: firstContentLine(block), Reason: reason})
			return
		}
		res.Records = append(res.Records, rec)
	}

	for _, l := range lines {
		if isHeader(l.text) {
			emit()
		}
		block = append(block, l)
	}
	emit()
}

func parseBlock(block []line) (domain.ResponseRecord, string) {
	start := 0
	for start < len(block) && strings.TrimSpace(block[start].text) == "" {
		start++
	}
	block = block[start:]
	if !isHeader(block[0].text) {
		return domain.ResponseRecord{}, SkipNoHeader
	}
	header := keyword(block[0].text)

	for _, d := range detectors {
		if !d.match(header, block) {
			continue
		}
		rec, err := d.parse(header, block)
		if err != nil {
			return domain.ResponseRecord{}, SkipBadID
		}
		return rec, ""
	}
	return domain.ResponseRecord{}, SkipNoFormat
}

// ---------------------------------------------------------------------------
// Boxed format
// ---------------------------------------------------------------------------

func matchBoxed(_ string, block []line) bool {
	for _, l := range block[1:] {
		if strings.HasPrefix(keyword(l.text), "ID:") {
			return true
		}
	}
	return false
}

func parseBoxed(header string, block []line) (domain.ResponseRecord, error) {
	rec := domain.ResponseRecord{Username: parseUsername(strings.TrimPrefix(header, "Пользователь:"))}
	pairs := newPairs()

	for _, l := range block[1:] {
		s := l.text
		if body, ok := cutBody(s); ok {
			pairs.body(body)
			continue
		}
		if strings.HasPrefix(s, continuation) {
			pairs.extend(s[len(continuation):])
			continue
		}

		pairs.stop()
		kw := keyword(s)
		switch {
		case strings.HasPrefix(kw, "ID:"):
			uid, sid, err := parseID(strings.TrimPrefix(kw, "ID:"))
			if err != nil {
				return rec, err
			}
			rec.UserID, rec.SurveyID = uid, sid
		case strings.HasPrefix(kw, "Опрос завершён"):
			rec.Completed = true
		case strings.HasPrefix(kw, "Опрос:"):
			rec.SurveyName = strings.TrimSpace(strings.TrimPrefix(kw, "Опрос:"))
		case strings.HasPrefix(kw, "Вопрос"):
			pairs.expect(targetQuestion)
		case strings.HasPrefix(kw, "Ответ:"):
			pairs.expect(targetAnswer)
		}
	}

	if rec.SurveyID == "" {
		return rec, errBadID
	}
	rec.Answers = pairs.answers()
	return rec, nil
}

// ---------------------------------------------------------------------------
// Legacy format
// ---------------------------------------------------------------------------

const legacyIDSep = ", ID:"

func matchLegacy(header string, _ []line) bool {
	return strings.Contains(header, legacyIDSep)
}

func parseLegacy(header string, block []line) (domain.ResponseRecord, error) {
	hdr := strings.TrimPrefix(header, "Пользователь:")
	idx := strings.LastIndex(hdr, legacyIDSep)
	uid, sid, err := parseID(hdr[idx+len(legacyIDSep):])
	if err != nil {
		return domain.ResponseRecord{}, err
	}
	rec := domain.ResponseRecord{
		UserID:   uid,
		SurveyID: sid,
		Username: parseUsername(hdr[:idx]),
	}
	pairs := newPairs()

	for _, l := range block[1:] {
		s := l.text
		if strings.HasPrefix(s, continuation) {
			pairs.extend(s[len(continuation):])
			continue
		}
		kw := keyword(s)
		switch {
		case strings.HasPrefix(kw, "Опрос завершён"):
			pairs.stop()
			rec.Completed = true
		case strings.HasPrefix(kw, "Опрос:"):
			pairs.stop()
			rec.SurveyName = strings.TrimSpace(strings.TrimPrefix(kw, "Опрос:"))
		case strings.HasPrefix(kw, "Вопрос:"):
			pairs.expect(targetQuestion)
			pairs.body(strings.TrimSpace(strings.TrimPrefix(kw, "Вопрос:")))
		case strings.HasPrefix(kw, "Ответ:"):
			pairs.expect(targetAnswer)
			pairs.body(strings.TrimSpace(strings.TrimPrefix(kw, "Ответ:")))
		case strings.TrimSpace(s) != "":
			pairs.extend(s)
		}
	}

	rec.Answers = pairs.answers()
	return rec, nil
}

// ---------------------------------------------------------------------------
// Question/answer accumulation
// ---------------------------------------------------------------------------

type target int

const (
	targetNone target = iota
	targetQuestion
	targetAnswer
)

// pairCollector assembles ordered question/answer pairs. Questions left
// without an answer are dropped.
type pairCollector struct {
	list     []domain.Answer
	answered []bool
	next     target // what the next body line fills
	open     target // what continuation lines extend
}

func newPairs() *pairCollector { return &pairCollector{} }

func (p *pairCollector) expect(t target) {
	p.next = t
	p.open = targetNone
}

func (p *pairCollector) stop() {
	p.next = targetNone
	p.open = targetNone
}

func (p *pairCollector) body(text string) {
	switch p.next {
	case targetQuestion:
		p.list = append(p.list, domain.Answer{Question: text})
		p.answered = append(p.answered, false)
		p.open = targetQuestion
	case targetAnswer:
		if len(p.list) == 0 {
			p.open = targetNone
			return
		}
		p.list[len(p.list)-1].Text = text
		p.answered[len(p.list)-1] = true
		p.open = targetAnswer
	default:
		p.open = targetNone
	}
	p.next = targetNone
}

func (p *pairCollector) extend(text string) {
	if len(p.list) == 0 {
		return
	}
	last := &p.list[len(p.list)-1]
	switch p.open {
	case targetQuestion:
		last.Question += "\n" + text
	case targetAnswer:
		last.Text += "\n" + text
	}
}

func (p *pairCollector) answers() []domain.Answer {
	out := make([]domain.Answer, 0, len(p.list))
	for i, a := range p.list {
		if p.answered[i] {
			out = append(out, a)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Line helpers
// ---------------------------------------------------------------------------

func isBoxDrawing(r rune) bool { return r >= 0x2500 && r <= 0x257F }

// isDelimiter reports whether l is an unindented run of at least three
// box-drawing characters and nothing else.
func isDelimiter(l string) bool {
	if l == "" || l[0] == ' ' || l[0] == '\t' {
		return false
	}
	n := 0
	for _, r := range strings.TrimRight(l, " \t") {
		if !isBoxDrawing(r) {
			return false
		}
		n++
	}
	return n >= 3
}

// keyword strips the leading emoji of a marker line. Body, continuation and
// indented lines have no keyword.
func keyword(l string) string {
	if l == "" || l[0] == ' ' || l[0] == '\t' {
		return ""
	}
	if r, _ := utf8.DecodeRuneInString(l); isBoxDrawing(r) {
		return ""
	}
	return strings.TrimLeftFunc(l, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isHeader(l string) bool {
	return strings.HasPrefix(keyword(l), "Пользователь:")
}

func cutBody(l string) (string, bool) {
	rest, ok := strings.CutPrefix(l, "└─")
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(rest, " "), true
}

func parseID(s string) (int64, string, error) {
	uidText, surveyID, ok := strings.Cut(strings.TrimSpace(s), "_")
	if !ok || surveyID == "" {
		return 0, "", fmt.Errorf("%w: %q", errBadID, s)
	}
	uid, err := strconv.ParseInt(uidText, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", errBadID, s)
	}
	return uid, surveyID, nil
}

func parseUsername(s string) string {
	name := strings.TrimPrefix(strings.TrimSpace(s), "@")
	if name == domain.NoUsername {
		return ""
	}
	return name
}

func blank(block []line) bool {
	for _, l := range block {
		if strings.TrimSpace(l.text) != "" {
			return false
		}
	}
	return true
}

func firstContentLine(block []line) int {
	for _, l := range block {
		if strings.TrimSpace(l.text) != "" {
			return l.n
		}
	}
	return 0
}
