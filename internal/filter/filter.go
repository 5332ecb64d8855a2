package filter

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"

	"jlv/internal/model"
)

// Criteria is a parsed search query.
type Criteria struct {
	Query    string // plain substring, or a regex when UseRegex
	UseRegex bool
	Expr     string // govaluate expression over top-level fields
}

// ParseQuery reads the search box syntax: /re/ is a regex, a leading '='
// is an expression (e.g. `=status >= 500 && method == 'GET'`), anything
// else is a case-insensitive substring of the raw line.
func ParseQuery(q string) Criteria {
	q = strings.TrimSpace(q)
	switch {
	case strings.HasPrefix(q, "="):
		return Criteria{Expr: strings.TrimSpace(q[1:])}
	case len(q) > 2 && strings.HasPrefix(q, "/") && strings.HasSuffix(q, "/"):
		return Criteria{Query: q[1 : len(q)-1], UseRegex: true}
	default:
		return Criteria{Query: q}
	}
}

func (c Criteria) Empty() bool { return c.Query == "" && strings.TrimSpace(c.Expr) == "" }

type Evaluator struct {
	c    Criteria
	re   *regexp.Regexp
	expr *govaluate.EvaluableExpression
}

func NewEvaluator(c Criteria) (*Evaluator, error) {
	if c.Empty() {
		return nil, errors.New("empty query")
	}
	e := &Evaluator{c: c}
	var err error
	if c.UseRegex {
		if e.re, err = regexp.Compile(c.Query); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(c.Expr) != "" {
		if e.expr, err = govaluate.NewEvaluableExpression(c.Expr); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Evaluator) Match(r *model.Record) bool {
	if r == nil {
		return false
	}
	if e.c.Query != "" {
		if e.re != nil {
			if !e.re.MatchString(r.Raw) {
				return false
			}
		} else if !strings.Contains(strings.ToLower(r.Raw), strings.ToLower(e.c.Query)) {
			return false
		}
	}
	if e.expr != nil {
		if !r.IsObject() {
			return false
		}
		params := map[string]any{}
		for _, f := range r.Fields() {
			var v any
			if err := json.Unmarshal(f.Value, &v); err == nil {
				params[f.Key] = v
			}
		}
		// missing parameters surface as an error, which is a non-match
		result, err := e.expr.Evaluate(params)
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		if !ok || !b {
			return false
		}
	}
	return true
}
