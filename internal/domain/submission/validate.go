package submission

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries the first failing field of a submission so
// handlers can return it verbatim to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Normalized is a validated submission ready for persistence: typed
// columns promoted, everything else in the JSON bag.
type Normalized struct {
	Name        string
	Email       string
	Phone       string
	ScheduledAt *time.Time
	Fields      map[string]any
}

// Validate checks a raw payload against the entity's descriptor and
// returns the normalized record, or a *ValidationError for the first
// failing field. Keys not declared by the schema are dropped.
func Validate(s Schema, in map[string]any) (*Normalized, error) {
	n := &Normalized{Fields: map[string]any{}}

	for _, f := range s.Fields {
		raw, ok := in[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return nil, invalid(f.Name, "%s is required", f.Name)
			}
			continue
		}

		switch f.Kind {
		case KindText, KindEmail, KindPhone, KindEnum:
			v := strings.TrimSpace(toString(raw))
			if v == "" {
				if f.Required {
					return nil, invalid(f.Name, "%s is required", f.Name)
				}
				continue
			}
			if f.Kind == KindEmail {
				v = strings.ToLower(v)
				if err := validate.Var(v, "email"); err != nil {
					return nil, invalid(f.Name, "%s must be a valid email address", f.Name)
				}
			}
			if f.Min > 0 && utf8.RuneCountInString(v) < f.Min {
				return nil, invalid(f.Name, "%s must be at least %d characters", f.Name, f.Min)
			}
			if f.Max > 0 && utf8.RuneCountInString(v) > f.Max {
				return nil, invalid(f.Name, "%s must be at most %d characters", f.Name, f.Max)
			}
			if f.Pattern != "" && !regexp.MustCompile(f.Pattern).MatchString(v) {
				return nil, invalid(f.Name, "%s has an invalid format", f.Name)
			}
			if f.Kind == KindEnum && len(f.Options) > 0 && !contains(f.Options, v) {
				return nil, invalid(f.Name, "%s must be one of: %s", f.Name, strings.Join(f.Options, ", "))
			}
			n.assign(f, v)

		case KindMulti:
			vals := toList(raw)
			if len(vals) == 0 {
				if f.Required {
					return nil, invalid(f.Name, "%s must have at least one selection", f.Name)
				}
				continue
			}
			if len(f.Options) > 0 {
				for _, v := range vals {
					if !contains(f.Options, v) {
						return nil, invalid(f.Name, "%s contains an invalid value: %s", f.Name, v)
					}
				}
			}
			n.Fields[f.Name] = vals

		case KindDate:
			v := strings.TrimSpace(toString(raw))
			if v == "" {
				if f.Required {
					return nil, invalid(f.Name, "%s is required", f.Name)
				}
				continue
			}
			t, err := parseDate(v)
			if err != nil {
				return nil, invalid(f.Name, "%s must be a valid date", f.Name)
			}
			if f.Future && t.Before(time.Now()) {
				return nil, invalid(f.Name, "%s cannot be in the past", f.Name)
			}
			if f.Column == ColumnScheduledAt {
				n.ScheduledAt = &t
			} else {
				n.Fields[f.Name] = t.Format("2006-01-02")
			}

		case KindBool:
			b, err := toBool(raw)
			if err != nil {
				return nil, invalid(f.Name, "%s must be a boolean", f.Name)
			}
			n.Fields[f.Name] = b

		case KindNumber:
			num, err := toNumber(raw)
			if err != nil {
				return nil, invalid(f.Name, "%s must be a number", f.Name)
			}
			n.Fields[f.Name] = num
		}
	}

	return n, nil
}

func (n *Normalized) assign(f Field, v string) {
	switch f.Column {
	case ColumnName:
		n.Name = v
	case ColumnEmail:
		n.Email = v
	case ColumnPhone:
		n.Phone = v
	default:
		n.Fields[f.Name] = v
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// toList accepts a JSON array, a JSON-encoded array string, or a
// comma-separated string; multipart forms send the latter two.
func toList(v any) []string {
	var items []string
	switch t := v.(type) {
	case []string:
		items = t
	case []any:
		for _, e := range t {
			items = append(items, toString(e))
		}
	case string:
		s := strings.TrimSpace(t)
		if strings.HasPrefix(s, "[") {
			var arr []any
			if err := json.Unmarshal([]byte(s), &arr); err == nil {
				return toList(arr)
			}
		}
		items = strings.Split(s, ",")
	}

	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "on":
			return true, nil
		case "false", "0", "no", "off", "":
			return false, nil
		}
	}
	return false, fmt.Errorf("not a boolean: %v", v)
}

func toNumber(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	}
	return 0, fmt.Errorf("not a number: %v", v)
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "01/02/2006"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", v)
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
